/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package assert provides the minimal test assertions used by this project's
// tests. Failures are reported with t.Errorf so assertions may run from any
// goroutine.
package assert

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"
)

// Equal asserts that expected and actual are deeply equal.
func Equal(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !objectsAreEqual(expected, actual) {
		fail(t, fmt.Sprintf("not equal. expected: %v, actual: %v", expected, actual), msgAndArgs...)
	}
}

// NotEqual asserts that expected and actual are not deeply equal.
func NotEqual(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if objectsAreEqual(expected, actual) {
		fail(t, fmt.Sprintf("should not be equal: %v", actual), msgAndArgs...)
	}
}

// Nil asserts that object is nil.
func Nil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(object) {
		fail(t, fmt.Sprintf("expected nil, actual: %v", object), msgAndArgs...)
	}
}

// NotNil asserts that object is not nil.
func NotNil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(object) {
		fail(t, "expected not nil", msgAndArgs...)
	}
}

// True asserts that value is true.
func True(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !value {
		fail(t, "expected true", msgAndArgs...)
	}
}

// False asserts that value is false.
func False(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if value {
		fail(t, "expected false", msgAndArgs...)
	}
}

func objectsAreEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	expectedBytes, ok1 := expected.([]byte)
	actualBytes, ok2 := actual.([]byte)
	if ok1 && ok2 {
		return bytes.Equal(expectedBytes, actualBytes)
	}
	return reflect.DeepEqual(expected, actual)
}

// isNil reports whether object is nil, including a typed nil inside an
// interface value.
func isNil(object interface{}) bool {
	if object == nil {
		return true
	}
	value := reflect.ValueOf(object)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}
	return false
}

func fail(t *testing.T, message string, msgAndArgs ...interface{}) {
	t.Helper()
	if len(msgAndArgs) > 0 {
		message = message + ". " + fmt.Sprint(msgAndArgs...)
	}
	t.Errorf("%s", message)
}
