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

package types

// CodecError reports a conversion or codec failure caused by the data itself:
// an unsupported encoding name, text the encoding cannot represent, a failed
// decode, an unreadable file or stream. Argument misuse, such as passing nil,
// is reported separately and is never wrapped in a CodecError.
type CodecError struct {
	// Message describes the operation that failed.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As.
func (e *CodecError) Unwrap() error {
	return e.Cause
}

// NewCodecError creates a CodecError with the given message and cause. The
// cause may be nil.
func NewCodecError(message string, cause error) *CodecError {
	return &CodecError{Message: message, Cause: cause}
}
