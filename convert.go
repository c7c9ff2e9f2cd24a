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

package codec

import (
	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/charset"
)

// PreferredEncoding is the character encoding used whenever an operation does
// not name one. Alias of types.PreferredEncoding.
const PreferredEncoding = types.PreferredEncoding

// StringToBytes converts s to bytes using the preferred encoding, UTF-8.
// 字符串转字节
func StringToBytes(s string) []byte {
	return []byte(s)
}

// StringToBytesE converts s to bytes using the named encoding. An empty name
// means the preferred encoding.
func StringToBytesE(s string, encoding string) ([]byte, error) {
	return charset.EncodeString(s, encodingOrPreferred(encoding))
}

// CharsToBytes converts chars to bytes using the preferred encoding, UTF-8.
func CharsToBytes(chars []rune) []byte {
	return []byte(string(chars))
}

// CharsToBytesE converts chars to bytes using the named encoding. An empty
// name means the preferred encoding.
func CharsToBytesE(chars []rune, encoding string) ([]byte, error) {
	return charset.EncodeString(string(chars), encodingOrPreferred(encoding))
}

// BytesToString converts data to a string using the preferred encoding, UTF-8.
// 字节转字符串
func BytesToString(data []byte) string {
	return string(data)
}

// BytesToStringE converts data to a string using the named encoding. An empty
// name means the preferred encoding.
func BytesToStringE(data []byte, encoding string) (string, error) {
	return charset.DecodeString(data, encodingOrPreferred(encoding))
}

// BytesToChars converts data to chars using the preferred encoding, UTF-8.
func BytesToChars(data []byte) []rune {
	return []rune(string(data))
}

// BytesToCharsE converts data to chars using the named encoding. An empty
// name means the preferred encoding.
func BytesToCharsE(data []byte, encoding string) ([]rune, error) {
	s, err := charset.DecodeString(data, encodingOrPreferred(encoding))
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

func encodingOrPreferred(encoding string) string {
	if encoding == "" {
		return types.PreferredEncoding
	}
	return encoding
}
