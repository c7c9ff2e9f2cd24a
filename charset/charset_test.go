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

package charset

import (
	"errors"
	"testing"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/test/assert"
)

func TestIsUTF8(t *testing.T) {
	assert.True(t, IsUTF8("UTF-8"))
	assert.True(t, IsUTF8("utf-8"))
	assert.True(t, IsUTF8("UTF8"))
	assert.True(t, IsUTF8(" utf8 "))
	assert.False(t, IsUTF8("UTF-16"))
	assert.False(t, IsUTF8("GBK"))
	assert.False(t, IsUTF8(""))
}

func TestLookup(t *testing.T) {
	enc, err := Lookup("ISO-8859-1")
	assert.Nil(t, err)
	assert.NotNil(t, enc)

	// aliases resolve to the same encoding, and the cache serves repeats
	enc2, err := Lookup("iso-8859-1")
	assert.Nil(t, err)
	assert.True(t, enc == enc2)

	enc, err = Lookup("GBK")
	assert.Nil(t, err)
	assert.NotNil(t, enc)

	_, err = Lookup("NO-SUCH-ENCODING")
	assert.NotNil(t, err)
	var codecErr *types.CodecError
	assert.True(t, errors.As(err, &codecErr))
}

func TestEncodeString(t *testing.T) {
	data, err := EncodeString("hello 你好", "UTF-8")
	assert.Nil(t, err)
	assert.Equal(t, []byte("hello 你好"), data)

	data, err = EncodeString("olá", "ISO-8859-1")
	assert.Nil(t, err)
	assert.Equal(t, []byte{0x6f, 0x6c, 0xe1}, data)

	data, err = EncodeString("你好", "GBK")
	assert.Nil(t, err)
	assert.Equal(t, []byte{0xc4, 0xe3, 0xba, 0xc3}, data)

	// text the target encoding cannot represent fails
	_, err = EncodeString("你好", "ISO-8859-1")
	assert.NotNil(t, err)
	var codecErr *types.CodecError
	assert.True(t, errors.As(err, &codecErr))
}

func TestDecodeString(t *testing.T) {
	s, err := DecodeString([]byte("hello 你好"), "utf-8")
	assert.Nil(t, err)
	assert.Equal(t, "hello 你好", s)

	s, err = DecodeString([]byte{0x6f, 0x6c, 0xe1}, "ISO-8859-1")
	assert.Nil(t, err)
	assert.Equal(t, "olá", s)

	s, err = DecodeString([]byte{0xc4, 0xe3, 0xba, 0xc3}, "GBK")
	assert.Nil(t, err)
	assert.Equal(t, "你好", s)

	_, err = DecodeString([]byte("data"), "NO-SUCH-ENCODING")
	assert.NotNil(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"UTF-8", "GBK", "GB18030"} {
		data, err := EncodeString("编码测试", name)
		assert.Nil(t, err, name)
		s, err := DecodeString(data, name)
		assert.Nil(t, err, name)
		assert.Equal(t, "编码测试", s, name)
	}
}
