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

package codecs

//编解码器链配置示例：
//{
//        "type": "h64"
//  }
import (
	"strings"

	"github.com/rulego/codec/api/types"
)

// 注册组件
func init() {
	Registry.Add(&H64Codec{})
}

// itoa64 is the alphabet of the unix crypt(3) base64 dialect.
const itoa64 = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// H64EncodeToString encodes src in the crypt(3) base64 dialect: bytes are
// packed little endian in groups of three and emitted low six bits first,
// four characters per group, with no padding. A trailing group of n bytes
// emits n+1 characters.
func H64EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow((len(src)*4 + 2) / 3)
	length := len(src)
	remainder := length % 3
	i := 0
	for ; i < length-remainder; i += 3 {
		appendH64(&sb, packH64(src[i:i+3]), 4)
	}
	if remainder > 0 {
		appendH64(&sb, packH64(src[i:]), remainder+1)
	}
	return sb.String()
}

// H64Decode reverses H64EncodeToString. Text with characters outside the
// crypt alphabet, or with an impossible length, fails with a CodecError.
func H64Decode(src []byte) ([]byte, error) {
	length := len(src)
	if length == 0 {
		return []byte{}, nil
	}
	remainder := length % 4
	if remainder == 1 {
		return nil, types.NewCodecError("invalid h64 data length", nil)
	}
	size := length / 4 * 3
	if remainder > 0 {
		size += remainder - 1
	}
	out := make([]byte, 0, size)
	i := 0
	for ; i+4 <= length; i += 4 {
		value, err := unpackH64(src[i : i+4])
		if err != nil {
			return nil, err
		}
		out = append(out, byte(value), byte(value>>8), byte(value>>16))
	}
	if remainder > 0 {
		value, err := unpackH64(src[i:])
		if err != nil {
			return nil, err
		}
		for j := 0; j < remainder-1; j++ {
			out = append(out, byte(value>>(8*j)))
		}
	}
	return out, nil
}

// packH64 packs up to three bytes little endian.
func packH64(chunk []byte) int {
	value := 0
	for i, b := range chunk {
		value |= int(b) << (8 * i)
	}
	return value
}

// appendH64 emits numChars characters, low six bits first.
func appendH64(sb *strings.Builder, value int, numChars int) {
	for i := 0; i < numChars; i++ {
		sb.WriteByte(itoa64[value&0x3f])
		value >>= 6
	}
}

// unpackH64 converts a group of characters back to its packed value.
func unpackH64(chars []byte) (int, error) {
	value := 0
	for i := len(chars) - 1; i >= 0; i-- {
		idx := strings.IndexByte(itoa64, chars[i])
		if idx < 0 {
			return 0, types.NewCodecError("invalid h64 data", nil)
		}
		value = value<<6 | idx
	}
	return value, nil
}

// H64Codec encodes bytes in the crypt(3) base64 dialect and back. It has no
// configuration.
type H64Codec struct {
}

// Type 组件类型
func (x *H64Codec) Type() string {
	return "h64"
}

func (x *H64Codec) New() types.Codec {
	return &H64Codec{}
}

// Init 初始化
func (x *H64Codec) Init(_ types.Config, _ types.Configuration) error {
	return nil
}

// Encode 编码
func (x *H64Codec) Encode(src []byte) ([]byte, error) {
	return []byte(H64EncodeToString(src)), nil
}

// Decode 解码
func (x *H64Codec) Decode(src []byte) ([]byte, error) {
	return H64Decode(src)
}
