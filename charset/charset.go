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

// Package charset resolves IANA character set names to encodings and converts
// text between Go's native UTF-8 and those encodings. Resolved encodings are
// cached, so repeated conversions with the same name do not hit the index
// again.
package charset

import (
	"strings"
	"sync"

	"github.com/rulego/codec/api/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// encodings caches resolved encodings keyed by normalized name.
// 编码缓存
var encodings sync.Map

// IsUTF8 reports whether name names the UTF-8 encoding. Conversions use this
// to skip the transform pipeline, since Go strings already hold UTF-8.
func IsUTF8(name string) bool {
	n := normalize(name)
	return n == "UTF-8" || n == "UTF8"
}

// Lookup resolves an IANA character set name or alias, such as "UTF-8",
// "ISO-8859-1" or "GBK", to its encoding. Unknown names and names the index
// knows but has no encoding for both fail with a CodecError.
func Lookup(name string) (encoding.Encoding, error) {
	if IsUTF8(name) {
		return unicode.UTF8, nil
	}
	key := normalize(name)
	if v, ok := encodings.Load(key); ok {
		return v.(encoding.Encoding), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, types.NewCodecError("unsupported encoding. encoding="+name, err)
	}
	// The index reports some names it knows but cannot provide an encoding
	// for by returning nil without an error.
	if enc == nil {
		return nil, types.NewCodecError("unsupported encoding. encoding="+name, nil)
	}
	encodings.Store(key, enc)
	return enc, nil
}

// EncodeString converts s into bytes of the named encoding. Text the encoding
// cannot represent fails with a CodecError.
func EncodeString(s string, name string) ([]byte, error) {
	if IsUTF8(name) {
		return []byte(s), nil
	}
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, types.NewCodecError("unable to encode text. encoding="+name, err)
	}
	return data, nil
}

// DecodeString converts bytes of the named encoding into a string. Byte
// sequences invalid in the encoding decode to the Unicode replacement
// character, matching the substitution behavior of the underlying decoders.
func DecodeString(data []byte, name string) (string, error) {
	if IsUTF8(name) {
		return string(data), nil
	}
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	s, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", types.NewCodecError("unable to decode bytes. encoding="+name, err)
	}
	return s, nil
}

// normalize 规范化编码名称
func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
