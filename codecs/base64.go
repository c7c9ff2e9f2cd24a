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
//        "type": "base64",
//        "configuration": {
//          "urlSafe": true,
//          "withoutPadding": false
//        }
//  }
import (
	"encoding/base64"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/utils/maps"
)

// 注册组件
func init() {
	Registry.Add(&Base64Codec{})
}

// Base64EncodeToString returns the standard base64 text of src.
func Base64EncodeToString(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

// Base64Decode decodes standard base64 text back to bytes.
func Base64Decode(src []byte) ([]byte, error) {
	dst, err := base64.StdEncoding.DecodeString(string(src))
	if err != nil {
		return nil, types.NewCodecError("invalid base64 data", err)
	}
	return dst, nil
}

// Base64CodecConfiguration 节点配置
type Base64CodecConfiguration struct {
	// UrlSafe selects the url-safe alphabet, replacing + and / with - and _.
	UrlSafe bool
	// WithoutPadding omits the trailing = padding.
	WithoutPadding bool
}

// Base64Codec encodes bytes to base64 text and back. The alphabet and
// padding are chosen by configuration; the default is standard base64 with
// padding.
type Base64Codec struct {
	// 节点配置
	config Base64CodecConfiguration
	// encoding selected during Init
	encoding *base64.Encoding
}

// Type 组件类型
func (x *Base64Codec) Type() string {
	return "base64"
}

func (x *Base64Codec) New() types.Codec {
	return &Base64Codec{}
}

// Init 初始化
func (x *Base64Codec) Init(_ types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.config); err != nil {
		return err
	}
	enc := base64.StdEncoding
	if x.config.UrlSafe {
		enc = base64.URLEncoding
	}
	if x.config.WithoutPadding {
		enc = enc.WithPadding(base64.NoPadding)
	}
	x.encoding = enc
	return nil
}

// Encode 编码
func (x *Base64Codec) Encode(src []byte) ([]byte, error) {
	dst := make([]byte, x.encoding.EncodedLen(len(src)))
	x.encoding.Encode(dst, src)
	return dst, nil
}

// Decode 解码
func (x *Base64Codec) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, x.encoding.DecodedLen(len(src)))
	n, err := x.encoding.Decode(dst, src)
	if err != nil {
		return nil, types.NewCodecError("invalid base64 data", err)
	}
	return dst[:n], nil
}
