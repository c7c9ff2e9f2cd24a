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
//        "type": "hex"
//  }
import (
	"encoding/hex"

	"github.com/rulego/codec/api/types"
)

// 注册组件
func init() {
	Registry.Add(&HexCodec{})
}

// HexEncodeToString returns the lowercase hexadecimal text of src.
func HexEncodeToString(src []byte) string {
	return hex.EncodeToString(src)
}

// HexDecode decodes hexadecimal text, upper or lower case, back to bytes.
func HexDecode(src []byte) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(src)))
	n, err := hex.Decode(dst, src)
	if err != nil {
		return nil, types.NewCodecError("invalid hex data", err)
	}
	return dst[:n], nil
}

// HexCodec encodes bytes to hexadecimal text and back. It has no
// configuration.
type HexCodec struct {
}

// Type 组件类型
func (x *HexCodec) Type() string {
	return "hex"
}

func (x *HexCodec) New() types.Codec {
	return &HexCodec{}
}

// Init 初始化
func (x *HexCodec) Init(_ types.Config, _ types.Configuration) error {
	return nil
}

// Encode 编码
func (x *HexCodec) Encode(src []byte) ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return dst, nil
}

// Decode 解码
func (x *HexCodec) Decode(src []byte) ([]byte, error) {
	return HexDecode(src)
}
