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
//        "type": "aes",
//        "configuration": {
//          "key": "b0e79d8b1f6c4e2a"
//        }
//  }
import (
	"errors"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/crypto"
	"github.com/rulego/codec/utils/maps"
)

// 注册组件
func init() {
	Registry.Add(&AesCodec{}, &BlowfishCodec{})
}

// CipherCodecConfiguration 节点配置
type CipherCodecConfiguration struct {
	// Key is the cipher key text.
	Key string
}

// AesCodec encrypts on encode and decrypts on decode with AES-256-CBC. A
// random IV is part of every encode, so encoding is not deterministic, but
// Decode always reverses Encode.
type AesCodec struct {
	// 节点配置
	config CipherCodecConfiguration
	cipher crypto.Cipher
}

// Type 组件类型
func (x *AesCodec) Type() string {
	return "aes"
}

func (x *AesCodec) New() types.Codec {
	return &AesCodec{}
}

// Init 初始化
func (x *AesCodec) Init(_ types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.config); err != nil {
		return err
	}
	if x.config.Key == "" {
		return errors.New("key can not be empty")
	}
	x.cipher = &crypto.AesCipher{}
	return nil
}

// Encode 加密
func (x *AesCodec) Encode(src []byte) ([]byte, error) {
	return x.cipher.Encrypt(src, []byte(x.config.Key))
}

// Decode 解密
func (x *AesCodec) Decode(src []byte) ([]byte, error) {
	return x.cipher.Decrypt(src, []byte(x.config.Key))
}

// BlowfishCodec encrypts on encode and decrypts on decode with Blowfish in
// CBC mode. The key must be 1 to 56 bytes long.
type BlowfishCodec struct {
	// 节点配置
	config CipherCodecConfiguration
	cipher crypto.Cipher
}

// Type 组件类型
func (x *BlowfishCodec) Type() string {
	return "blowfish"
}

func (x *BlowfishCodec) New() types.Codec {
	return &BlowfishCodec{}
}

// Init 初始化
func (x *BlowfishCodec) Init(_ types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.config); err != nil {
		return err
	}
	if x.config.Key == "" {
		return errors.New("key can not be empty")
	}
	x.cipher = &crypto.BlowfishCipher{}
	return nil
}

// Encode 加密
func (x *BlowfishCodec) Encode(src []byte) ([]byte, error) {
	return x.cipher.Encrypt(src, []byte(x.config.Key))
}

// Decode 解密
func (x *BlowfishCodec) Decode(src []byte) ([]byte, error) {
	return x.cipher.Decrypt(src, []byte(x.config.Key))
}
