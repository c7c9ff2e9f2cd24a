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

package crypto

import (
	"github.com/rulego/codec/api/types"
	"golang.org/x/crypto/blowfish"
)

var _ Cipher = (*BlowfishCipher)(nil)

// BlowfishCipher encrypts with Blowfish in CBC mode. The key must be 1 to 56
// bytes long.
type BlowfishCipher struct {
}

// Encrypt 使用Blowfish加密数据
func (x *BlowfishCipher) Encrypt(raw []byte, key []byte) ([]byte, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, types.NewCodecError("invalid blowfish key", err)
	}
	return cbcEncrypt(block, raw)
}

// Decrypt 使用Blowfish解密数据
func (x *BlowfishCipher) Decrypt(encrypted []byte, key []byte) ([]byte, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, types.NewCodecError("invalid blowfish key", err)
	}
	return cbcDecrypt(block, encrypted)
}
