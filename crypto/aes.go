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

import "crypto/aes"

var _ Cipher = (*AesCipher)(nil)

// AesCipher encrypts with AES-256 in CBC mode. Keys of any length are
// accepted: shorter keys are padded with '0' to 32 bytes and longer keys are
// truncated.
type AesCipher struct {
}

// Encrypt 使用AES-256加密数据
func (x *AesCipher) Encrypt(raw []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(generateKey(key))
	if err != nil {
		return nil, err
	}
	return cbcEncrypt(block, raw)
}

// Decrypt 使用AES-256解密数据
func (x *AesCipher) Decrypt(encrypted []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(generateKey(key))
	if err != nil {
		return nil, err
	}
	return cbcDecrypt(block, encrypted)
}

// generateKey 根据给定的字符串生成一个AES密钥
func generateKey(key []byte) []byte {
	newKey := make([]byte, 32) // AES-256
	copy(newKey, key)
	for i := len(key); i < 32; i++ {
		newKey[i] = '0'
	}
	return newKey
}
