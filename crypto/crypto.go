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

// Package crypto provides the symmetric ciphers behind the encrypting codec
// components. All ciphers run in CBC mode with PKCS7 padding and prefix a
// random IV to the encrypted result, so encrypting the same data twice never
// yields the same bytes.
package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"io"

	"github.com/rulego/codec/api/types"
)

// Cipher encrypts and decrypts byte payloads with a symmetric key.
type Cipher interface {
	// Encrypt encrypts raw with key.
	Encrypt(raw []byte, key []byte) ([]byte, error)
	// Decrypt reverses Encrypt with the same key.
	Decrypt(encrypted []byte, key []byte) ([]byte, error)
}

// cbcEncrypt pads raw, generates a random IV and encrypts in CBC mode. The
// IV occupies the first block of the result.
func cbcEncrypt(block cipher.Block, raw []byte) ([]byte, error) {
	blockSize := block.BlockSize()
	padded := pkcs7Pad(raw, blockSize)
	ciphertext := make([]byte, blockSize+len(padded))
	iv := ciphertext[:blockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[blockSize:], padded)
	return ciphertext, nil
}

// cbcDecrypt reverses cbcEncrypt. It never writes into encrypted.
func cbcDecrypt(block cipher.Block, encrypted []byte) ([]byte, error) {
	blockSize := block.BlockSize()
	if len(encrypted) < blockSize*2 || len(encrypted)%blockSize != 0 {
		return nil, types.NewCodecError("invalid encrypted data length", nil)
	}
	iv := encrypted[:blockSize]
	data := make([]byte, len(encrypted)-blockSize)
	copy(data, encrypted[blockSize:])
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(data, data)
	return pkcs7Unpad(data, blockSize)
}

// pkcs7Pad 原始数据填充
// The pad byte equals the number of bytes added, at least one.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

// pkcs7Unpad 移除填充
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return nil, types.NewCodecError("invalid padded data", nil)
	}
	padding := int(data[length-1])
	if padding < 1 || padding > blockSize {
		return nil, types.NewCodecError("invalid padding", nil)
	}
	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, types.NewCodecError("invalid padding", nil)
		}
	}
	return data[:length-padding], nil
}
