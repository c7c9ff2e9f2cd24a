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

// Package hash digests arbitrary sources with named algorithms. Sources and
// salts accept every type the generic byte conversion accepts, so strings,
// bytes, files and streams all digest the same way:
//
//	h, err := hash.Sha256("hello", hash.WithSalt("s1"), hash.WithIterations(2))
//	fmt.Println(h.Hex())
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/rulego/codec"
	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/codecs"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Supported algorithm names. Lookup is case-insensitive and the classic
// names also match without their hyphen, for example "SHA256".
const (
	MD5        = "MD5"
	SHA1       = "SHA-1"
	SHA256     = "SHA-256"
	SHA384     = "SHA-384"
	SHA512     = "SHA-512"
	SHA3256    = "SHA3-256"
	SHA3512    = "SHA3-512"
	Blake2b256 = "BLAKE2B-256"
)

// Option modifies how a source is digested.
type Option func(*config)

type config struct {
	salt       interface{}
	iterations int
}

// WithSalt salts the digest. The salt converts to bytes the same way the
// source does and is fed to the digest before the source.
func WithSalt(salt interface{}) Option {
	return func(c *config) {
		c.salt = salt
	}
}

// WithIterations re-digests the result until the digest has run n times in
// total. Values below one are ignored.
func WithIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// Hash is the digest of a source, tagged with its algorithm name.
type Hash struct {
	algorithm string
	data      []byte
}

// New digests source with the named algorithm.
// 计算源数据的哈希值
func New(algorithm string, source interface{}, opts ...Option) (*Hash, error) {
	c := &config{iterations: 1}
	for _, opt := range opts {
		opt(c)
	}
	newDigest, err := lookupDigest(algorithm)
	if err != nil {
		return nil, err
	}
	sourceBytes, err := codec.ToBytes(source)
	if err != nil {
		return nil, err
	}
	var saltBytes []byte
	if c.salt != nil {
		if saltBytes, err = codec.ToBytes(c.salt); err != nil {
			return nil, err
		}
	}
	digest := newDigest()
	if saltBytes != nil {
		digest.Write(saltBytes)
	}
	digest.Write(sourceBytes)
	hashed := digest.Sum(nil)
	// the first run already happened above
	for i := 0; i < c.iterations-1; i++ {
		digest = newDigest()
		digest.Write(hashed)
		hashed = digest.Sum(nil)
	}
	return &Hash{algorithm: algorithm, data: hashed}, nil
}

// Md5 digests source with MD5.
func Md5(source interface{}, opts ...Option) (*Hash, error) {
	return New(MD5, source, opts...)
}

// Sha1 digests source with SHA-1.
func Sha1(source interface{}, opts ...Option) (*Hash, error) {
	return New(SHA1, source, opts...)
}

// Sha256 digests source with SHA-256.
func Sha256(source interface{}, opts ...Option) (*Hash, error) {
	return New(SHA256, source, opts...)
}

// Sha384 digests source with SHA-384.
func Sha384(source interface{}, opts ...Option) (*Hash, error) {
	return New(SHA384, source, opts...)
}

// Sha512 digests source with SHA-512.
func Sha512(source interface{}, opts ...Option) (*Hash, error) {
	return New(SHA512, source, opts...)
}

// Algorithm returns the algorithm name the digest was created with.
func (h *Hash) Algorithm() string {
	return h.algorithm
}

// Bytes returns the digest bytes.
func (h *Hash) Bytes() []byte {
	return h.data
}

// Hex returns the digest as lowercase hexadecimal text.
func (h *Hash) Hex() string {
	return codecs.HexEncodeToString(h.data)
}

// Base64 returns the digest as standard base64 text.
func (h *Hash) Base64() string {
	return codecs.Base64EncodeToString(h.data)
}

// String returns the hex form.
func (h *Hash) String() string {
	return h.Hex()
}

func lookupDigest(algorithm string) (func() hash.Hash, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "MD5":
		return md5.New, nil
	case "SHA-1", "SHA1":
		return sha1.New, nil
	case "SHA-256", "SHA256":
		return sha256.New, nil
	case "SHA-384", "SHA384":
		return sha512.New384, nil
	case "SHA-512", "SHA512":
		return sha512.New, nil
	case "SHA3-256":
		return sha3.New256, nil
	case "SHA3-512":
		return sha3.New512, nil
	case "BLAKE2B-256":
		return func() hash.Hash {
			h, _ := blake2b.New256(nil)
			return h
		}, nil
	default:
		return nil, types.NewCodecError(fmt.Sprintf("algorithm not found.algorithm=%s", algorithm), nil)
	}
}
