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

// Package types defines the public interfaces and configuration types of the
// codec library: the Codec component contract, the codec registry, the shared
// Config with its functional options, and the error kind returned by failed
// conversions.
package types

import "sync"

// Flow direction of data through a codec chain, reported to the Config.OnDebug
// callback.
// 数据流入、流出编解码器方向
const (
	In  = "IN"
	Out = "OUT"
)

// Configuration holds component-specific settings as loose key/value pairs.
// It is decoded into a codec's Config struct during Init.
type Configuration map[string]interface{}

// Codec is a named, reusable byte transformation. Implementations are
// registered as prototypes; New creates a fresh instance and Init configures
// it, so a registered prototype is never mutated by use.
//
// Encode and Decode must be inverses of each other and safe for concurrent
// use after Init has returned.
type Codec interface {
	// New creates a new instance of this codec.
	// Every chain node gets its own instance; state is never shared.
	New() Codec
	// Type is the unique codec type name, used for registration and for the
	// `type` field of chain definitions. For example: "hex", "base64".
	Type() string
	// Init configures the instance. It is called once before first use.
	Init(config Config, configuration Configuration) error
	// Encode transforms src into its encoded form.
	Encode(src []byte) ([]byte, error)
	// Decode reverses Encode.
	Decode(src []byte) ([]byte, error)
}

// PluginRegistry is the interface a codec plugin library exports under the
// plugins symbol.
type PluginRegistry interface {
	// Init initializes the plugin.
	Init() error
	// Codecs returns the codec prototypes provided by the plugin.
	Codecs() []Codec
}

// CodecRegistry manages codec prototypes by type name.
type CodecRegistry interface {
	// Register registers a codec prototype.
	// Returns an `already exists` error if `codec.Type()` is taken.
	Register(codec Codec) error
	// Unregister removes the prototype registered under codecType.
	Unregister(codecType string) error
	// NewCodec creates a new, uninitialized instance of codecType.
	NewCodec(codecType string) (Codec, error)
	// GetCodecs returns all registered prototypes keyed by type name.
	GetCodecs() map[string]Codec
}

// SafeCodecSlice is a thread-safe codec prototype list. Builtin codec
// packages append their prototypes to a package-level slice in init(), and
// the default registry collects them on startup.
// 线程安全的编解码器列表切片
type SafeCodecSlice struct {
	codecs []Codec
	sync.Mutex
}

// Add appends prototypes to the slice.
func (p *SafeCodecSlice) Add(codecs ...Codec) {
	p.Lock()
	defer p.Unlock()
	p.codecs = append(p.codecs, codecs...)
}

// Codecs returns the registered prototypes.
func (p *SafeCodecSlice) Codecs() []Codec {
	p.Lock()
	defer p.Unlock()
	return p.codecs
}
