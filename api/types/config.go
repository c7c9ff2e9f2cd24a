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

package types

import "time"

// PreferredEncoding is the character encoding used whenever an operation does
// not name one. Conversions never consult a platform default; text and bytes
// always convert the same way on every machine.
const PreferredEncoding = "UTF-8"

// Config is the shared configuration for converters, codec components and
// codec chains. Create it with NewConfig, which fills in defaults for omitted
// fields.
// 编解码器全局配置
type Config struct {
	// Encoding is the character encoding used by string and rune conversions
	// that do not specify one. Empty means PreferredEncoding. The name is an
	// IANA charset name such as "UTF-8", "ISO-8859-1" or "GBK".
	Encoding string
	// Logger receives internal warnings, for example panics recovered while a
	// codec chain runs. Defaults to DefaultLogger().
	Logger Logger
	// OnDebug, when set, is called around every step of a codec chain.
	// flowType is types.In with the step input and types.Out with the step
	// output, and err carries the step error on failure.
	// 链路调试回调函数
	OnDebug func(chainId string, flowType string, codecType string, data []byte, err error)
	// FallbackToBytes handles values whose runtime type the generic ToBytes
	// dispatch does not recognize. Nil keeps the default behavior of
	// returning an error that names the unsupported type.
	FallbackToBytes func(src interface{}) ([]byte, error)
	// FallbackToString handles values whose runtime type the generic ToString
	// dispatch does not recognize. Nil keeps the default best-effort
	// formatting of numbers, maps and structs.
	FallbackToString func(src interface{}) (string, error)
	// ScriptMaxExecutionTime caps one script codec run. Default 2000ms.
	// 脚本执行超时时间
	ScriptMaxExecutionTime time.Duration
	// Registry resolves codec types when chains are instantiated. Defaults to
	// the registry holding all builtin codecs.
	Registry CodecRegistry
}

// NewConfig creates a new Config and applies the options.
// 创建一个新的Config并应用选项
func NewConfig(opts ...Option) Config {
	c := &Config{
		Encoding:               PreferredEncoding,
		Logger:                 DefaultLogger(),
		ScriptMaxExecutionTime: time.Millisecond * 2000,
	}
	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
