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

// Package codec converts data sources of different shapes, bytes, runes,
// strings, files and streams, into bytes and text, and runs named codec
// components over the result.
//
// # Usage
//
// Convert typed sources directly:
//
//	data := codec.StringToBytes("hello")
//	text := codec.BytesToString(data)
//
// Or dispatch on the runtime type of the source:
//
//	data, err := codec.ToBytes(codec.File("./testdata/config.json"))
//	text, err := codec.ToString(12.5)
//
// Conversions using another character encoding take its IANA name:
//
//	data, err := codec.StringToBytesE("olá", "ISO-8859-1")
//
// A Converter carries its own configuration, for example a default encoding
// and handlers for source types the dispatch does not recognize:
//
//	converter := codec.NewConverter(types.WithEncoding("GBK"))
//	data, err := converter.ToBytes("你好")
//
// Codec components are registered by type name and composed into chains
// loaded from a json definition. A chain's Decode reverses its Encode:
//
//	chain, err := codec.NewChain("", []byte(`{
//		"id": "chain01",
//		"codecs": [
//			{"type": "base64"},
//			{"type": "hex"}
//		]
//	}`))
//	out, err := chain.Encode([]byte("hello"))
//
// Load all chain definitions from a folder:
//
//	err := codec.LoadChains("./chains")
//	chain, ok := codec.GetChain("chain01")
package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/utils/json"
)

// File is a file system path whose contents take part in a conversion. The
// distinct type lets the generic dispatch tell a path apart from ordinary
// string data.
type File string

// String returns the path. Text conversions render a File this way instead of
// reading it.
func (f File) String() string {
	return string(f)
}

// DefaultConverter is the converter used by the package-level ToBytes and
// ToString functions. It carries the default configuration: UTF-8 and the
// default fallbacks.
var DefaultConverter = NewConverter()

// Converter converts arbitrary source values based on their runtime type.
// Converters are stateless beyond their configuration and safe for
// concurrent use.
// 类型转换器
type Converter struct {
	config types.Config
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...types.Option) *Converter {
	config := types.NewConfig(opts...)
	return &Converter{config: config}
}

// Config returns the converter configuration.
func (c *Converter) Config() types.Config {
	return c.config
}

// ToBytes converts src to bytes based on its runtime type. Byte slices pass
// through unchanged. Runes and strings convert with the configured encoding.
// File values read the named file and io.Reader values are drained to
// completion. Every other type goes to the configured FallbackToBytes, or to
// DefaultFallbackToBytes when none is set.
// 根据运行时类型转换成字节
func (c *Converter) ToBytes(src interface{}) ([]byte, error) {
	if src == nil {
		return nil, fmt.Errorf("byte conversion: %w", ErrNilArgument)
	}
	switch v := src.(type) {
	case []byte:
		return v, nil
	case []rune:
		return CharsToBytesE(v, c.config.Encoding)
	case string:
		return StringToBytesE(v, c.config.Encoding)
	case File:
		return FileToBytes(v)
	case io.Reader:
		return StreamToBytes(v)
	default:
		if c.config.FallbackToBytes != nil {
			return c.config.FallbackToBytes(src)
		}
		return DefaultFallbackToBytes(src)
	}
}

// ToString converts src to a string based on its runtime type. Strings pass
// through unchanged and runes convert directly. Bytes decode with the
// configured encoding. Every other type, File and io.Reader included, goes to
// the configured FallbackToString, or to DefaultFallbackToString when none is
// set. A File is not opened here: the default fallback renders its path. Use
// ToBytes to read file or stream contents.
// 根据运行时类型转换成字符串
func (c *Converter) ToString(src interface{}) (string, error) {
	if src == nil {
		return "", fmt.Errorf("string conversion: %w", ErrNilArgument)
	}
	switch v := src.(type) {
	case string:
		return v, nil
	case []rune:
		return string(v), nil
	case []byte:
		return BytesToStringE(v, c.config.Encoding)
	default:
		if c.config.FallbackToString != nil {
			return c.config.FallbackToString(src)
		}
		return DefaultFallbackToString(src)
	}
}

// ToBytes converts src to bytes with DefaultConverter.
func ToBytes(src interface{}) ([]byte, error) {
	return DefaultConverter.ToBytes(src)
}

// ToString converts src to a string with DefaultConverter.
func ToString(src interface{}) (string, error) {
	return DefaultConverter.ToString(src)
}

// DefaultFallbackToBytes rejects every value. It keeps the byte dispatch
// strict: types outside []byte, []rune, string, File and io.Reader fail
// unless the converter is configured with its own FallbackToBytes.
func DefaultFallbackToBytes(src interface{}) ([]byte, error) {
	return nil, types.NewCodecError(fmt.Sprintf(
		"unable to convert value to bytes. type=%T. accepted types are []byte, []rune, string, codec.File and io.Reader. set Config.FallbackToBytes to support other types", src), nil)
}

// DefaultFallbackToString converts values of any other type to a best-effort
// string. Booleans and numbers format with strconv, Stringer and error values
// use their own text, and everything else marshals to json. Map keys that are
// not strings are coerced so the value stays marshalable.
func DefaultFallbackToString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case int8:
		return strconv.Itoa(int(v)), nil
	case uint8:
		return strconv.Itoa(int(v)), nil
	case int16:
		return strconv.Itoa(int(v)), nil
	case uint16:
		return strconv.Itoa(int(v)), nil
	case int32:
		return strconv.Itoa(int(v)), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	case map[interface{}]interface{}:
		converted := make(map[string]interface{})
		for k, value := range v {
			converted[fmt.Sprintf("%v", k)] = value
		}
		if newValue, err := json.Marshal(converted); err == nil {
			return string(newValue), nil
		} else {
			return "", types.NewCodecError(fmt.Sprintf("unable to convert value to string. type=%T", src), err)
		}
	default:
		if newValue, err := json.Marshal(src); err == nil {
			return string(newValue), nil
		} else {
			return "", types.NewCodecError(fmt.Sprintf("unable to convert value to string. type=%T", src), err)
		}
	}
}
