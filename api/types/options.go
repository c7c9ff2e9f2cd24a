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

// Option is a function type that modifies the Config.
type Option func(*Config) error

// WithEncoding sets the default character encoding, an IANA charset name.
func WithEncoding(encoding string) Option {
	return func(c *Config) error {
		c.Encoding = encoding
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithOnDebug sets the codec chain debug callback.
func WithOnDebug(onDebug func(chainId string, flowType string, codecType string, data []byte, err error)) Option {
	return func(c *Config) error {
		c.OnDebug = onDebug
		return nil
	}
}

// WithFallbackToBytes sets the handler for source types the generic ToBytes
// dispatch does not recognize.
func WithFallbackToBytes(fallback func(src interface{}) ([]byte, error)) Option {
	return func(c *Config) error {
		c.FallbackToBytes = fallback
		return nil
	}
}

// WithFallbackToString sets the handler for source types the generic ToString
// dispatch does not recognize.
func WithFallbackToString(fallback func(src interface{}) (string, error)) Option {
	return func(c *Config) error {
		c.FallbackToString = fallback
		return nil
	}
}

// WithScriptMaxExecutionTime sets the script codec execution timeout.
func WithScriptMaxExecutionTime(scriptMaxExecutionTime time.Duration) Option {
	return func(c *Config) error {
		c.ScriptMaxExecutionTime = scriptMaxExecutionTime
		return nil
	}
}

// WithRegistry sets the codec registry used to instantiate chains.
func WithRegistry(registry CodecRegistry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}
