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

package codec

import (
	"strings"
	"testing"

	"github.com/rulego/codec/codecs"
	"github.com/rulego/codec/test/assert"
)

func TestDefaultRegistry(t *testing.T) {
	all := Registry.GetCodecs()
	for _, codecType := range []string{"hex", "base64", "h64", "aes", "blowfish", "js", "chain"} {
		_, ok := all[codecType]
		assert.True(t, ok, "missing builtin codec "+codecType)
	}
}

func TestRegistryRegister(t *testing.T) {
	registry := new(CodecComponentRegistry)
	assert.Nil(t, registry.Register(&codecs.HexCodec{}))

	err := registry.Register(&codecs.HexCodec{})
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "already exists"))
}

func TestRegistryNewCodec(t *testing.T) {
	registry := new(CodecComponentRegistry)
	assert.Nil(t, registry.Register(&codecs.Base64Codec{}))

	first, err := registry.NewCodec("base64")
	assert.Nil(t, err)
	second, err := registry.NewCodec("base64")
	assert.Nil(t, err)
	// instances are independent of the prototype and of each other
	assert.True(t, first != second)

	_, err = registry.NewCodec("nope")
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "codec not found"))
}

func TestRegistryUnregister(t *testing.T) {
	registry := new(CodecComponentRegistry)
	assert.Nil(t, registry.Register(&codecs.HexCodec{}))
	assert.Nil(t, registry.Unregister("hex"))

	_, err := registry.NewCodec("hex")
	assert.NotNil(t, err)

	err = registry.Unregister("hex")
	assert.NotNil(t, err)
}

func TestRegistryGetCodecsIsCopy(t *testing.T) {
	registry := new(CodecComponentRegistry)
	assert.Nil(t, registry.Register(&codecs.HexCodec{}))

	all := registry.GetCodecs()
	delete(all, "hex")

	_, err := registry.NewCodec("hex")
	assert.Nil(t, err)
}
