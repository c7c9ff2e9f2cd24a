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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/test/assert"
)

var chainDef = `
{
  "id": "chain01",
  "codecs": [
    {"type": "base64"},
    {"type": "hex"}
  ]
}
`

// panicCodec panics on use, for testing chain recovery.
type panicCodec struct {
}

func (x *panicCodec) Type() string {
	return "test-panic"
}

func (x *panicCodec) New() types.Codec {
	return &panicCodec{}
}

func (x *panicCodec) Init(_ types.Config, _ types.Configuration) error {
	return nil
}

func (x *panicCodec) Encode(src []byte) ([]byte, error) {
	panic("encode blew up")
}

func (x *panicCodec) Decode(src []byte) ([]byte, error) {
	panic("decode blew up")
}

func TestCodecChain(t *testing.T) {
	chain, err := NewCodecChain([]byte(chainDef), types.NewConfig())
	assert.Nil(t, err)
	assert.Equal(t, "chain01", chain.Id)

	encoded, err := chain.Encode([]byte("hello"))
	assert.Nil(t, err)
	// base64 then hex
	assert.Equal(t, "614756736247383d", string(encoded))

	decoded, err := chain.Decode(encoded)
	assert.Nil(t, err)
	assert.Equal(t, []byte("hello"), decoded)
}

func TestCodecChainDebug(t *testing.T) {
	type debugEvent struct {
		chainId   string
		flowType  string
		codecType string
	}
	var events []debugEvent
	chain, err := NewCodecChain([]byte(chainDef), types.NewConfig(
		types.WithOnDebug(func(chainId string, flowType string, codecType string, data []byte, err error) {
			events = append(events, debugEvent{chainId: chainId, flowType: flowType, codecType: codecType})
		})))
	assert.Nil(t, err)

	_, err = chain.Encode([]byte("hello"))
	assert.Nil(t, err)
	assert.Equal(t, 4, len(events))
	assert.Equal(t, debugEvent{chainId: "chain01", flowType: types.In, codecType: "base64"}, events[0])
	assert.Equal(t, debugEvent{chainId: "chain01", flowType: types.Out, codecType: "base64"}, events[1])
	assert.Equal(t, debugEvent{chainId: "chain01", flowType: types.In, codecType: "hex"}, events[2])
	assert.Equal(t, debugEvent{chainId: "chain01", flowType: types.Out, codecType: "hex"}, events[3])
}

func TestCodecChainErrors(t *testing.T) {
	t.Run("unknown codec type", func(t *testing.T) {
		_, err := NewCodecChain([]byte(`{"id":"bad","codecs":[{"type":"nope"}]}`), types.NewConfig())
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "nope"))
	})
	t.Run("no codecs", func(t *testing.T) {
		_, err := NewCodecChain([]byte(`{"id":"empty","codecs":[]}`), types.NewConfig())
		assert.NotNil(t, err)
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := NewCodecChain([]byte(`{`), types.NewConfig())
		assert.NotNil(t, err)
	})
	t.Run("init failure", func(t *testing.T) {
		// the aes codec requires a key
		_, err := NewCodecChain([]byte(`{"id":"aes01","codecs":[{"type":"aes"}]}`), types.NewConfig())
		assert.NotNil(t, err)
	})
	t.Run("decode failure", func(t *testing.T) {
		chain, err := NewCodecChain([]byte(`{"id":"hex01","codecs":[{"type":"hex"}]}`), types.NewConfig())
		assert.Nil(t, err)
		_, err = chain.Decode([]byte("not hex!"))
		assert.NotNil(t, err)
		var codecErr *CodecError
		assert.True(t, errors.As(err, &codecErr))
	})
}

func TestCodecChainIdAssigned(t *testing.T) {
	chain, err := NewCodecChain([]byte(`{"codecs":[{"type":"hex"}]}`), types.NewConfig())
	assert.Nil(t, err)
	assert.True(t, chain.Id != "")
	assert.Equal(t, 36, len(chain.Id))
}

func TestCodecChainNested(t *testing.T) {
	var def = `
{
  "id": "outer",
  "codecs": [
    {
      "type": "chain",
      "configuration": {
        "id": "inner",
        "codecs": [
          {"type": "base64"}
        ]
      }
    },
    {"type": "hex"}
  ]
}
`
	chain, err := NewCodecChain([]byte(def), types.NewConfig())
	assert.Nil(t, err)

	encoded, err := chain.Encode([]byte("hello"))
	assert.Nil(t, err)
	// 内层base64，外层hex，等价于扁平链
	assert.Equal(t, "614756736247383d", string(encoded))

	decoded, err := chain.Decode(encoded)
	assert.Nil(t, err)
	assert.Equal(t, []byte("hello"), decoded)

	// 嵌套链的codecs不能为空
	_, err = NewCodecChain([]byte(`{"id":"bad","codecs":[{"type":"chain"}]}`), types.NewConfig())
	assert.NotNil(t, err)
}

func TestCodecChainPanicRecovered(t *testing.T) {
	_ = Registry.Register(&panicCodec{})
	chain, err := NewCodecChain([]byte(`{"id":"boom","codecs":[{"type":"test-panic"}]}`), types.NewConfig())
	assert.Nil(t, err)

	_, err = chain.Encode([]byte("data"))
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "panic"))

	_, err = chain.Decode([]byte("data"))
	assert.NotNil(t, err)
}

func TestCodecChainCustomRegistry(t *testing.T) {
	registry := new(CodecComponentRegistry)
	assert.Nil(t, registry.Register(&panicCodec{}))
	// only test-panic exists in this registry
	_, err := NewCodecChain([]byte(`{"id":"c1","codecs":[{"type":"hex"}]}`), types.NewConfig(types.WithRegistry(registry)))
	assert.NotNil(t, err)
}

func TestChainPool(t *testing.T) {
	chain, err := NewChain("pool01", []byte(`{"codecs":[{"type":"base64","configuration":{"urlSafe":true,"withoutPadding":true}}]}`))
	assert.Nil(t, err)
	assert.Equal(t, "pool01", chain.Id)

	got, ok := GetChain("pool01")
	assert.True(t, ok)
	assert.True(t, chain == got)

	// creating with an existing id returns the stored chain
	again, err := NewChain("pool01", []byte(`{"codecs":[{"type":"hex"}]}`))
	assert.Nil(t, err)
	assert.True(t, chain == again)

	out, err := chain.Encode([]byte{0xfb, 0xff})
	assert.Nil(t, err)
	assert.Equal(t, "-_8", string(out))

	DelChain("pool01")
	_, ok = GetChain("pool01")
	assert.False(t, ok)
}

func TestLoadChains(t *testing.T) {
	folder := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(folder, "c1.json"),
		[]byte(`{"id":"load01","codecs":[{"type":"hex"}]}`), 0644))
	sub := filepath.Join(folder, "sub")
	assert.Nil(t, os.Mkdir(sub, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(sub, "c2.json"),
		[]byte(`{"id":"load02","codecs":[{"type":"base64"}]}`), 0644))
	assert.Nil(t, os.WriteFile(filepath.Join(folder, "readme.txt"), []byte("not a chain"), 0644))

	err := LoadChains(folder)
	assert.Nil(t, err)
	defer DelChain("load01")
	defer DelChain("load02")

	chain, ok := GetChain("load01")
	assert.True(t, ok)
	out, err := chain.Encode([]byte{0xab})
	assert.Nil(t, err)
	assert.Equal(t, "ab", string(out))

	_, ok = GetChain("load02")
	assert.True(t, ok)
}
