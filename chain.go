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
	"fmt"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/utils/fs"
	"github.com/rulego/codec/utils/json"
	"github.com/rulego/codec/utils/maps"
	"github.com/rulego/codec/utils/runtime"
)

// ChainDefinition is the json form of a codec chain.
//
//	{
//	  "id": "chain01",
//	  "codecs": [
//	    {"type": "base64", "configuration": {"urlSafe": true}},
//	    {"type": "hex"}
//	  ]
//	}
type ChainDefinition struct {
	// Id of the chain. Empty means a random id is assigned on creation.
	Id string `json:"id"`
	// Codecs lists the chain steps in encode order.
	Codecs []CodecNodeDefinition `json:"codecs"`
}

// CodecNodeDefinition is one step of a chain definition.
type CodecNodeDefinition struct {
	// Type of the codec, resolved through the registry.
	Type string `json:"type"`
	// Configuration holds the codec settings.
	Configuration types.Configuration `json:"configuration"`
}

// chainNode is an initialized codec instance together with its type name.
type chainNode struct {
	codecType string
	codec     types.Codec
}

var _ types.Codec = (*CodecChain)(nil)

// CodecChain runs an ordered list of codec instances as one transformation.
// Encode applies the codecs first to last and Decode applies them last to
// first, so a chain's Decode inverts its Encode. Chains are safe for
// concurrent use once created.
//
// A chain is itself a codec registered under the type name "chain", so a
// chain step may hold a nested codec list in its configuration.
// 编解码器链
type CodecChain struct {
	// Id of the chain, unique within a pool
	Id     string
	config types.Config
	nodes  []chainNode
}

// NewCodecChain creates a chain from its json definition, resolving every
// codec type through the registry in config and initializing each instance
// with its configuration.
func NewCodecChain(def []byte, config types.Config) (*CodecChain, error) {
	var definition ChainDefinition
	if err := json.Unmarshal(def, &definition); err != nil {
		return nil, types.NewCodecError("invalid chain definition", err)
	}
	return newCodecChain(definition, config)
}

func newCodecChain(definition ChainDefinition, config types.Config) (*CodecChain, error) {
	if len(definition.Codecs) == 0 {
		return nil, errors.New("chain has no codecs. chainId=" + definition.Id)
	}
	registry := config.Registry
	if registry == nil {
		registry = Registry
	}
	chainId := definition.Id
	if chainId == "" {
		uuId, _ := uuid.NewV4()
		chainId = uuId.String()
	}
	chain := &CodecChain{Id: chainId, config: config}
	for _, item := range definition.Codecs {
		codec, err := registry.NewCodec(item.Type)
		if err != nil {
			return nil, err
		}
		if err = codec.Init(config, item.Configuration); err != nil {
			return nil, types.NewCodecError("codec init failed. chainId="+chainId+" codecType="+item.Type, err)
		}
		chain.nodes = append(chain.nodes, chainNode{codecType: item.Type, codec: codec})
	}
	return chain, nil
}

// Type 组件类型
func (c *CodecChain) Type() string {
	return "chain"
}

func (c *CodecChain) New() types.Codec {
	return &CodecChain{}
}

// Init builds the chain from a Configuration map carrying the same fields as
// the json definition: `id` and `codecs`.
func (c *CodecChain) Init(config types.Config, configuration types.Configuration) error {
	var definition ChainDefinition
	if err := maps.Map2Struct(configuration, &definition); err != nil {
		return err
	}
	chain, err := newCodecChain(definition, config)
	if err != nil {
		return err
	}
	*c = *chain
	return nil
}

// Encode runs src through the chain in definition order.
func (c *CodecChain) Encode(src []byte) (result []byte, err error) {
	defer func() {
		if e := recover(); e != nil {
			if c.config.Logger != nil {
				c.config.Logger.Printf("codec chain encode panic recovered. chainId=%s error=%v\n%s", c.Id, e, runtime.Stack())
			}
			result = nil
			err = types.NewCodecError("codec chain encode panic. chainId="+c.Id, fmt.Errorf("%v", e))
		}
	}()
	result = src
	for _, node := range c.nodes {
		c.onDebug(types.In, node.codecType, result, nil)
		result, err = node.codec.Encode(result)
		c.onDebug(types.Out, node.codecType, result, err)
		if err != nil {
			return nil, types.NewCodecError("codec chain encode failed. chainId="+c.Id+" codecType="+node.codecType, err)
		}
	}
	return result, nil
}

// Decode runs src through the chain in reverse order, undoing Encode.
func (c *CodecChain) Decode(src []byte) (result []byte, err error) {
	defer func() {
		if e := recover(); e != nil {
			if c.config.Logger != nil {
				c.config.Logger.Printf("codec chain decode panic recovered. chainId=%s error=%v\n%s", c.Id, e, runtime.Stack())
			}
			result = nil
			err = types.NewCodecError("codec chain decode panic. chainId="+c.Id, fmt.Errorf("%v", e))
		}
	}()
	result = src
	for i := len(c.nodes) - 1; i >= 0; i-- {
		node := c.nodes[i]
		c.onDebug(types.In, node.codecType, result, nil)
		result, err = node.codec.Decode(result)
		c.onDebug(types.Out, node.codecType, result, err)
		if err != nil {
			return nil, types.NewCodecError("codec chain decode failed. chainId="+c.Id+" codecType="+node.codecType, err)
		}
	}
	return result, nil
}

func (c *CodecChain) onDebug(flowType string, codecType string, data []byte, err error) {
	if c.config.OnDebug != nil {
		c.config.OnDebug(c.Id, flowType, codecType, data, err)
	}
}

// DefaultChainPool is the pool used by the package-level chain functions.
var DefaultChainPool = &ChainPool{}

// ChainPool 编解码器链实例池
type ChainPool struct {
	chains sync.Map
}

// Load 加载指定文件夹及其子文件夹所有编解码器链配置（以.json结尾的文件），到实例池
// 链ID，使用配置文件的id字段
func (p *ChainPool) Load(folderPath string, opts ...types.Option) error {
	if !strings.HasSuffix(folderPath, "*.json") && !strings.HasSuffix(folderPath, "*.JSON") {
		if strings.HasSuffix(folderPath, "/") || strings.HasSuffix(folderPath, "\\") {
			folderPath = folderPath + "*.json"
		} else if folderPath == "" {
			folderPath = "./*.json"
		} else {
			folderPath = folderPath + "/*.json"
		}
	}
	paths, err := fs.GetFilePaths(folderPath)
	if err != nil {
		return err
	}
	config := types.NewConfig(opts...)
	for _, path := range paths {
		if b := fs.LoadFile(path); b != nil {
			if _, err = p.New("", b, opts...); err != nil {
				return err
			}
		} else if config.Logger != nil {
			config.Logger.Printf("unable to read chain definition. file=%s", path)
		}
	}
	return nil
}

// New 创建一个新的编解码器链并将其存储在实例池中
// 如果指定id="",则使用配置文件的id字段
func (p *ChainPool) New(id string, def []byte, opts ...types.Option) (*CodecChain, error) {
	if v, ok := p.chains.Load(id); ok {
		return v.(*CodecChain), nil
	}
	var definition ChainDefinition
	if err := json.Unmarshal(def, &definition); err != nil {
		return nil, types.NewCodecError("invalid chain definition", err)
	}
	if id != "" {
		definition.Id = id
	}
	config := types.NewConfig(opts...)
	chain, err := newCodecChain(definition, config)
	if err != nil {
		return nil, err
	}
	p.chains.Store(chain.Id, chain)
	return chain, nil
}

// Get 获取指定ID编解码器链实例
func (p *ChainPool) Get(id string) (*CodecChain, bool) {
	v, ok := p.chains.Load(id)
	if ok {
		return v.(*CodecChain), ok
	}
	return nil, false
}

// Del 删除指定ID编解码器链实例
func (p *ChainPool) Del(id string) {
	p.chains.Delete(id)
}

// Range 遍历实例池中的所有编解码器链
func (p *ChainPool) Range(f func(id string, chain *CodecChain) bool) {
	p.chains.Range(func(key, value any) bool {
		return f(key.(string), value.(*CodecChain))
	})
}

// LoadChains loads all chain definition files from the folder and its
// subfolders into DefaultChainPool.
func LoadChains(folderPath string, opts ...types.Option) error {
	return DefaultChainPool.Load(folderPath, opts...)
}

// NewChain creates a chain from its json definition and stores it in
// DefaultChainPool. If id is empty the definition's id field is used.
func NewChain(id string, def []byte, opts ...types.Option) (*CodecChain, error) {
	return DefaultChainPool.New(id, def, opts...)
}

// GetChain returns the chain with the given id from DefaultChainPool.
func GetChain(id string) (*CodecChain, bool) {
	return DefaultChainPool.Get(id)
}

// DelChain removes the chain with the given id from DefaultChainPool.
func DelChain(id string) {
	DefaultChainPool.Del(id)
}
