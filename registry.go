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
	"plugin"
	"sync"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/codecs"
)

// PluginsSymbol 插件检查点 Symbol
const PluginsSymbol = "Plugins"

// Registry 默认编解码器注册器
var Registry = new(CodecComponentRegistry)

// 注册内置编解码器
func init() {
	var list []types.Codec
	list = append(list, codecs.Registry.Codecs()...)
	list = append(list, &CodecChain{})
	for _, item := range list {
		_ = Registry.Register(item)
	}
}

var _ types.CodecRegistry = (*CodecComponentRegistry)(nil)

// CodecComponentRegistry 编解码器注册器
type CodecComponentRegistry struct {
	// registered codec prototypes by type name
	codecs map[string]types.Codec
	// codecs provided by go plugins, by plugin name
	plugins map[string][]types.Codec
	sync.RWMutex
}

// Register registers a codec prototype.
func (r *CodecComponentRegistry) Register(codec types.Codec) error {
	r.Lock()
	defer r.Unlock()
	if r.codecs == nil {
		r.codecs = make(map[string]types.Codec)
	}
	if _, ok := r.codecs[codec.Type()]; ok {
		return errors.New("the codec already exists. codecType=" + codec.Type())
	}
	r.codecs[codec.Type()] = codec
	return nil
}

// RegisterPlugin loads a go plugin file and registers the codecs it exports.
// Nothing is registered if any exported type name is already taken.
func (r *CodecComponentRegistry) RegisterPlugin(name string, file string) error {
	builder := &PluginCodecRegistry{name: name, file: file}
	if err := builder.Init(); err != nil {
		return err
	}
	list := builder.Codecs()

	r.Lock()
	defer r.Unlock()
	if r.codecs == nil {
		r.codecs = make(map[string]types.Codec)
	}
	for _, item := range list {
		if _, ok := r.codecs[item.Type()]; ok {
			return errors.New("the codec already exists. codecType=" + item.Type())
		}
	}
	for _, item := range list {
		r.codecs[item.Type()] = item
	}
	if r.plugins == nil {
		r.plugins = make(map[string][]types.Codec)
	}
	r.plugins[name] = list
	return nil
}

// Unregister removes the plugin or codec registered under codecType.
func (r *CodecComponentRegistry) Unregister(codecType string) error {
	r.Lock()
	defer r.Unlock()
	var removed = false
	// remove every codec the plugin registered
	if list, ok := r.plugins[codecType]; ok {
		for _, item := range list {
			delete(r.codecs, item.Type())
		}
		delete(r.plugins, codecType)
		removed = true
	}
	if _, ok := r.codecs[codecType]; ok {
		delete(r.codecs, codecType)
		removed = true
	}
	if !removed {
		return fmt.Errorf("codec not found.codecType=%s", codecType)
	}
	return nil
}

// NewCodec creates a new, uninitialized instance of codecType.
func (r *CodecComponentRegistry) NewCodec(codecType string) (types.Codec, error) {
	r.RLock()
	defer r.RUnlock()
	if codec, ok := r.codecs[codecType]; ok {
		return codec.New(), nil
	}
	return nil, fmt.Errorf("codec not found.codecType=%s", codecType)
}

// GetCodecs returns all registered prototypes keyed by type name.
func (r *CodecComponentRegistry) GetCodecs() map[string]types.Codec {
	r.RLock()
	defer r.RUnlock()
	var result = map[string]types.Codec{}
	for k, v := range r.codecs {
		result[k] = v
	}
	return result
}

// PluginCodecRegistry go plugin编解码器初始化器
type PluginCodecRegistry struct {
	name     string
	file     string
	registry types.PluginRegistry
}

func (p *PluginCodecRegistry) Init() error {
	pluginRegistry, err := loadPlugin(p.file)
	if err != nil {
		return err
	}
	p.registry = pluginRegistry
	return nil
}

func (p *PluginCodecRegistry) Codecs() []types.Codec {
	if p.registry != nil {
		return p.registry.Codecs()
	}
	return nil
}

// loadPlugin opens the plugin file and looks up the exported Plugins symbol.
func loadPlugin(file string) (types.PluginRegistry, error) {
	p, err := plugin.Open(file)
	if err != nil {
		return nil, err
	}
	sym, err := p.Lookup(PluginsSymbol)
	if err != nil {
		return nil, err
	}
	pluginRegistry, ok := sym.(types.PluginRegistry)
	if !ok {
		return nil, errors.New("invalid plugin")
	}
	return pluginRegistry, nil
}
