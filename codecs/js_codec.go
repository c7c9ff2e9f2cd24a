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

package codecs

//编解码器链配置示例：
//{
//        "type": "js",
//        "configuration": {
//          "script": "function encode(data) { return data.split('').reverse().join(''); } function decode(data) { return data.split('').reverse().join(''); }"
//        }
//  }
import (
	"errors"

	"github.com/rulego/codec/api/types"
	"github.com/rulego/codec/utils/js"
	"github.com/rulego/codec/utils/maps"
)

// 注册组件
func init() {
	Registry.Add(&JsCodec{})
}

// JsCodecConfiguration 节点配置
type JsCodecConfiguration struct {
	// Script must define the functions encode(data) and decode(data). Both
	// receive the payload as a string and return the transformed string.
	Script string
}

// JsCodec transforms data with user supplied javascript, running on pooled
// VMs with execution time capped by Config.ScriptMaxExecutionTime. The
// payload crosses into javascript as a string, so scripts should operate on
// text; for binary data put a text codec such as base64 in front.
type JsCodec struct {
	// 节点配置
	config JsCodecConfiguration
	// js脚本引擎
	jsEngine *js.GojaJsEngine
}

// Type 组件类型
func (x *JsCodec) Type() string {
	return "js"
}

func (x *JsCodec) New() types.Codec {
	return &JsCodec{}
}

// Init 初始化
func (x *JsCodec) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.config); err != nil {
		return err
	}
	if x.config.Script == "" {
		return errors.New("script can not be empty")
	}
	jsEngine, err := js.NewGojaJsEngine(config, x.config.Script)
	if err != nil {
		return err
	}
	x.jsEngine = jsEngine
	return nil
}

// Encode 编码
func (x *JsCodec) Encode(src []byte) ([]byte, error) {
	return x.execute("encode", src)
}

// Decode 解码
func (x *JsCodec) Decode(src []byte) ([]byte, error) {
	return x.execute("decode", src)
}

func (x *JsCodec) execute(functionName string, src []byte) ([]byte, error) {
	out, err := x.jsEngine.Execute(functionName, string(src))
	if err != nil {
		return nil, types.NewCodecError("js codec "+functionName+" failed", err)
	}
	if s, ok := out.(string); ok {
		return []byte(s), nil
	}
	return nil, errors.New("return the value is not string")
}
