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

// Package codecs holds the builtin codec components: hex, base64, h64, the
// symmetric cipher codecs and the javascript codec. Every component file
// registers its prototype in Registry during init, and the root package
// collects them into the default codec registry on startup.
//
// The package also exports plain function forms of the text codecs, for
// callers that do not need the component lifecycle.
package codecs

import "github.com/rulego/codec/api/types"

// Registry 组件注册器
var Registry = new(types.SafeCodecSlice)
