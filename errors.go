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

	"github.com/rulego/codec/api/types"
)

// CodecError is the error kind for conversions that fail because of the data:
// an unsupported encoding, an unreadable source, a failed decode. Alias of
// types.CodecError, so callers can match it with errors.As without importing
// api/types.
type CodecError = types.CodecError

// ErrNilArgument reports that a conversion received a nil source. It is
// returned before any input is touched and is never wrapped in a CodecError,
// keeping argument misuse distinguishable from data failures:
//
//	if errors.Is(err, codec.ErrNilArgument) { ... }
var ErrNilArgument = errors.New("argument cannot be nil")
