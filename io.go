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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rulego/codec/api/types"
)

// streamBufferSize is the chunk size used while draining a stream.
const streamBufferSize = 512

// FileToBytes reads the entire contents of the file. A file that cannot be
// opened or read fails with a CodecError.
// 读取文件内容
func FileToBytes(file File) ([]byte, error) {
	f, err := os.Open(string(file))
	if err != nil {
		return nil, types.NewCodecError("unable to open file. file="+string(file), err)
	}
	return StreamToBytes(f)
}

// StreamToBytes drains reader to completion and returns everything read.
// If reader is also an io.Closer it is closed before returning, even when
// reading fails; the close error is ignored because the data, or the read
// error, is already in hand.
// 读取流内容
func StreamToBytes(reader io.Reader) ([]byte, error) {
	if reader == nil {
		return nil, fmt.Errorf("stream conversion: %w", ErrNilArgument)
	}
	defer closeQuietly(reader)
	var buf bytes.Buffer
	chunk := make([]byte, streamBufferSize)
	for {
		n, err := reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, types.NewCodecError("unable to read stream", err)
		}
	}
}

func closeQuietly(reader io.Reader) {
	if closer, ok := reader.(io.Closer); ok {
		_ = closer.Close()
	}
}
