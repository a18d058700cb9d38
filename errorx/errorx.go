// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errorx

import "errors"

var (
	// ErrFileNotAvailable 文件不可写，写入器未打开或者已经关闭
	ErrFileNotAvailable = errors.New("file is not available")
	// ErrWriterClosed 文件写入器处于终态Closed，不允许重新打开
	ErrWriterClosed = errors.New("file writer is closed")
)

var (
	ErrPoolClosed  = errors.New("pool is closed")
	ErrPoolType    = errors.New("pool returned invalid type")
	ErrPoolMaxSize = errors.New("pool object over max size")
)
