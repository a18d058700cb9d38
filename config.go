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

package logtok

type Config struct {
	// 最低日志级别，低于该级别的记录被丢弃，默认InfoLevel
	minLevel LogLevel
	// 串行化队列的容量，队列满时入队会短暂阻塞，默认DefaultQueueSize
	queueSize int
	// 日志器自身的标识，内部合成的日志记录用它作为子系统名称
	identity string
}
