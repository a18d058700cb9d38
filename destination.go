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

// DefaultTemplate 目的地的默认渲染模板
const DefaultTemplate = "$D2006-01-02 15:04:05.000$d $T $N.$F:$l $L: $M"

// Destination 日志输出目的地的抽象接口，支持终端、文件以及用户自定义的输出。
// Write不向外传播任何错误，写入失败只做本地诊断，不允许影响其他目的地和调用方。
type Destination interface {
	// Active 是否处于激活状态，未激活的目的地在派发时被跳过
	Active() bool
	// Start 启动目的地，获取外部资源失败时返回错误
	Start() error
	// Write 按目的地自己的模板渲染并写入一条日志记录
	Write(f *Formatter, r *Record)
}
