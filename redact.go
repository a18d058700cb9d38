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

// RedactedPlaceholder 非调试模式下敏感值的固定占位符
const RedactedPlaceholder = "<private>"

// Redacted 脱敏包装器。包装任意值作为日志消息使用，调试模式下输出原始值的
// 文本表示，否则输出固定占位符。调试开关在构造时注入而不是编译期固定，
// 两种模式都可以在运行期测试。
type Redacted struct {
	value any
	debug bool
}

func NewRedacted(value any, debug bool) Redacted {
	return Redacted{value: value, debug: debug}
}

func (r Redacted) String() string {
	if r.debug {
		return stringify(r.value)
	}

	return RedactedPlaceholder
}
