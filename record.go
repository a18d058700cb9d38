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

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// Lazy 延迟求值的消息，只有在记录通过级别/激活过滤之后才会被调用，
// 被过滤掉的日志调用只付出捕获一个闭包的代价
type Lazy func() any

// Record 一次日志调用的完整上下文，入队之后字段不再修改
type Record struct {
	// 日志级别
	Level LogLevel
	// 消息主体，任意类型，可以是Lazy延迟求值闭包，
	// 字符串化只发生在渲染阶段
	Message any
	// 子系统名称，比如点分命名空间
	Subsystem string
	// 分类标签，自由格式
	Category string
	// 调用方的线程描述，在调用点同步生成
	Thread string
	// 调用点的源文件
	File string
	// 调用点的方法名称
	Function string
	// 调用点的行号
	Line int
}

// resolve 惰性消息求值，派发阶段通过过滤后只调用一次
func resolve(message any) any {
	switch fn := message.(type) {
	case Lazy:
		return fn()
	case func() any:
		return fn()
	default:
		return message
	}
}

// stringify 把任意类型的消息转换为默认的文本表示，只在渲染阶段调用
func stringify(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

const mainThread = "MainThread"

// threadDescriptor 在调用方goroutine上生成线程描述。goroutine 1是主goroutine，
// 描述为MainThread；Go的goroutine没有名称，其余的降级为通用描述"Goroutine: <id>"
func threadDescriptor() string {
	id := goroutineID()
	if id == 1 {
		return mainThread
	}

	return "Goroutine: " + strconv.FormatUint(id, 10)
}

// goroutineID 从runtime.Stack的首行"goroutine <id> [...]"中解析当前goroutine的编号
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}

	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
