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
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// ConsoleDestination 终端输出目的地。按级别映射输出流：DebugLevel和InfoLevel
// 写入标准输出，WarningLevel和ErrorLevel写入标准错误，便于下游按严重程度过滤。
type ConsoleDestination struct {
	// 渲染模板
	template string
	// 激活状态
	active atomic.Bool
	// 颜色插件
	cp ColorPlugin
	// DebugLevel/InfoLevel的输出流，默认os.Stdout
	stdout io.Writer
	// WarningLevel/ErrorLevel的输出流，默认os.Stderr
	stderr io.Writer
}

type ConsoleOptions func(*ConsoleDestination)

// WithConsoleTemplate 设置终端目的地的渲染模板
func WithConsoleTemplate(template string) ConsoleOptions {
	return func(c *ConsoleDestination) {
		c.template = template
	}
}

// WithConsoleColor 开启按级别的ANSI颜色输出
func WithConsoleColor() ConsoleOptions {
	return func(c *ConsoleDestination) {
		c.cp = NewANSIColorPlugin(true)
	}
}

// WithConsoleWriters 替换输出流，测试时注入缓冲区使用
func WithConsoleWriters(stdout, stderr io.Writer) ConsoleOptions {
	return func(c *ConsoleDestination) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

func NewConsoleDestination(opts ...ConsoleOptions) *ConsoleDestination {
	c := &ConsoleDestination{
		template: DefaultTemplate,
		cp:       NewANSIColorPlugin(false),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *ConsoleDestination) Active() bool {
	return c.active.Load()
}

// Start 终端没有外部资源需要获取，只标记激活
func (c *ConsoleDestination) Start() error {
	c.active.Store(true)
	return nil
}

// Write 渲染之后写入级别对应的输出流，写入失败只做本地诊断
func (c *ConsoleDestination) Write(f *Formatter, r *Record) {
	out := c.stdout
	if r.Level >= WarningLevel {
		out = c.stderr
	}

	s := c.cp.Format(r.Level, f.Render(r, c.template))
	if _, err := io.WriteString(out, s+"\n"); err != nil {
		_, _ = os.Stderr.WriteString(fmt.Sprintf("failed to write console log, err: %v\n", err))
	}
}
