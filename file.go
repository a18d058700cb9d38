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
	"os"
	"sync/atomic"
)

// FileDestination 文件输出目的地，组合一个FileWriter。写入格式为渲染后的
// 模板输出加换行，UTF-8编码，无文件头，无轮转。写入失败不向调用方传播，
// 只向标准错误输出一条诊断信息。
type FileDestination struct {
	// 渲染模板
	template string
	// 激活状态
	active atomic.Bool
	// 底层文件写入器
	w *FileWriter
}

type FileOptions func(*FileDestination)

// WithFileTemplate 设置文件目的地的渲染模板
func WithFileTemplate(template string) FileOptions {
	return func(d *FileDestination) {
		d.template = template
	}
}

func NewFileDestination(path string, opts ...FileOptions) *FileDestination {
	d := &FileDestination{
		template: DefaultTemplate,
		w:        NewFileWriter(path),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *FileDestination) Active() bool {
	return d.active.Load()
}

// Start 创建并打开日志文件，成功之后标记激活
func (d *FileDestination) Start() error {
	if _, err := d.w.CreateIfNeeded(); err != nil {
		return err
	}

	if err := d.w.Open(); err != nil {
		return err
	}

	d.active.Store(true)
	return nil
}

// Write 渲染之后追加换行写入文件。写入前防御性地重新检查文件，
// 文件被外部删除或者句柄未打开时先补救再写入。
func (d *FileDestination) Write(f *Formatter, r *Record) {
	line := f.Render(r, d.template) + "\n"

	created, err := d.w.CreateIfNeeded()
	if err != nil {
		_, _ = os.Stderr.WriteString(fmt.Sprintf("failed to recreate log file, err: %v\n", err))
		return
	}

	if created || d.w.State() != StateOpen {
		if err = d.w.Open(); err != nil {
			_, _ = os.Stderr.WriteString(fmt.Sprintf("failed to reopen log file, err: %v\n", err))
			return
		}
	}

	if err = d.w.Write([]byte(line)); err != nil {
		_, _ = os.Stderr.WriteString(fmt.Sprintf("failed to write log file, err: %v\n", err))
	}
}

// Close 尽力关闭底层文件，失败只做本地诊断
func (d *FileDestination) Close() error {
	d.active.Store(false)
	if err := d.w.Close(); err != nil {
		_, _ = os.Stderr.WriteString(fmt.Sprintf("failed to close log file, err: %v\n", err))
		return err
	}

	return nil
}
