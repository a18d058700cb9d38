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
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultQueueSize 串行化队列的默认容量
	DefaultQueueSize = 1024
	// DefaultIdentity 日志器自身的默认标识
	DefaultIdentity = "logtok"
	// DefaultCallSkip 便捷方法捕获调用点时跳过的栈层数
	DefaultCallSkip = 2
)

// Logger 日志管线的核心。一个实例持有一个串行化执行点：所有对级别、激活状态
// 和目的地列表的读写，以及向目的地的派发，都以入队闭包的形式在唯一的工作
// goroutine中按入队顺序逐个执行，以此取代显式加锁，保证确定性的全序。
// 日志调用和AddDestination是异步的，入队即返回，不会阻塞调用方的业务逻辑。
type Logger struct {
	cfg *Config
	// 串行化执行点
	queue chan func()
	// 工作goroutine管理
	eg errgroup.Group
	// 创建时间，$U标记的运行时长基准
	start time.Time
	// 模板渲染器
	fm *Formatter
	// 关闭保护
	closeOnce sync.Once

	// 以下状态只在串行化goroutine内读写
	destinations []Destination
	minLevel     LogLevel
	active       bool
	started      bool
}

func NewLogger(opts ...Options) *Logger {
	cfg := &Config{
		minLevel:  InfoLevel,
		queueSize: DefaultQueueSize,
		identity:  DefaultIdentity,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	l := &Logger{
		cfg:      cfg,
		queue:    make(chan func(), cfg.queueSize),
		start:    start,
		fm:       NewFormatter(start),
		minLevel: cfg.minLevel,
	}

	l.eg.Go(func() error {
		l.serialize()
		return nil
	})

	return l
}

// serialize 串行化执行点的主循环，按入队顺序逐个执行闭包直到队列关闭
func (l *Logger) serialize() {
	for task := range l.queue {
		task()
	}
}

// enqueue 把闭包送入串行化队列。队列已经关闭时吞掉发送panic并返回false，
// 日志管线的任何失败都不允许影响调用方。
func (l *Logger) enqueue(task func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	l.queue <- task
	return true
}

// AddDestination 追加一个输出目的地，目的地列表只增不减，保持注册顺序。
// Start之前和之后都可以调用，异步入队，不阻塞调用方。
func (l *Logger) AddDestination(d Destination) {
	if d == nil {
		return
	}

	l.enqueue(func() {
		l.destinations = append(l.destinations, d)
	})
}

// Start 激活日志器，幂等，只有首次调用生效。首次调用按注册顺序逐个启动
// 目的地，单个目的地启动失败不影响其他目的地，也不影响日志器激活，失败以
// 合成的ErrorLevel记录走正常的过滤/派发路径上报；全部尝试完成之后再派发
// 一条InfoLevel的启动摘要记录。
func (l *Logger) Start() {
	l.enqueue(func() {
		l.doStart()
	})
}

func (l *Logger) doStart() {
	if l.started {
		return
	}
	l.started = true
	l.active = true

	for _, d := range l.destinations {
		if err := d.Start(); err != nil {
			l.dispatch(l.internalRecord(ErrorLevel, fmt.Sprintf("%T", d),
				fmt.Sprintf("failed to start destination, err: %v", err)))
		}
	}

	activeCount := 0
	for _, d := range l.destinations {
		if d.Active() {
			activeCount++
		}
	}

	l.dispatch(l.internalRecord(InfoLevel, "logger",
		fmt.Sprintf("logger started, destinations: %d, active: %d, min level: %s",
			len(l.destinations), activeCount, l.minLevel)))
}

// internalRecord 合成日志器自身的记录，子系统为日志器标识
func (l *Logger) internalRecord(level LogLevel, category, message string) *Record {
	site := captureSite(2)
	return &Record{
		Level:     level,
		Message:   message,
		Subsystem: l.cfg.identity,
		Category:  category,
		Thread:    threadDescriptor(),
		File:      site.File,
		Function:  site.Function,
		Line:      site.Line,
	}
}

// Debug 打印DebugLevel日志，调用点自动捕获，消息可以是任意类型或者Lazy闭包
func (l *Logger) Debug(subsystem, category string, message any) {
	l.log(DebugLevel, subsystem, category, message, captureSite(DefaultCallSkip))
}

// Info 打印InfoLevel日志
func (l *Logger) Info(subsystem, category string, message any) {
	l.log(InfoLevel, subsystem, category, message, captureSite(DefaultCallSkip))
}

// Warning 打印WarningLevel日志
func (l *Logger) Warning(subsystem, category string, message any) {
	l.log(WarningLevel, subsystem, category, message, captureSite(DefaultCallSkip))
}

// Error 打印ErrorLevel日志
func (l *Logger) Error(subsystem, category string, message any) {
	l.log(ErrorLevel, subsystem, category, message, captureSite(DefaultCallSkip))
}

// Log 打印指定级别的日志，调用点由调用方提供，核心管线不做任何捕获
func (l *Logger) Log(level LogLevel, subsystem, category string, message any, site Site) {
	l.log(level, subsystem, category, message, site)
}

// log 在调用方goroutine上同步捕获线程描述，之后入队立即返回，
// 消息保持未求值状态穿过队列
func (l *Logger) log(level LogLevel, subsystem, category string, message any, site Site) {
	r := &Record{
		Level:     level,
		Message:   message,
		Subsystem: subsystem,
		Category:  category,
		Thread:    threadDescriptor(),
		File:      site.File,
		Function:  site.Function,
		Line:      site.Line,
	}

	l.enqueue(func() {
		l.dispatch(r)
	})
}

// dispatch 只在串行化执行点内运行。未激活或者级别低于阈值时直接丢弃，
// 没有任何副作用；通过过滤后惰性消息只求值一次，然后按注册顺序写入所有
// 激活的目的地，单个目的地写入失败不会中断后续目的地。
func (l *Logger) dispatch(r *Record) {
	if !l.active || !r.Level.allow(l.minLevel) {
		return
	}

	r.Message = resolve(r.Message)
	for _, d := range l.destinations {
		if !d.Active() {
			continue
		}
		l.safeWrite(d, r)
	}
}

// safeWrite 隔离单个目的地的写入失败，panic被吞掉并做本地诊断
func (l *Logger) safeWrite(d Destination, r *Record) {
	defer func() {
		if rec := recover(); rec != nil {
			_, _ = os.Stderr.WriteString(fmt.Sprintf("panic writing to destination %T: %v\n", d, rec))
		}
	}()

	d.Write(l.fm, r)
}

// Level 同步读取当前的最低日志级别，阻塞到串行化执行点处理为止，
// 保证读到一致的快照
func (l *Logger) Level() LogLevel {
	resp := make(chan LogLevel, 1)
	if !l.enqueue(func() { resp <- l.minLevel }) {
		return l.cfg.minLevel
	}

	return <-resp
}

// SetLevel 异步更新最低日志级别。入队即返回，新级别只对更新处理之后
// 入队的日志调用可见，顺序是队列序，不是墙上时钟序。
func (l *Logger) SetLevel(level LogLevel) {
	if !level.valid() {
		return
	}

	l.enqueue(func() {
		l.minLevel = level
	})
}

// Active 同步读取激活状态
func (l *Logger) Active() bool {
	resp := make(chan bool, 1)
	if !l.enqueue(func() { resp <- l.active }) {
		return false
	}

	return <-resp
}

// Close 可选的有序停机：关闭队列，排空剩余记录，等待工作goroutine退出，
// 之后关闭可关闭的目的地。Close之后的日志调用被安全丢弃。不调用Close时，
// 进程退出瞬间仍在队列中的记录可能丢失。
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		close(l.queue)
	})
	_ = l.eg.Wait()

	for _, d := range l.destinations {
		if c, ok := d.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	}
}
