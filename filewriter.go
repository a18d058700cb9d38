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
	"os"
	"path/filepath"
	"sync"

	"github.com/TimeWtr/logtok/errorx"
	"github.com/pkg/errors"
)

// FileState 文件写入器的状态
type FileState uint8

const (
	// StateUnopened 初始状态，尚未打开文件
	StateUnopened FileState = iota
	// StateOpen 文件已打开，允许写入
	StateOpen
	// StateClosed 终态，关闭之后不允许重新打开
	StateClosed
)

// FileWriter 线程安全的文件追加写入器。所有操作经过同一把锁串行执行，
// 并发写入不会出现交叉的半条记录；同一路径的多个写入方必须共享同一个实例。
// 每次写入之后立即刷盘，写入返回即持久化，以吞吐换可靠性。
type FileWriter struct {
	// 目标文件路径
	path string
	// 串行化保护
	lock sync.Mutex
	// 文件句柄
	file *os.File
	// 当前状态
	state FileState
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// State 返回当前状态
func (w *FileWriter) State() FileState {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.state
}

// CreateIfNeeded 确保父目录存在（逐级创建），文件不存在时创建。
// 任意状态下都可以调用。返回是否新建了文件，新建意味着目的地需要重新打开句柄。
func (w *FileWriter) CreateIfNeeded() (bool, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.Wrapf(err, "failed to create log dir %s", dir)
	}

	_, err := os.Stat(w.path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "failed to stat log file %s", w.path)
	}

	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return false, errors.Wrapf(err, "failed to create log file %s", w.path)
	}
	_ = f.Close()

	return true, nil
}

// Open 以追加模式打开文件，文件指针位于末尾，已有内容保留。
// 文件被外部删除重建后允许再次调用换新句柄；Closed是终态，不允许重新打开。
func (w *FileWriter) Open() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.state == StateClosed {
		return errorx.ErrWriterClosed
	}

	if w.file != nil {
		_ = w.file.Close()
	}

	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return errors.Wrapf(err, "failed to open log file %s", w.path)
	}

	w.file = f
	w.state = StateOpen
	return nil
}

// Write 追加写入之后立即强制刷盘，返回时数据已经持久化。
// 只在Open状态下合法，未打开或者已关闭时返回文件不可用错误。
func (w *FileWriter) Write(p []byte) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.state != StateOpen || w.file == nil {
		return errorx.ErrFileNotAvailable
	}

	if _, err := w.file.Write(p); err != nil {
		return errors.Wrapf(err, "failed to write log file %s", w.path)
	}

	if err := w.file.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync log file %s", w.path)
	}

	return nil
}

// Close 刷盘之后释放句柄，进入终态。未打开或者已关闭时是幂等的空操作。
func (w *FileWriter) Close() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.state != StateOpen {
		return nil
	}

	err := w.file.Sync()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}

	w.file = nil
	w.state = StateClosed
	if err != nil {
		return errors.Wrapf(err, "failed to close log file %s", w.path)
	}

	return nil
}
