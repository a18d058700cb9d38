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

import "fmt"

type LogLevel uint8

const (
	// DebugLevel 用于开发环境调试的日志级别，级别序号最低
	DebugLevel LogLevel = iota
	// InfoLevel 默认的日志级别
	InfoLevel
	// WarningLevel 出现了危险的情况需要打印日志，存在危险，但不影响系统的正常运行
	WarningLevel
	// ErrorLevel 比WarningLevel更严重，业务出现了明显的错误，系统仍可正常运行
	ErrorLevel

	_minLevel = DebugLevel
	_maxLevel = ErrorLevel
)

// String 返回日志级别的小写格式的字符串内容
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("unknown level(%d)", l)
	}
}

// UpperString 返回日志级别大写格式的字符串内容，$L标记渲染时使用
func (l LogLevel) UpperString() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return fmt.Sprintf("unknown level(%d)", l)
	}
}

// valid 校验是否是合法的日志级别
func (l LogLevel) valid() bool {
	return l >= _minLevel && l <= _maxLevel
}

// allow 按级别序号过滤，当前级别大于等于最低级别时允许输出
func (l LogLevel) allow(min LogLevel) bool {
	return l >= min
}
