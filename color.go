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

const (
	DebugColor   Color = 36
	InfoColor    Color = 32
	WarningColor Color = 33
	ErrorColor   Color = 31
)

type Color uint8

func (c Color) String(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", uint8(c), s)
}

// ColorPlugin 日志颜色插件，按级别给终端输出加颜色
type ColorPlugin interface {
	Format(level LogLevel, s string) string
}

type ANSIColorPlugin struct {
	enabled bool
}

func NewANSIColorPlugin(enabled bool) ColorPlugin {
	return &ANSIColorPlugin{enabled: enabled}
}

func (p *ANSIColorPlugin) Format(level LogLevel, s string) string {
	if !p.enabled {
		return s
	}

	switch level {
	case DebugLevel:
		return DebugColor.String(s)
	case InfoLevel:
		return InfoColor.String(s)
	case WarningLevel:
		return WarningColor.String(s)
	case ErrorLevel:
		return ErrorColor.String(s)
	default:
		return s
	}
}
