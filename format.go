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
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/TimeWtr/logtok/core"
)

const renderBufferSize = 256

// renderBufferPool 渲染缓冲区对象池，每条日志对每个目的地渲染一次，复用缓冲区
var renderBufferPool = func() *core.WrapPool[*bytes.Buffer] {
	p, _ := core.NewWrapPool[*bytes.Buffer](
		func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, renderBufferSize)) },
		func(b *bytes.Buffer) *bytes.Buffer {
			b.Reset()
			return b
		},
		nil,
		64,
	)
	return p
}()

// Formatter 基于Token的模板渲染器，把一条Record按模板渲染为最终的字符串。
// base是$U标记计算运行时长的基准时间，即Logger的创建时间。
type Formatter struct {
	base time.Time
}

func NewFormatter(base time.Time) *Formatter {
	return &Formatter{base: base}
}

// Render 渲染一条日志记录。算法：在模板前拼接一个转义标记，防止模板自身的
// 起始字面文本被误认为标记，然后按TokenPrefix切分模板；每个分片的首字符如果
// 命中标记集合则执行替换规则，分片的剩余部分按字面追加；未命中的分片连同它
// 的前缀字符原样输出，畸形标记不会报错。渲染结果去除首尾空白后返回。
func (f *Formatter) Render(r *Record, template string) string {
	buf, err := renderBufferPool.Get()
	if err != nil {
		buf = bytes.NewBuffer(make([]byte, 0, renderBufferSize))
	} else {
		defer renderBufferPool.Put(buf)
	}

	augmented := string(TokenPrefix) + string(TokenIgnore) + template
	phrases := strings.Split(augmented, string(TokenPrefix))
	for i := 0; i < len(phrases); i++ {
		phrase := phrases[i]
		if phrase == "" {
			// 切分产生的首个空分片，或者"$$"转义的前半部分
			if i > 0 {
				buf.WriteByte(TokenPrefix)
			}
			continue
		}

		token := Token(phrase[0])
		rest := phrase[1:]
		switch token {
		case TokenIgnore:
			buf.WriteString(rest)
		case TokenLevel:
			buf.WriteString(r.Level.UpperString())
			buf.WriteString(rest)
		case TokenMessage:
			buf.WriteString(stringify(r.Message))
			buf.WriteString(rest)
		case TokenSubsystem:
			buf.WriteString(r.Subsystem)
			buf.WriteString(rest)
		case TokenCategory:
			buf.WriteString(r.Category)
			buf.WriteString(rest)
		case TokenThread:
			buf.WriteString(r.Thread)
			buf.WriteString(rest)
		case TokenFile:
			buf.WriteString(fileName(r.File, false))
			buf.WriteString(rest)
		case TokenFileFull:
			buf.WriteString(fileName(r.File, true))
			buf.WriteString(rest)
		case TokenFunction:
			buf.WriteString(r.Function)
			buf.WriteString(rest)
		case TokenLine:
			buf.WriteString(strconv.Itoa(r.Line))
			buf.WriteString(rest)
		case TokenUptime:
			buf.WriteString(formatUptime(time.Since(f.base)))
			buf.WriteString(rest)
		case TokenDateOpen:
			i = f.renderDate(buf, phrases, i, TokenDateClose, false)
		case TokenUTCOpen:
			i = f.renderDate(buf, phrases, i, TokenUTCClose, true)
		default:
			// 未识别的标记，连同前缀字符按字面输出
			buf.WriteByte(TokenPrefix)
			buf.WriteString(phrase)
		}
	}

	return strings.TrimSpace(buf.String())
}

// renderDate 处理成对的日期标记。起始标记与结束标记之间的内容被当作
// time.Format布局消费，结束标记按标识符配对，不按嵌套深度；布局中如果
// 出现"$"会被切分，这里重新拼接还原。找不到配对的结束标记时整体降级为
// 字面输出，后续分片照常处理。返回处理之后的分片下标。
func (f *Formatter) renderDate(buf *bytes.Buffer, phrases []string, open int, closeTok Token, utc bool) int {
	layout := phrases[open][1:]
	for j := open + 1; j < len(phrases); j++ {
		p := phrases[j]
		if p != "" && Token(p[0]) == closeTok {
			now := time.Now()
			if utc {
				now = now.UTC()
			}
			buf.WriteString(now.Format(layout))
			buf.WriteString(p[1:])
			return j
		}
		layout += string(TokenPrefix) + p
	}

	// 无配对的结束标记，按字面回退
	buf.WriteByte(TokenPrefix)
	buf.WriteString(phrases[open])
	return open
}

// fileName 从调用点路径中取最后一个路径分量，withExt为false时去掉扩展名
func fileName(path string, withExt bool) string {
	base := filepath.Base(path)
	if withExt {
		return base
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// formatUptime 运行时长格式化为HH:MM:SS.mmm，小时不回绕，不设上限
func formatUptime(d time.Duration) string {
	h := d / time.Hour
	m := d % time.Hour / time.Minute
	s := d % time.Minute / time.Second
	ms := d % time.Second / time.Millisecond

	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
