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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *Record {
	return &Record{
		Level:     InfoLevel,
		Message:   "ready",
		Subsystem: "com.example.app",
		Category:  "network",
		Thread:    "MainThread",
		File:      "/home/user/project/server.go",
		Function:  "handleConn",
		Line:      42,
	}
}

func TestRenderTokens(t *testing.T) {
	t.Parallel()
	fm := NewFormatter(time.Now())
	testCases := []struct {
		name     string
		template string
		wantRes  string
	}{
		{
			name:     "级别和消息",
			template: "[$L] $M",
			wantRes:  "[INFO] ready",
		},
		{
			name:     "空模板",
			template: "",
			wantRes:  "",
		},
		{
			name:     "无标记的字面模板",
			template: "hello world",
			wantRes:  "hello world",
		},
		{
			name:     "字面模板首尾空白被去除",
			template: "  hello world \n",
			wantRes:  "hello world",
		},
		{
			name:     "未识别的标记原样输出",
			template: "price: $5.00",
			wantRes:  "price: $5.00",
		},
		{
			name:     "末尾的孤立前缀字符",
			template: "done$",
			wantRes:  "done$",
		},
		{
			name:     "转义标记替换为空",
			template: "100$I%",
			wantRes:  "100%",
		},
		{
			name:     "子系统和分类",
			template: "$S/$C",
			wantRes:  "com.example.app/network",
		},
		{
			name:     "线程描述",
			template: "on $T",
			wantRes:  "on MainThread",
		},
		{
			name:     "文件名不带扩展名",
			template: "$N",
			wantRes:  "server",
		},
		{
			name:     "文件名带扩展名",
			template: "$n",
			wantRes:  "server.go",
		},
		{
			name:     "方法和行号",
			template: "$F:$l",
			wantRes:  "handleConn:42",
		},
		{
			name:     "所有字段按模板顺序替换",
			template: "$S|$C|$T|$N|$n|$F|$l|$L|$M",
			wantRes:  "com.example.app|network|MainThread|server|server.go|handleConn|42|INFO|ready",
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantRes, fm.Render(newTestRecord(), tc.template))
		})
	}
}

func TestRenderDateTokens(t *testing.T) {
	t.Parallel()
	fm := NewFormatter(time.Now())
	r := newTestRecord()

	// 本地时区日期
	res := fm.Render(r, "$D2006-01-02$d")
	assert.Equal(t, time.Now().Format("2006-01-02"), res)

	// UTC日期
	res = fm.Render(r, "$Z2006-01-02$z")
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), res)

	// 结束标记之后的字面剩余部分
	res = fm.Render(r, "$D2006$d end")
	assert.Equal(t, time.Now().Format("2006")+" end", res)

	// 同类的两对日期标记按标识符逐对匹配
	res = fm.Render(r, "$D2006$d-$D01$d")
	assert.Equal(t, time.Now().Format("2006")+"-"+time.Now().Format("01"), res)

	// 没有配对结束标记时降级为字面输出
	res = fm.Render(r, "$D2006")
	assert.Equal(t, "$D2006", res)
}

func TestRenderUptime(t *testing.T) {
	t.Parallel()
	fm := NewFormatter(time.Now())
	r := newTestRecord()

	first := fm.Render(r, "$U")
	assert.Regexp(t, `^\d{2,}:\d{2}:\d{2}\.\d{3}$`, first)

	time.Sleep(time.Millisecond * 100)
	second := fm.Render(r, "$U")
	// 固定宽度格式下字符串比较即时间比较，运行时长单调不减
	assert.LessOrEqual(t, first, second)
}

func TestFormatUptime(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		d       time.Duration
		wantRes string
	}{
		{
			name:    "零时长",
			d:       0,
			wantRes: "00:00:00.000",
		},
		{
			name:    "时分秒毫秒",
			d:       time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond,
			wantRes: "01:02:03.045",
		},
		{
			name:    "小时不回绕",
			d:       30 * time.Hour,
			wantRes: "30:00:00.000",
		},
		{
			name:    "超过两位的小时",
			d:       100*time.Hour + 500*time.Millisecond,
			wantRes: "100:00:00.500",
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantRes, formatUptime(tc.d))
		})
	}
}

func TestRenderLazyMessageAtRenderTime(t *testing.T) {
	t.Parallel()
	fm := NewFormatter(time.Now())
	r := newTestRecord()
	r.Message = strings.Repeat("x", 3)

	require.Equal(t, "xxx", fm.Render(r, "$M"))

	// 渲染阶段才做字符串化，fmt.Stringer在此时求值
	r.Message = NewRedacted("secret", false)
	require.Equal(t, RedactedPlaceholder, fm.Render(r, "$M"))
}
