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

// TokenPrefix 模板中标记的前缀字符
const TokenPrefix = '$'

// Token 模板标记，单个字符，出现在TokenPrefix之后时触发替换规则。
// 标记集合是封闭且固定的，未识别的"$<字符>"序列原样输出，不报错。
type Token byte

const (
	// TokenIgnore 转义标记，替换为空字符串，可以隔断紧随其后的标记字符，
	// 比如"100$I%"输出"100%"
	TokenIgnore Token = 'I'
	// TokenLevel 日志级别的大写名称
	TokenLevel Token = 'L'
	// TokenMessage 消息主体，渲染时才转换为字符串
	TokenMessage Token = 'M'
	// TokenSubsystem 子系统名称
	TokenSubsystem Token = 'S'
	// TokenCategory 分类标签
	TokenCategory Token = 'C'
	// TokenThread 调用方的线程描述
	TokenThread Token = 'T'
	// TokenFile 文件名，不带扩展名
	TokenFile Token = 'N'
	// TokenFileFull 文件名，带扩展名
	TokenFileFull Token = 'n'
	// TokenFunction 方法名称
	TokenFunction Token = 'F'
	// TokenLine 行号
	TokenLine Token = 'l'
	// TokenUptime 自Logger创建以来的运行时长，格式HH:MM:SS.mmm
	TokenUptime Token = 'U'
	// TokenDateOpen 本地时区日期的起始标记，与TokenDateClose之间的内容为时间布局
	TokenDateOpen Token = 'D'
	// TokenDateClose 本地时区日期的结束标记
	TokenDateClose Token = 'd'
	// TokenUTCOpen UTC日期的起始标记，与TokenUTCClose之间的内容为时间布局
	TokenUTCOpen Token = 'Z'
	// TokenUTCClose UTC日期的结束标记
	TokenUTCClose Token = 'z'
)

// valid 校验字符是否属于封闭的标记集合
func (t Token) valid() bool {
	switch t {
	case TokenIgnore, TokenLevel, TokenMessage, TokenSubsystem, TokenCategory,
		TokenThread, TokenFile, TokenFileFull, TokenFunction, TokenLine,
		TokenUptime, TokenDateOpen, TokenDateClose, TokenUTCOpen, TokenUTCClose:
		return true
	default:
		return false
	}
}
