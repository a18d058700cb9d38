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
	"runtime"
	"strings"
	"sync"
)

const unknown = "UNKNOWN"

// Site 调用点信息，核心管线把它当作普通的字符串/整数，
// 调用方可以自行构造，也可以由便捷方法自动捕获
type Site struct {
	// 源文件的完整路径
	File string
	// 方法名称，不带包路径前缀
	Function string
	// 行号
	Line int
}

// funcNameCache 全局的PC与方法名称映射缓存，可以显著提高捕获性能，
// 正常情况下方法的PC是不会变化的
var funcNameCache sync.Map

// captureSite 捕获调用点的文件、方法和行号，skip的语义与runtime.Caller一致
func captureSite(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Site{File: unknown, Function: unknown}
	}

	return Site{
		File:     file,
		Function: funcName(pc),
		Line:     line,
	}
}

// funcName 根据PC解析方法名称，预先从缓存中加载，查询不到再解析并缓存映射关系
func funcName(pc uintptr) string {
	if fn, ok := funcNameCache.Load(pc); ok {
		name, _ := fn.(string)
		return name
	}

	f := runtime.FuncForPC(pc)
	if f == nil {
		return unknown
	}

	full := f.Name()
	sli := strings.Split(full, ".")
	if len(sli) == 0 {
		return unknown
	}
	name := sli[len(sli)-1]
	funcNameCache.Store(pc, name)

	return name
}
