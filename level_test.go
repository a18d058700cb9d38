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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		level     LogLevel
		wantLower string
		wantUpper string
	}{
		{
			name:      "debug级别",
			level:     DebugLevel,
			wantLower: "debug",
			wantUpper: "DEBUG",
		},
		{
			name:      "info级别",
			level:     InfoLevel,
			wantLower: "info",
			wantUpper: "INFO",
		},
		{
			name:      "warning级别",
			level:     WarningLevel,
			wantLower: "warning",
			wantUpper: "WARNING",
		},
		{
			name:      "error级别",
			level:     ErrorLevel,
			wantLower: "error",
			wantUpper: "ERROR",
		},
		{
			name:      "非法级别",
			level:     100,
			wantLower: "unknown level(100)",
			wantUpper: "unknown level(100)",
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantLower, tc.level.String())
			assert.Equal(t, tc.wantUpper, tc.level.UpperString())
		})
	}
}

func TestLevelValid(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		level   LogLevel
		wantRes bool
	}{
		{
			name:    "合法level_最低",
			level:   DebugLevel,
			wantRes: true,
		},
		{
			name:    "合法level_最高",
			level:   ErrorLevel,
			wantRes: true,
		},
		{
			name:    "不合法level",
			level:   100,
			wantRes: false,
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantRes, tc.level.valid())
		})
	}
}

func TestLevelAllow(t *testing.T) {
	t.Parallel()
	// 当前的最低日志级别
	min := WarningLevel
	testCases := []struct {
		name    string
		level   LogLevel
		wantRes bool
	}{
		{
			name:    "不允许输出_DebugLevel",
			level:   DebugLevel,
			wantRes: false,
		},
		{
			name:    "不允许输出_InfoLevel",
			level:   InfoLevel,
			wantRes: false,
		},
		{
			name:    "允许输出_WarningLevel",
			level:   WarningLevel,
			wantRes: true,
		},
		{
			name:    "允许输出_ErrorLevel",
			level:   ErrorLevel,
			wantRes: true,
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantRes, tc.level.allow(min))
		})
	}
}
