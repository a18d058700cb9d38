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
	"github.com/stretchr/testify/require"
)

func TestRedacted(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		value   any
		debug   bool
		wantRes string
	}{
		{
			name:    "调试模式输出原始值",
			value:   "p@ssw0rd",
			debug:   true,
			wantRes: "p@ssw0rd",
		},
		{
			name:    "非调试模式输出占位符",
			value:   "p@ssw0rd",
			debug:   false,
			wantRes: RedactedPlaceholder,
		},
		{
			name:    "非字符串值同样脱敏",
			value:   12345,
			debug:   false,
			wantRes: RedactedPlaceholder,
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantRes, NewRedacted(tc.value, tc.debug).String())
		})
	}
}

func TestRedactedAsLogMessage(t *testing.T) {
	t.Parallel()
	l := NewLogger()
	dest := newMemoryDestination("$M")
	l.AddDestination(dest)
	l.Start()

	l.Info("auth", "login", NewRedacted("token-abc", false))
	l.Info("auth", "login", NewRedacted("token-abc", true))
	l.Close()

	lines := dest.Lines()
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, RedactedPlaceholder, lines[len(lines)-2])
	assert.Equal(t, "token-abc", lines[len(lines)-1])
}
