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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDestinationSeverityMapping(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	d := NewConsoleDestination(
		WithConsoleTemplate("$L $M"),
		WithConsoleWriters(&stdout, &stderr),
	)
	fm := NewFormatter(time.Now())
	require.NoError(t, d.Start())
	assert.True(t, d.Active())

	testCases := []struct {
		name    string
		level   LogLevel
		wantOut string
		wantErr string
	}{
		{
			name:    "debug走标准输出",
			level:   DebugLevel,
			wantOut: "DEBUG msg\n",
		},
		{
			name:    "info走标准输出",
			level:   InfoLevel,
			wantOut: "INFO msg\n",
		},
		{
			name:    "warning走标准错误",
			level:   WarningLevel,
			wantErr: "WARNING msg\n",
		},
		{
			name:    "error走标准错误",
			level:   ErrorLevel,
			wantErr: "ERROR msg\n",
		},
	}

	for _, tcs := range testCases {
		tc := tcs
		t.Run(tc.name, func(t *testing.T) {
			stdout.Reset()
			stderr.Reset()
			d.Write(fm, &Record{Level: tc.level, Message: "msg"})
			assert.Equal(t, tc.wantOut, stdout.String())
			assert.Equal(t, tc.wantErr, stderr.String())
		})
	}
}

func TestConsoleDestinationColor(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	d := NewConsoleDestination(
		WithConsoleTemplate("$M"),
		WithConsoleColor(),
		WithConsoleWriters(&stdout, &stderr),
	)
	fm := NewFormatter(time.Now())
	require.NoError(t, d.Start())

	d.Write(fm, &Record{Level: ErrorLevel, Message: "boom"})
	assert.Equal(t, "\x1b[31mboom\x1b[0m\n", stderr.String())

	d.Write(fm, &Record{Level: InfoLevel, Message: "fine"})
	assert.Equal(t, "\x1b[32mfine\x1b[0m\n", stdout.String())
}

func TestANSIColorPluginDisabled(t *testing.T) {
	t.Parallel()
	cp := NewANSIColorPlugin(false)
	assert.Equal(t, "plain", cp.Format(ErrorLevel, "plain"))
}
