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

type Options func(*Config)

// WithLevel 设置最低日志级别，如果不设置，默认级别是InfoLevel
func WithLevel(level LogLevel) Options {
	return func(c *Config) {
		if level.valid() {
			c.minLevel = level
		}
	}
}

// WithQueueSize 设置串行化队列的容量
func WithQueueSize(size int) Options {
	return func(c *Config) {
		if size > 0 {
			c.queueSize = size
		}
	}
}

// WithIdentity 设置日志器自身的标识
func WithIdentity(identity string) Options {
	return func(c *Config) {
		c.identity = identity
	}
}
