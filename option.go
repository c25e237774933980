/*
 * Copyright 2025 The VecOps Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vecops

import (
	"io"

	"github.com/vecops/vecops/logger"
)

// Option configures the engine.
type Option func(*VecOps)

// WithStrictNulls makes a null row a hard failure during row validation
// instead of being skipped. The default skip behavior is the canonical
// contract; strict mode serves callers that want input validated.
func WithStrictNulls() Option {
	return func(v *VecOps) {
		v.strictNulls = true
	}
}

// WithLogger replaces the default logger.
func WithLogger(log logger.Logger) Option {
	return func(v *VecOps) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the level on the default logger.
func WithLogLevel(level logger.Level) Option {
	return func(v *VecOps) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs logging to the given writer at the given level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(v *VecOps) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLogger disables logging entirely.
func WithDiscardLogger() Option {
	return func(v *VecOps) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
