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

// Package cast wraps github.com/spf13/cast with the conversions used by
// the engine, adding explicit nil handling: a nil scalar is a missing
// value, never zero.
package cast

import (
	"fmt"

	"github.com/spf13/cast"
)

// ToFloat64E converts a scalar to float64, failing on nil and on
// non-numeric values.
func ToFloat64E(v interface{}) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("cannot convert nil to float64")
	}
	return cast.ToFloat64E(v)
}

// ToFloat64 converts a scalar to float64, returning def when the
// conversion fails.
func ToFloat64(v interface{}, def float64) float64 {
	f, err := ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// ToInt64E converts a scalar to int64, failing on nil and on
// non-numeric values.
func ToInt64E(v interface{}) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("cannot convert nil to int64")
	}
	return cast.ToInt64E(v)
}

// ToStringE converts a scalar to its string form, failing on nil.
func ToStringE(v interface{}) (string, error) {
	if v == nil {
		return "", fmt.Errorf("cannot convert nil to string")
	}
	return cast.ToStringE(v)
}

// ToString converts a scalar to its string form, rendering nil as "null".
func ToString(v interface{}) string {
	if v == nil {
		return "null"
	}
	return cast.ToString(v)
}

// IsInteger reports whether the value is one of the Go integer kinds.
func IsInteger(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
