/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a suffix.
// Used to tag reconciliation passes and posting batches in logs and webhooks.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// ToFloat coerces a loosely typed value into a finite float64. Anything that
// cannot be read as a number, and NaN or infinities, become 0.
func ToFloat(v interface{}) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToInt coerces a loosely typed value into an int by truncating its numeric
// value; unreadable values become 0.
func ToInt(v interface{}) int {
	f := ToFloat(v)
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int(math.Trunc(f))
}

// ToString coerces a loosely typed value into a string; nil becomes "".
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// firstPresent returns the value of the first key present and non-nil in m.
func firstPresent(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
