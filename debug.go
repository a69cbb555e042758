// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package levenshtein

import (
	"fmt"

	"znkr.io/levenshtein/internal/mbleven"
	"znkr.io/levenshtein/internal/myers"
	"znkr.io/levenshtein/internal/runes"
	"znkr.io/levenshtein/internal/wagnerfischer"
)

// Method selects a single kernel to run directly, bypassing the dispatcher that [Distance] and
// [Bounded] use to pick one automatically. It exists so regression tests (this module's own, and
// any downstream consumer's) can cross-check the kernels against each other on identical inputs;
// ordinary callers should use [Distance] or [Bounded] instead.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Method
type Method int

const (
	MethodWagnerFischer Method = iota // the O(n*m) DP kernel, used as ground truth
	MethodMbleven                     // the constant-pattern kernel, requires a bound in {1,2,3}
	MethodMyers                       // the bit-parallel kernel (single-word or blocked, as needed)
)

// Debug runs exactly the kernel named by method against a and b and returns its result, for
// cross-checking kernels against one another. k is required for [MethodMbleven] and must be in
// {1, 2, 3}; it is optional for the other two methods and, if given, the result is clamped to
// k+1 the same way [Bounded] clamps.
//
// Debug returns [ErrNegativeBound] if k is negative, and an error if method is [MethodMbleven] and
// k is nil or outside {1, 2, 3}.
func Debug(method Method, a, b string, k *int) (int, error) {
	return DebugRunes(method, runes.FromString(a), runes.FromString(b), k)
}

// DebugRunes is [Debug] for callers that already have a and b decoded into code points.
func DebugRunes(method Method, a, b []rune, k *int) (int, error) {
	if k != nil && *k < 0 {
		return 0, ErrNegativeBound
	}

	s, t := runes.Of(a), runes.Of(b)
	if len(s) > len(t) {
		s, t = t, s
	}

	var d int
	switch method {
	case MethodWagnerFischer:
		d = wagnerfischer.Distance(s, t)
	case MethodMbleven:
		if err := invalidMblevenBound(k); err != nil {
			return 0, err
		}
		d = mbleven.Distance(s, t, *k)
		return d, nil // mbleven already clamps internally to k+1
	case MethodMyers:
		if len(t) <= singleWordLimit {
			d = myers.Distance(s, t)
		} else {
			d = myers.Blocked(s, t)
		}
	default:
		return 0, fmt.Errorf("levenshtein: unknown method %v", method)
	}

	if k != nil {
		d = min(d, *k+1)
	}
	return d, nil
}
