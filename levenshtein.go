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
	"errors"
	"fmt"

	"znkr.io/levenshtein/internal/mbleven"
	"znkr.io/levenshtein/internal/myers"
	"znkr.io/levenshtein/internal/runes"
)

// singleWordLimit is the largest pattern length the single-word bit-parallel kernel can hold in
// one 64-bit machine word.
const singleWordLimit = 64

// ErrNegativeBound is returned by [Bounded], [BoundedRunes], [Debug] and [DebugRunes] when k is
// negative. A bound describes how much work the caller is willing to pay for, so a negative one
// has no meaning.
var ErrNegativeBound = errors.New("levenshtein: bound must be non-negative")

// Distance returns the Levenshtein distance between a and b: the minimum number of
// single-code-point insertions, deletions and substitutions needed to turn a into b.
//
// a and b are decoded as sequences of Unicode code points, not bytes; [Distance]("あいうえお",
// "あいうえ") is 1, not 3.
func Distance(a, b string) int {
	return DistanceRunes(runes.FromString(a), runes.FromString(b))
}

// DistanceRunes is [Distance] for callers that already have a and b decoded into code points.
func DistanceRunes(a, b []rune) int {
	return dispatch(runes.Of(a), runes.Of(b), nil)
}

// Bounded returns min(Distance(a, b), k+1). It returns k+1 without running a kernel when the
// lengths of a and b differ by more than k, and for k <= 3 it uses kernels that are cheaper than
// [Distance] (an equality check for k == 0, pattern enumeration for k in {1, 2, 3}), which helps
// when the caller only cares whether two strings are "close enough" (for example, during a
// dictionary or index lookup with a fixed tolerance). For k >= 4 it computes the full distance
// with the same bit-parallel kernel as [Distance] and clamps the result; there is no early exit.
//
// Bounded returns [ErrNegativeBound] if k is negative.
func Bounded(a, b string, k int) (int, error) {
	return BoundedRunes(runes.FromString(a), runes.FromString(b), k)
}

// BoundedRunes is [Bounded] for callers that already have a and b decoded into code points.
func BoundedRunes(a, b []rune, k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeBound
	}
	return dispatch(runes.Of(a), runes.Of(b), &k), nil
}

// dispatch implements the normalization and kernel-selection rules: arrange s, t so that s is no
// longer than t, apply the length-difference lower bound, and route to whichever kernel is
// cheapest for the resulting shape. k == nil means "unbounded".
func dispatch(a, b []rune, k *int) int {
	s, t := a, b
	if len(s) > len(t) {
		s, t = t, s
	}
	n, m := len(s), len(t)
	ell := m - n // always >= 0 after the swap above

	if k != nil && ell > *k {
		// The length-difference lower bound (I3) alone proves the true distance exceeds k.
		return *k + 1
	}
	if n == 0 {
		if k != nil {
			return min(m, *k+1)
		}
		return m
	}

	if k == nil {
		return unbounded(s, t)
	}
	return bounded(s, t, *k)
}

func unbounded(s, t []rune) int {
	if len(t) <= singleWordLimit {
		return myers.Distance(s, t)
	}
	return myers.Blocked(s, t)
}

func bounded(s, t []rune, k int) int {
	switch {
	case k == 0:
		if equalRunes(s, t) {
			return 0
		}
		return 1
	case k >= 1 && k <= 3:
		return mbleven.Distance(s, t, k)
	case len(t) <= singleWordLimit:
		return min(myers.Distance(s, t), k+1)
	default:
		return min(myers.Blocked(s, t), k+1)
	}
}

func equalRunes(s, t []rune) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

func invalidMblevenBound(k *int) error {
	if k == nil {
		return fmt.Errorf("levenshtein: method %v requires a bound in {1, 2, 3}, got none", MethodMbleven)
	}
	if *k < 1 || *k > 3 {
		return fmt.Errorf("levenshtein: method %v requires a bound in {1, 2, 3}, got %d", MethodMbleven, *k)
	}
	return nil
}
