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

package myers

import (
	"math/rand/v2"
	"strings"
	"testing"

	"znkr.io/levenshtein/internal/wagnerfischer"
)

func TestBlocked(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want int
	}{
		{"identical-65", strings.Repeat("x", 65), strings.Repeat("x", 65), 0},
		{"one-block-boundary", strings.Repeat("a", 64) + "b", strings.Repeat("a", 65), 1},
		{"two-blocks", strings.Repeat("a", 129), strings.Repeat("a", 128) + "b", 1},
		{"empty-pattern", "", strings.Repeat("a", 65), 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tx := []rune(tt.s), []rune(tt.t)
			if len(s) > len(tx) {
				s, tx = tx, s
			}
			if got := Blocked(s, tx); got != tt.want {
				t.Errorf("Blocked(%q, %q) = %d, want %d", tt.s, tt.t, got, tt.want)
			}
		})
	}
}

// TestBlocked_boundaryLengths exercises pattern lengths right at and around multiples of the
// 64-bit block size, where carry propagation between blocks is easiest to get wrong.
func TestBlocked_boundaryLengths(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	const alphabet = "ab"
	randString := func(n int) []rune {
		r := make([]rune, n)
		for i := range r {
			r[i] = rune(alphabet[rng.IntN(len(alphabet))])
		}
		return r
	}
	for _, n := range []int{63, 64, 65, 127, 128, 129, 200} {
		for i := 0; i < 20; i++ {
			s := randString(n)
			tx := randString(n + rng.IntN(5) - 2)
			if len(s) > len(tx) {
				s, tx = tx, s
			}
			want := wagnerfischer.Distance(s, tx)
			if got := Blocked(s, tx); got != want {
				t.Fatalf("n=%d, iter=%d: Blocked(%q, %q) = %d, want %d", n, i, string(s), string(tx), got, want)
			}
		}
	}
}

func TestBlocked_agreesWithDistanceAtBoundary(t *testing.T) {
	// At exactly 64 code points, Distance and Blocked must agree: this is the handoff point
	// between the single-word and blocked kernels in the public dispatcher.
	rng := rand.New(rand.NewPCG(3, 4))
	const alphabet = "abcd"
	randString := func(n int) []rune {
		r := make([]rune, n)
		for i := range r {
			r[i] = rune(alphabet[rng.IntN(len(alphabet))])
		}
		return r
	}
	for i := 0; i < 50; i++ {
		s := randString(64)
		tx := randString(64)
		if got, want := Blocked(s, tx), Distance(s, tx); got != want {
			t.Fatalf("iteration %d: Blocked(%q, %q) = %d, want %d (Distance)", i, string(s), string(tx), got, want)
		}
	}
}
