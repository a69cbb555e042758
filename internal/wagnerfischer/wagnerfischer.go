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

// Package wagnerfischer implements the classical O(n*m) dynamic-programming edit-distance
// recurrence.
//
// It is not the fast path: [internal/mbleven] and [internal/myers] exist precisely to avoid
// running this kernel at all. Its value is as ground truth -- it is the kernel every other kernel
// is checked against. The public dispatcher never selects it; it is reached only through the
// debug interface and the tests.
package wagnerfischer

// Distance computes the Levenshtein distance between s and t using the Wagner-Fischer
// recurrence:
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                                  if s[i-1] == t[j-1]
//	D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])   otherwise
//
// The implementation keeps two rolling rows of length len(s)+1 rather than the full
// (len(s)+1)x(len(t)+1) matrix, so memory is O(min(n,m)) when the caller passes the shorter
// sequence as s. There is no early termination: every cell of the matrix is computed, which is
// what makes this kernel a trustworthy but slow reference.
func Distance(s, t []rune) int {
	n := len(s)
	if n == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return n
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(t); j++ {
		curr[0] = j
		for i := 1; i <= n; i++ {
			if s[i-1] == t[j-1] {
				curr[i] = prev[i-1]
				continue
			}
			del := prev[i] + 1   // delete s[i-1]
			ins := curr[i-1] + 1 // insert t[j-1]
			sub := prev[i-1] + 1 // substitute
			curr[i] = min(del, min(ins, sub))
		}
		prev, curr = curr, prev
	}
	return prev[n]
}
