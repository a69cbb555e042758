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

// Package levenshtein computes the Levenshtein edit distance between two sequences of Unicode
// code points: the minimum number of single-code-point insertions, deletions and substitutions
// needed to turn one into the other.
//
// The package picks one of three kernels per call depending on the inputs and, when a bound k is
// supplied, how small that bound is:
//
//   - For k in {1, 2, 3}, a constant-pattern-enumeration kernel ("mbleven") that is faster than
//     either DP kernel below for these tiny bounds.
//   - For everything else, a bit-parallel kernel (Myers 1999 / Hyyrö) that updates a whole DP
//     column per machine word instead of one cell at a time. (A bound of k = 0 needs no kernel:
//     it is answered by comparing the inputs for equality.)
//   - A classical Wagner-Fischer dynamic-programming kernel, reachable only through [Debug], is
//     kept as ground truth for the other two and as the reference the regression tests check
//     them against.
//
// [Distance] computes the exact distance. [Bounded] computes min(distance, k+1) for a
// non-negative k, which lets callers cap the cost of a lookup against a dictionary or index
// without ever needing the exact distance once it is known to exceed their threshold.
//
// This package does not recover an alignment (which operations, in what order, transform one
// string into the other) -- only the scalar distance. It also does not implement weighted edit
// costs, Damerau transpositions, or approximate-match search structures; see the project's design
// notes for why these are out of scope.
package levenshtein
