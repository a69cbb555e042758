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

const wordBits = 64

// Blocked computes the Levenshtein distance between s and t using the blocked extension of the
// bit-parallel recurrence, for patterns longer than one machine word (len(s) > 64). t may be of
// any length.
//
// # Carry propagation between blocks
//
// [Distance] updates a whole DP column in one shot because a single 64-bit addition ripple-carries
// across all 64 rows for free. When the pattern spans more than one word, that ripple has to be
// carried across the word boundary by hand: processing block b folds in a single carry-in bit hin
// in {-1, 0, +1} -- the same role [Distance] gives the constant "+1" fed into row 0 of its only
// block -- and produces a carry-out hout that becomes the next block's hin. Feeding hin into the
// addition is equivalent to seeding an extra virtual row at the bottom of the previous block, so
// the recurrence is the exact same one as the single-word case, just resumed across a word
// boundary instead of completed within it.
//
// hin for block 0 is always +1 in every column, mirroring the "| 1" that seeds row 0 in
// [Distance]: the first row of the DP table (D[0][j] = j) always increases by exactly one as j
// advances, regardless of the pattern.
//
// Only the block containing the pattern's last row (row len(s)-1) is read for score bookkeeping;
// every other block only matters insofar as it produces the correct hout for the block after it.
func Blocked(s, t []rune) int {
	n := len(s)
	if n == 0 {
		return len(t)
	}
	blocks := (n + wordBits - 1) / wordBits
	lastBlock := blocks - 1
	lastBits := n - lastBlock*wordBits // rows held in the last (possibly partial) block, 1..64
	topOfLast := uint(lastBits - 1)

	peq := newPeqN(s, blocks)

	pv := make([]uint64, blocks)
	mv := make([]uint64, blocks)
	for b := 0; b < lastBlock; b++ {
		pv[b] = ^uint64(0)
	}
	if lastBits == wordBits {
		pv[lastBlock] = ^uint64(0)
	} else {
		pv[lastBlock] = (uint64(1) << uint(lastBits)) - 1
	}

	score := n
	for _, c := range t {
		hin := 1 // seed for block 0, every column: D[0][j] always grows by 1.
		for b := 0; b < blocks; b++ {
			eq := peq.block(c, b)
			p, m := pv[b], mv[b]

			xv := eq | m
			if hin < 0 {
				eq |= 1
			}
			xh := (((eq & p) + p) ^ p) | eq
			ph := m | ^(xh | p)
			mh := p & xh

			top := uint(wordBits - 1)
			if b == lastBlock {
				top = topOfLast
			}
			hout := 0
			switch {
			case ph&(uint64(1)<<top) != 0:
				hout = 1
			case mh&(uint64(1)<<top) != 0:
				hout = -1
			}
			if b == lastBlock {
				score += hout
			}

			ph <<= 1
			mh <<= 1
			switch {
			case hin < 0:
				mh |= 1
			case hin > 0:
				ph |= 1
			}
			pv[b] = mh | ^(xv | ph)
			mv[b] = ph & xv

			hin = hout
		}
	}
	return score
}
