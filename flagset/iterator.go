/*
   Copyright 2025 The DIRPX Authors.

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

// Package flagset enumerates the set bits of a 64-bit mask as an ordered,
// restartable sequence of single-bit masks, scanning from bit 0 upward.
// The iterator is a plain value; no operation allocates.
package flagset

import (
	"math/bits"
)

// Iterator walks the set bits of a mask in ascending order.
// The zero Iterator is an exhausted iterator over the empty mask.
type Iterator struct {
	// mask is the full bit set the iterator was created over.
	mask uint64
	// rest holds the bits not yet yielded by Advance.
	rest uint64
	// cur is the bit found by the most recent successful Advance.
	cur uint64
}

// New returns an Iterator over mask, positioned before the first set bit.
func New(mask uint64) Iterator {
	return Iterator{mask: mask, rest: mask}
}

// Mask returns the full bit set the iterator was created over.
func (it Iterator) Mask() uint64 { return it.mask }

// Count returns the number of set bits in the mask.
func (it Iterator) Count() int {
	return bits.OnesCount64(it.mask)
}

// Bit returns the i-th set bit of the mask in ascending order (0-based)
// as a single-bit mask. Out-of-range i returns 0, the "no bit" mask;
// callers test the returned mask rather than relying on a failure path.
// The cursor is not touched.
func (it Iterator) Bit(i int) uint64 {
	if i < 0 {
		return 0
	}
	m := it.mask
	for ; i > 0 && m != 0; i-- {
		m &= m - 1
	}
	return m & -m
}

// Advance moves the cursor to the next set bit and reports whether one was
// found. After a true return, Current yields the found bit.
func (it *Iterator) Advance() bool {
	if it.rest == 0 {
		return false
	}
	it.cur = it.rest & -it.rest
	it.rest &= it.rest - 1
	return true
}

// Current returns the bit found by the most recent successful Advance.
// It is only meaningful after an Advance that returned true.
func (it Iterator) Current() uint64 { return it.cur }

// Reset returns the cursor to before the first set bit.
func (it *Iterator) Reset() {
	it.rest = it.mask
	it.cur = 0
}

// TryTakeNext combines Advance and Current into one pull:
// it returns the next set bit and whether one was found.
func (it *Iterator) TryTakeNext() (uint64, bool) {
	if !it.Advance() {
		return 0, false
	}
	return it.cur, true
}

// Contains reports whether bit (a non-empty sub-mask) is fully contained
// in the mask. O(1), independent of the cursor.
func (it Iterator) Contains(bit uint64) bool {
	return bit != 0 && it.mask&bit == bit
}
