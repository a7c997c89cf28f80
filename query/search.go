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

package query

import (
	"dirpx.dev/enumx/bitops"
)

// Search locates key in a sorted ascending value table and returns its
// position, or -1 when absent.
//
// The search is a classic iterative binary search reshaped so the only
// branch is the loop continuation test. The usual go-left/go-right branch
// becomes an arithmetic select: the window origin advances by half exactly
// when the element below the midpoint is smaller than the key, so every
// iteration executes the same instruction sequence regardless of data.
// O(log n), no recursion, no allocation.
func Search(values []int64, key int64) int {
	n := len(values)
	if n == 0 {
		return -1
	}
	base := 0
	for n > 1 {
		half := n >> 1
		base += int(bitops.IfElse(
			bitops.IsGreaterThan(key, values[base+half-1]),
			int64(half), 0,
		))
		n -= half
	}
	return int(bitops.IfElse(bitops.IsZero(values[base]^key), int64(base), -1))
}
