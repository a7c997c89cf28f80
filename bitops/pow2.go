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

package bitops

// IsPowerOfTwo reports whether x has at most one bit set.
// Zero counts as true, matching the bit identity x & (x-1) == 0.
func IsPowerOfTwo(x int64) Binary {
	return IsZero(x & (x - 1))
}

// ClosestPowerOfTwoGreaterThan returns the smallest power of two strictly
// greater than x, via the fill-right-then-increment trick. The result
// wraps to 0 for inputs at or above 1<<63.
func ClosestPowerOfTwoGreaterThan(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x + 1
}

// ClosestDivisibleBy returns the multiple of divisor nearest to x, chosen
// by comparing the absolute distances to the two surrounding multiples.
// Equal distances keep the truncated multiple. divisor must be non-zero;
// a zero divisor falls through to the host's integer division fault.
func ClosestDivisibleBy(x, divisor int64) int64 {
	base := x / divisor * divisor
	next := base + Sign(x-base)*Abs(divisor)
	return IfElse(IsGreaterThan(Abs(x-base), Abs(x-next)), next, base)
}

// WithinRange reports whether x lies strictly between a and b,
// regardless of which bound is larger.
func WithinRange(x, a, b int64) Binary {
	lo := Min(a, b)
	hi := Max(a, b)
	return IsGreaterThan(x, lo).And(IsGreaterThan(hi, x))
}

// Remap linearly interpolates x from [inMin, inMax] to [outMin, outMax].
// Division truncates toward zero. The caller must ensure inMax != inMin;
// equal input bounds are a precondition violation surfaced as the host's
// division-by-zero fault rather than caught here.
func Remap(x, inMin, inMax, outMin, outMax int64) int64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
