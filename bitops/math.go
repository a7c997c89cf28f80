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

// Abs returns the absolute value of x via sign-mask folding.
// Two's complement edge: Abs(math.MinInt64) overflows back to MinInt64.
func Abs(x int64) int64 {
	m := x >> 63
	return (x + m) ^ m
}

// Sign returns 1 for positive x, 0 for zero, -1 for negative x.
// The negative case ORs in all ones, which absorbs the low bit from -x.
func Sign(x int64) int64 {
	return (x >> 63) | int64(uint64(-x)>>63)
}

// Scale moves the magnitude of x by delta while preserving x's sign.
// Zero is treated as carrying its own sign: it never scales away from zero.
func Scale(x, delta int64) int64 {
	return x + delta*Sign(x)
}

// Min returns the smaller of a and b.
func Min(a, b int64) int64 {
	return IfElse(IsGreaterThan(a, b), b, a)
}

// Max returns the larger of a and b.
func Max(a, b int64) int64 {
	return IfElse(IsGreaterThan(a, b), a, b)
}

// Clamp limits x to the closed interval [lo, hi].
// The caller must ensure lo <= hi.
func Clamp(x, lo, hi int64) int64 {
	return Min(Max(x, lo), hi)
}
