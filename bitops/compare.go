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

// Predicates over int64 returning Binary. Each is a pure function of its
// inputs with no data-dependent branch: the executed instruction sequence
// is the same for every input value.

// IsZero reports x == 0.
func IsZero(x int64) Binary {
	return IsNotZero(x).Not()
}

// IsNotZero reports x != 0. Any set bit of x or -x lands in the sign
// position; an unsigned shift extracts it.
func IsNotZero(x int64) Binary {
	return Binary(uint64(x|-x) >> 63)
}

// IsPositive reports x >= 0, i.e. the sign bit is clear.
func IsPositive(x int64) Binary {
	return Binary(uint64(^x) >> 63)
}

// IsGreaterThan reports a > b. The subtraction b-a may overflow, so the
// raw difference sign is corrected by the operand signs: the result sign
// is taken from b when the operands disagree in sign, and from b-a
// otherwise. This is the textbook overflow-safe signed comparison.
func IsGreaterThan(a, b int64) Binary {
	d := b - a
	return Binary(uint64(d^((b^a)&(d^b))) >> 63)
}

// IsGreaterOrEqualThan reports a >= b.
func IsGreaterOrEqualThan(a, b int64) Binary {
	return IsGreaterThan(b, a).Not()
}
