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

import (
	"dirpx.dev/enumx/apis"
)

// Binary is a boolean carried in the canonical numeric encoding false=0,
// true=1. Every constructor normalizes through bit masking, so a Binary can
// be multiplied, added and masked directly inside branch-free arithmetic
// without first re-checking its encoding.
type Binary int64

// Make normalizes any integer value to a Binary: non-zero becomes 1,
// zero stays 0. The normalization is (x | -x) >> 63 & 1 on the 64-bit
// extension of x, which hoists any set bit into the sign position.
func Make[T apis.Enum](x T) Binary {
	v := int64(x)
	return Binary(uint64(v|-v) >> 63)
}

// FromBool converts b to its canonical 0/1 encoding.
func FromBool(b bool) Binary {
	var v Binary
	if b {
		v = 1
	}
	return v
}

// Bool converts b to a Go bool.
func (b Binary) Bool() bool { return b != 0 }

// Int64 returns the canonical 0/1 value.
func (b Binary) Int64() int64 { return int64(b) }

// Uint64 returns the canonical 0/1 value.
func (b Binary) Uint64() uint64 { return uint64(b) }

// Not returns the logical negation: 1 - b.
func (b Binary) Not() Binary { return 1 - b }

// And returns the conjunction of b and o.
func (b Binary) And(o Binary) Binary { return b & o }

// Or returns the disjunction of b and o.
func (b Binary) Or(o Binary) Binary { return b | o }

// Xor returns the exclusive disjunction of b and o.
func (b Binary) Xor(o Binary) Binary { return b ^ o }
