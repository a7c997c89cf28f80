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

// IfElse is a branchless ternary select over int64:
// whenTrue*cond + whenFalse*(1-cond). cond carries the canonical 0/1
// encoding, so exactly one of the two products survives.
func IfElse(cond Binary, whenTrue, whenFalse int64) int64 {
	c := int64(cond)
	return whenTrue*c + whenFalse*(1-c)
}

// IfElseUint64 is IfElse over uint64.
func IfElseUint64(cond Binary, whenTrue, whenFalse uint64) uint64 {
	c := uint64(cond)
	return whenTrue*c + whenFalse*(1-c)
}

// IfElseEnum is IfElse over any enumerated value type. The operands are
// re-expressed as their 64-bit numeric masks, selected arithmetically,
// and converted back; the round trip truncates to the native width, so
// differing bit-widths select consistently.
func IfElseEnum[T apis.Enum](cond Binary, whenTrue, whenFalse T) T {
	return T(IfElse(cond, int64(whenTrue), int64(whenFalse)))
}
