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

package apis

// Descriptor is the opaque registration input for one enumerated type:
// everything a Registry needs to build and publish a Record.
//
// Descriptors are normally derived via utils/enumtype.Describe rather than
// filled in by hand. Values carries the declared values sign/zero-extended
// to 64 bits, in any order; the Registry sorts and deduplicates during the
// build step. Names, when non-nil, must be aligned with Values and is
// permuted together with it.
type Descriptor struct {
	// Name is the canonical type name, e.g. "domain.Color".
	Name string
	// Identity is the stable 64-bit hash identifying the type.
	// It must be non-zero and must uniquely determine the type
	// for the lifetime of the registry.
	Identity uint64
	// Size is the native storage width in bytes; one of 1, 2, 4, 8.
	Size uint8
	// Signed reports whether the native storage is a signed integer type.
	Signed bool
	// Flags reports whether the type is a bit-flag enumeration.
	Flags bool
	// Values are the declared values, 64-bit extended, in any order.
	Values []int64
	// Names are optional display names aligned with Values.
	Names []string
}
