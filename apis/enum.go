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

// Enum is the set of integer types an enumerated type may be defined over.
// Every member has a native storage width of 1, 2, 4 or 8 bytes and its
// values are representable in 64 bits after sign/zero extension.
type Enum interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Flagger marks an enumerated type as a bit-flag enumeration whose legal
// values are intended to be combined bitwise.
//
// The capability is queried exactly once per type, when the type's
// Descriptor is first derived; implementations should return a constant.
//
//	type Perm uint8
//	func (Perm) EnumFlags() bool { return true }
type Flagger interface {
	// EnumFlags reports whether the type is a bit-flag enumeration.
	EnumFlags() bool
}
