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

// Package query answers membership and ordering questions about enumerated
// values using a published apis.Record and the bitops primitives.
//
// Every operation first checks that T is the type the record was built
// for; a mismatch degrades to false / -1 / the zero value rather than a
// fault, so a caller bug surfaces as "not found" and the hot path stays
// free of error plumbing. Callers needing strict detection compare
// identities directly via enumtype.Matches.
package query

import (
	"math/bits"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/bitops"
	"dirpx.dev/enumx/flagset"
	"dirpx.dev/enumx/utils/enumtype"
)

// IsValid reports whether v is a legal value of the type described by rec.
//
// Flag types accept any subset of the union of declared bits, including 0
// and combinations never declared as named members. Contiguous scalars use
// a range test whose bound handling follows cfg.StrictBounds; gapped
// scalars use the branchless table search.
func IsValid[T apis.Enum](rec *apis.Record, v T, cfg apis.Config) bool {
	if rec == nil || !enumtype.Matches[T](rec) {
		return false
	}
	b := enumtype.Bits(v)
	switch {
	case rec.IsFlag():
		return uint64(b)&^rec.Sum() == 0
	case !rec.HasGaps():
		if cfg.StrictBounds {
			// Legacy exclusive interior test: rejects the endpoints.
			return bitops.IsGreaterThan(b, rec.Min()).
				And(bitops.IsGreaterThan(rec.Max(), b)).Bool()
		}
		return bitops.IsGreaterOrEqualThan(b, rec.Min()).
			And(bitops.IsGreaterOrEqualThan(rec.Max(), b)).Bool()
	default:
		return Search(rec.Values(), b) >= 0
	}
}

// IndexOf returns v's ordinal position among the declared values in
// ascending order, or -1 when v is not a declared value.
func IndexOf[T apis.Enum](rec *apis.Record, v T) int {
	if rec == nil || rec.Len() == 0 || !enumtype.Matches[T](rec) {
		return -1
	}
	b := enumtype.Bits(v)
	switch {
	case rec.IsFlag() && !rec.HasGaps():
		// A contiguous flag run indexes by bit position, rebased on the
		// run's lowest bit so runs not starting at bit 0 stay aligned
		// with the value table.
		m := uint64(b)
		single := bitops.Make(b).And(bitops.IsPowerOfTwo(b))
		declared := bitops.FromBool(m&rec.Sum() == m)
		// TrailingZeros64(0) is 64, but single is 0 for m == 0, so the
		// select below discards the bogus offset.
		idx := int64(bits.TrailingZeros64(m) - bits.TrailingZeros64(uint64(rec.Min())))
		return int(bitops.IfElse(single.And(declared), idx, -1))
	case !rec.HasGaps():
		// Contiguous scalars index by offset from the minimum.
		in := bitops.IsGreaterOrEqualThan(b, rec.Min()).
			And(bitops.IsGreaterOrEqualThan(rec.Max(), b))
		return int(bitops.IfElse(in, b-rec.Min(), -1))
	default:
		return Search(rec.Values(), b)
	}
}

// ValueAt returns the i-th declared value in ascending order. The index is
// clamped into [0, Len-1] first, so out-of-range requests yield the
// nearest endpoint instead of failing. The sentinel yields the zero value.
func ValueAt[T apis.Enum](rec *apis.Record, i int) T {
	if rec == nil || rec.Len() == 0 || !enumtype.Matches[T](rec) {
		var zero T
		return zero
	}
	j := bitops.Clamp(int64(i), 0, int64(rec.Len()-1))
	return enumtype.FromBits[T](rec.Value(int(j)))
}

// Next returns the declared value following v in ascending order.
// The maximum is its own successor: the table boundary clamps instead of
// wrapping around. An undeclared v yields the first declared value.
func Next[T apis.Enum](rec *apis.Record, v T) T {
	return ValueAt[T](rec, IndexOf(rec, v)+1)
}

// Last returns the declared value preceding v in ascending order.
// The minimum is its own predecessor; no cyclic wraparound.
func Last[T apis.Enum](rec *apis.Record, v T) T {
	return ValueAt[T](rec, IndexOf(rec, v)-1)
}

// Flags returns an iterator over the set bits of v, for walking the
// individual flags of a flag-type value. A non-flag record or a value
// carrying undeclared bits yields an empty iterator.
func Flags[T apis.Enum](rec *apis.Record, v T) flagset.Iterator {
	if rec == nil || !rec.IsFlag() || !enumtype.Matches[T](rec) {
		return flagset.New(0)
	}
	m := uint64(enumtype.Bits(v))
	if m&^rec.Sum() != 0 {
		return flagset.New(0)
	}
	return flagset.New(m)
}

// AllFlags returns an iterator over the union of all declared flag bits
// of a flag-type record; empty for scalar records and the sentinel.
func AllFlags(rec *apis.Record) flagset.Iterator {
	if rec == nil || !rec.IsFlag() {
		return flagset.New(0)
	}
	return flagset.New(rec.Sum())
}
