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

// Index identifies a published Record inside a Registry.
// Index 0 is reserved for the sentinel record; it never corresponds to a
// registered type and every query against it reports "not found".
type Index int

// Class is the classification bit set computed for a Record at build time.
type Class uint8

const (
	// ClassFlag marks a type declared as a bit-flag enumeration.
	ClassFlag Class = 1 << iota
	// ClassSigned marks a type whose native storage is a signed integer.
	ClassSigned
	// ClassHasZero marks a type for which zero is a declared value.
	ClassHasZero
	// ClassGapped marks a type whose declared values are not contiguous:
	// for scalars, not a contiguous integer range; for flags, not a
	// contiguous run of single low-order bits.
	ClassGapped
)

// Record is the cached, immutable description of one enumerated type.
//
// A Record is built exactly once, the first time any operation touches its
// type, and is read-only afterwards. The backing value table is owned by the
// Registry that published the Record; callers receive borrowed views that
// must not be retained across Registry.Teardown.
//
// The zero Record is the sentinel: it has no values and fails every query.
type Record struct {
	// name is the canonical type name from the registering Descriptor.
	name string
	// values holds the declared values, strictly ascending, deduplicated,
	// sign/zero-extended to 64 bits.
	values []int64
	// names holds display names aligned with values; may be nil.
	names []string
	// sum is the bitwise OR of all values' unsigned bit patterns.
	sum uint64
	// identity is the stable 64-bit hash of the described type.
	identity uint64
	// size is the native storage width in bytes (1, 2, 4 or 8).
	size uint8
	// class is the classification bit set.
	class Class
}

// NewRecord assembles a Record from an already validated, sorted and
// deduplicated value table. It takes ownership of both slices.
// Intended for Registry implementations; regular callers obtain Records
// from a Registry.
func NewRecord(name string, identity uint64, size uint8, class Class, values []int64, names []string) *Record {
	var sum uint64
	for _, v := range values {
		sum |= uint64(v)
	}
	return &Record{
		name:     name,
		values:   values,
		names:    names,
		sum:      sum,
		identity: identity,
		size:     size,
		class:    class,
	}
}

// TypeName returns the canonical name of the described type,
// e.g. "domain.Color"; "" for the sentinel.
func (r *Record) TypeName() string { return r.name }

// Len returns the number of distinct declared values; 0 for the sentinel.
func (r *Record) Len() int { return len(r.values) }

// IsSentinel reports whether r is the reserved always-invalid record.
func (r *Record) IsSentinel() bool { return len(r.values) == 0 }

// Values returns the sorted value table as a borrowed read-only view.
// Callers must not modify it or retain it across Registry.Teardown.
func (r *Record) Values() []int64 { return r.values }

// Value returns the i-th declared value. The caller must ensure
// 0 <= i < Len; query-layer helpers clamp before calling.
func (r *Record) Value(i int) int64 { return r.values[i] }

// MemberNames returns the display names aligned with Values, or nil if the
// type was registered without names. Borrowed view, same rules as Values.
func (r *Record) MemberNames() []string { return r.names }

// MemberName returns the display name of the i-th declared value,
// or "" if no name is available.
func (r *Record) MemberName(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// Sum returns the bitwise OR of all declared values' bit patterns.
// For flag types this is the union of all legal bits.
func (r *Record) Sum() uint64 { return r.sum }

// Identity returns the stable 64-bit hash of the described type.
// The sentinel's identity is 0 and matches no type.
func (r *Record) Identity() uint64 { return r.identity }

// Size returns the native storage width of the type in bytes.
func (r *Record) Size() uint8 { return r.size }

// Class returns the classification bit set.
func (r *Record) Class() Class { return r.class }

// IsFlag reports whether the type is a bit-flag enumeration.
func (r *Record) IsFlag() bool { return r.class&ClassFlag != 0 }

// IsSigned reports whether the native storage is a signed integer type.
func (r *Record) IsSigned() bool { return r.class&ClassSigned != 0 }

// HasZero reports whether zero is a declared value.
func (r *Record) HasZero() bool { return r.class&ClassHasZero != 0 }

// HasGaps reports whether the declared values are non-contiguous.
func (r *Record) HasGaps() bool { return r.class&ClassGapped != 0 }

// Min returns the smallest declared value, or 0 for the sentinel.
func (r *Record) Min() int64 {
	if len(r.values) == 0 {
		return 0
	}
	return r.values[0]
}

// Max returns the largest declared value, or 0 for the sentinel.
func (r *Record) Max() int64 {
	if len(r.values) == 0 {
		return 0
	}
	return r.values[len(r.values)-1]
}

// Default returns the safest representable value of the type: zero when
// zero is declared, otherwise the smallest declared value.
func (r *Record) Default() int64 {
	if r.class&ClassHasZero != 0 {
		return 0
	}
	return r.Min()
}

// Matches reports whether r describes the type identified by identity with
// the given storage width. The sentinel matches nothing.
func (r *Record) Matches(identity uint64, size uint8) bool {
	return r.identity != 0 && r.identity == identity && r.size == size
}
