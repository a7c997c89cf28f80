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

// Package enumtype derives apis.Descriptor metadata from concrete Go
// enumerated types: storage width, signedness, a stable 64-bit identity
// hash, the bit-flag capability, and 64-bit extensions of declared values.
//
// Derivation runs once per distinct type; results are memoized so the
// query hot path pays only a cache load.
package enumtype

import (
	"fmt"
	"hash/fnv"
	"path"
	"reflect"
	"strconv"
	"sync"

	"dirpx.dev/enumx/apis"
)

// typeMeta is the memoized per-type metadata.
type typeMeta struct {
	// name is the canonical "pkg.Type" name.
	name string
	// identity is the stable 64-bit hash of the type.
	identity uint64
	// size is the native storage width in bytes.
	size uint8
	// signed reports signed native storage.
	signed bool
	// flags reports the bit-flag capability.
	flags bool
}

// metaCache caches typeMeta by reflect.Type.
var metaCache sync.Map // key: reflect.Type, val: *typeMeta

// flaggerType is the capability interface checked once per type.
var flaggerType = reflect.TypeOf((*apis.Flagger)(nil)).Elem()

// metaOf computes or loads the metadata for t.
func metaOf(t reflect.Type) *typeMeta {
	if v, ok := metaCache.Load(t); ok {
		return v.(*typeMeta)
	}

	m := &typeMeta{size: uint8(t.Size())}

	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		m.signed = true
	}

	// Canonical "pkg.Type" name; builtin integer types keep their kind name.
	m.name = t.Name()
	if m.name == "" {
		m.name = t.Kind().String()
	}
	if p := t.PkgPath(); p != "" {
		m.name = path.Base(p) + "." + m.name
	}

	// The flags capability is an attribute of the type, queried exactly
	// once: the type must implement apis.Flagger and answer true.
	if t.Implements(flaggerType) {
		m.flags = reflect.Zero(t).Interface().(apis.Flagger).EnumFlags()
	}

	// Identity hashes the full type path plus width and signedness, so
	// same-named types of different storage never collide on a rename.
	h := fnv.New64a()
	h.Write([]byte(t.PkgPath()))
	h.Write([]byte{'.'})
	h.Write([]byte(t.Name()))
	h.Write([]byte{'#', m.size, byte(t.Kind())})
	m.identity = h.Sum64()
	if m.identity == 0 {
		// Identity 0 is reserved for the sentinel record.
		m.identity = 1
	}

	actual, _ := metaCache.LoadOrStore(t, m)
	return actual.(*typeMeta)
}

// Describe derives the registration Descriptor for T from its declared
// values. The bit-flag capability is discovered via apis.Flagger; member
// display names come from fmt.Stringer when T implements it, otherwise
// the decimal value is used.
func Describe[T apis.Enum](values []T) apis.Descriptor {
	m := metaOf(reflect.TypeOf((*T)(nil)).Elem())

	vs := make([]int64, len(values))
	ns := make([]string, len(values))
	for i, v := range values {
		vs[i] = int64(v)
		if s, ok := any(v).(fmt.Stringer); ok {
			ns[i] = s.String()
		} else {
			ns[i] = strconv.FormatInt(int64(v), 10)
		}
	}

	return apis.Descriptor{
		Name:     m.name,
		Identity: m.identity,
		Size:     m.size,
		Signed:   m.signed,
		Flags:    m.flags,
		Values:   vs,
		Names:    ns,
	}
}

// DescribeFlags is Describe with the bit-flag capability forced on,
// for types that cannot implement apis.Flagger.
func DescribeFlags[T apis.Enum](values []T) apis.Descriptor {
	d := Describe(values)
	d.Flags = true
	return d
}

// Identity returns the stable 64-bit identity hash of T.
func Identity[T apis.Enum]() uint64 {
	return metaOf(reflect.TypeOf((*T)(nil)).Elem()).identity
}

// Width returns the native storage width of T in bytes.
func Width[T apis.Enum]() uint8 {
	return metaOf(reflect.TypeOf((*T)(nil)).Elem()).size
}

// Matches reports whether r was built for T: identity and storage width
// must both agree. The sentinel matches no type.
func Matches[T apis.Enum](r *apis.Record) bool {
	m := metaOf(reflect.TypeOf((*T)(nil)).Elem())
	return r.Matches(m.identity, m.size)
}

// Bits re-expresses v as its 64-bit numeric mask. Signed values are
// sign-extended and unsigned values zero-extended through Go's ordinary
// value conversions, never blind reinterpretation, so differently sized
// native representations extend consistently.
func Bits[T apis.Enum](v T) int64 {
	return int64(v)
}

// FromBits converts a 64-bit mask back to T, truncating to the native
// width. It is the inverse of Bits for every representable value.
func FromBits[T apis.Enum](b int64) T {
	return T(b)
}
