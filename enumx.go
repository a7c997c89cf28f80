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

package enumx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/flagset"
	"dirpx.dev/enumx/query"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/utils/enumtype"
)

// init initializes the global registry state.
func init() {
	cfg := config.DefaultConfig()
	st.Store(&state{cfg: cfg, reg: registry.New(cfg)})
}

// Register publishes the record for T from its declared values and returns
// its registry index. Idempotent per type; the first call performs the full
// build, later calls return the cached index.
// This is a convenience wrapper around the global registry.
func Register[T apis.Enum](values ...T) (apis.Index, error) {
	return st.Load().reg.GetOrCreate(enumtype.Describe(values))
}

// RegisterFlags is Register with the bit-flag capability forced on, for
// flag types that do not implement apis.Flagger.
func RegisterFlags[T apis.Enum](values ...T) (apis.Index, error) {
	return st.Load().reg.GetOrCreate(enumtype.DescribeFlags(values))
}

// Lookup returns the published record for T as a borrowed read-only view,
// or the sentinel record if T was never registered. Holding the record
// directly avoids the identity lookup on repeated queries.
func Lookup[T apis.Enum]() *apis.Record {
	reg := st.Load().reg
	return reg.Record(reg.LookupIndex(enumtype.Identity[T]()))
}

// IsValid reports whether v is a declared value of T (or, for flag types,
// any combination of declared bits). False if T was never registered.
func IsValid[T apis.Enum](v T) bool {
	s := st.Load()
	return query.IsValid(s.reg.Record(s.reg.LookupIndex(enumtype.Identity[T]())), v, s.cfg)
}

// IndexOf returns v's ordinal position among T's declared values in
// ascending order, or -1 if v is not declared or T was never registered.
func IndexOf[T apis.Enum](v T) int {
	return query.IndexOf(Lookup[T](), v)
}

// ValueAt returns the i-th declared value of T in ascending order,
// clamping i into the declared range. The zero value if T was never
// registered.
func ValueAt[T apis.Enum](i int) T {
	return query.ValueAt[T](Lookup[T](), i)
}

// Next returns the declared value of T following v; the maximum declared
// value is its own successor.
func Next[T apis.Enum](v T) T {
	return query.Next(Lookup[T](), v)
}

// Last returns the declared value of T preceding v; the minimum declared
// value is its own predecessor.
func Last[T apis.Enum](v T) T {
	return query.Last(Lookup[T](), v)
}

// DefaultOf returns the safest representable value of T: zero when zero is
// declared, otherwise the smallest declared value.
func DefaultOf[T apis.Enum]() T {
	return enumtype.FromBits[T](Lookup[T]().Default())
}

// FlagsOf returns an iterator over the individual declared bits set in v.
// Empty for scalar types, undeclared bits, or an unregistered T.
func FlagsOf[T apis.Enum](v T) flagset.Iterator {
	return query.Flags(Lookup[T](), v)
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the global
// registry under it, migrating already published records by re-registering
// their descriptors.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: migrate(registry.New(cfg), old.reg)})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global registry. Records already published to
// the previous registry are not migrated; pass the previous registry's
// entries through the new one first if continuity is needed.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: reg})
}

// Teardown releases every published record and resets the global registry
// to its empty initial state. Safe to call repeatedly; must not run while
// queries are in flight. The registry is usable again afterwards.
func Teardown() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Load().reg.Teardown()
}

// migrate republishes every record of prev into next and returns next.
// Build errors are impossible for records that already passed a build,
// so failures are ignored the same way the previous build would have
// reported them.
func migrate(next, prev apis.Registry) apis.Registry {
	if prev == nil {
		return next
	}
	for _, e := range prev.Entries() {
		rec := e.Record
		_, _ = next.GetOrCreate(apis.Descriptor{
			Name:     e.Name,
			Identity: rec.Identity(),
			Size:     rec.Size(),
			Signed:   rec.IsSigned(),
			Flags:    rec.IsFlag(),
			Values:   rec.Values(),
			Names:    rec.MemberNames(),
		})
	}
	return next
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global enumx configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
}
