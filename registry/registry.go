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

package registry

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrZeroIdentity is returned when a descriptor carries identity 0,
	// which is reserved for the sentinel record.
	ErrZeroIdentity = errors.New("enumx(registry): descriptor identity is zero")
	// ErrNoValues is returned when a descriptor declares no legal values.
	ErrNoValues = errors.New("enumx(registry): descriptor has no declared values")
	// ErrBadWidth is returned when a descriptor's storage width is not
	// one of 1, 2, 4 or 8 bytes.
	ErrBadWidth = errors.New("enumx(registry): storage width must be 1, 2, 4 or 8 bytes")
	// ErrDuplicateValue is returned when distinct declared values collapse
	// to the same 64-bit representation and aliases are not accepted.
	ErrDuplicateValue = errors.New("enumx(registry): declared values collapse to the same 64-bit value")
)

// New constructs a Registry that builds records according to cfg.
// Only StrictBounds consumers live elsewhere; the registry itself uses
// AcceptAliases and CapacityHint.
func New(cfg apis.Config) apis.Registry {
	if cfg.CapacityHint <= 0 {
		cfg.CapacityHint = config.DefaultCapacityHint
	}
	r := &registry{cfg: cfg}
	r.reset()
	return r
}

// sentinel is the reserved always-invalid record at index 0.
// The zero apis.Record has no values and matches no identity, so every
// query routed to it reports "not found".
var sentinel = &apis.Record{}

// registry stores published records in a grow-only snapshot published via
// an atomic pointer; index 0 is the sentinel. The identity map is a
// sync.Map so lookups never lock. mu serializes the build-and-publish
// sequence only; records are immutable once published, so readers holding
// an Index or a *Record stay valid for the life of the registry.
type registry struct {
	// cfg is the configuration used for record building.
	cfg apis.Config
	// mu guards the build-and-publish sequence and teardown.
	mu sync.Mutex
	// index maps identity (uint64) to apis.Index.
	index sync.Map
	// records is the current grow-only record list snapshot.
	records atomic.Pointer[[]*apis.Record]
}

// reset installs the empty initial state: just the sentinel.
// Callers must hold mu unless the registry is not yet shared.
func (r *registry) reset() {
	recs := make([]*apis.Record, 1, 1+r.cfg.CapacityHint)
	recs[0] = sentinel
	r.records.Store(&recs)
	r.index = sync.Map{}
}

// GetOrCreate returns the index for d's identity, building and publishing
// the record on first use. Idempotent: later calls for the same identity
// return the cached index without rebuilding.
func (r *registry) GetOrCreate(d apis.Descriptor) (apis.Index, error) {
	if d.Identity == 0 {
		return 0, ErrZeroIdentity
	}

	// Fast read path: already published.
	if v, ok := r.index.Load(d.Identity); ok {
		return v.(apis.Index), nil
	}

	// Write path: serialize build-and-publish.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine published meanwhile.
	if v, ok := r.index.Load(d.Identity); ok {
		return v.(apis.Index), nil
	}

	rec, err := build(d, r.cfg)
	if err != nil {
		// Nothing partial is published.
		return 0, err
	}

	recs := *r.records.Load()
	next := make([]*apis.Record, len(recs)+1)
	copy(next, recs)
	idx := apis.Index(len(recs))
	next[idx] = rec
	r.records.Store(&next)
	r.index.Store(d.Identity, idx)

	Logger().Debug("published enum record",
		zap.String("type", d.Name),
		zap.Uint64("identity", d.Identity),
		zap.Int("values", rec.Len()),
		zap.Int("index", int(idx)),
	)
	return idx, nil
}

// Record returns the record at i; the sentinel for index 0, a negative
// index, or one beyond the published range. Lock-free.
func (r *registry) Record(i apis.Index) *apis.Record {
	recs := *r.records.Load()
	if i <= 0 || int(i) >= len(recs) {
		return sentinel
	}
	return recs[i]
}

// LookupIndex returns the published index for identity, or 0 if the
// identity was never registered. Lock-free.
func (r *registry) LookupIndex(identity uint64) apis.Index {
	if v, ok := r.index.Load(identity); ok {
		return v.(apis.Index)
	}
	return 0
}

// Entries returns a snapshot of published records in publication order,
// sentinel excluded.
func (r *registry) Entries() []apis.Entry {
	recs := *r.records.Load()
	entries := make([]apis.Entry, 0, len(recs)-1)
	for i := 1; i < len(recs); i++ {
		entries = append(entries, apis.Entry{
			Index:  apis.Index(i),
			Name:   recs[i].TypeName(),
			Record: recs[i],
		})
	}
	return entries
}

// Count returns the number of published records, sentinel excluded.
func (r *registry) Count() int {
	return len(*r.records.Load()) - 1
}

// Teardown drops every record's backing value table and resets the
// registry to its empty initial state. A no-op on an empty registry.
// Must not run concurrently with queries; borrowed records are invalid
// afterwards.
func (r *registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(*r.records.Load()) - 1
	r.reset()
	if n > 0 {
		Logger().Debug("registry teardown", zap.Int("records", n))
	}
}

// build performs the full one-time build step for a descriptor: validate,
// sort ascending, deduplicate, classify, and assemble the record.
func build(d apis.Descriptor, cfg apis.Config) (*apis.Record, error) {
	if len(d.Values) == 0 {
		return nil, ErrNoValues
	}
	switch d.Size {
	case 1, 2, 4, 8:
	default:
		return nil, ErrBadWidth
	}

	vals := make([]int64, len(d.Values))
	copy(vals, d.Values)
	var names []string
	if len(d.Names) == len(d.Values) {
		names = make([]string, len(d.Names))
		copy(names, d.Names)
	}

	if names != nil {
		// Stable so the first declared name of an alias run survives dedupe.
		sort.Stable(&byValue{vals: vals, names: names})
	} else {
		sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	}

	// Deduplicate in place; the first declared name of an alias run wins.
	out := 1
	for i := 1; i < len(vals); i++ {
		if vals[i] == vals[out-1] {
			if !cfg.AcceptAliases {
				return nil, ErrDuplicateValue
			}
			continue
		}
		vals[out] = vals[i]
		if names != nil {
			names[out] = names[i]
		}
		out++
	}
	vals = vals[:out]
	if names != nil {
		names = names[:out]
	}

	return apis.NewRecord(d.Name, d.Identity, d.Size, classify(d, vals), vals, names), nil
}

// classify computes the classification bit set over the sorted,
// deduplicated value table.
func classify(d apis.Descriptor, vals []int64) apis.Class {
	var class apis.Class
	if d.Flags {
		class |= apis.ClassFlag
	}
	if d.Signed {
		class |= apis.ClassSigned
	}
	for _, v := range vals {
		if v == 0 {
			class |= apis.ClassHasZero
			break
		}
	}

	length := len(vals)
	min, max := vals[0], vals[length-1]
	if d.Flags {
		// A contiguous flag run is `length` single bits in ascending
		// order: min << (length-1) == max. Any member that is not a
		// single nonzero bit (a zero or combination constant)
		// disqualifies the run outright.
		contiguous := length <= 64 && min<<(length-1) == max
		for _, v := range vals {
			if v <= 0 || v&(v-1) != 0 {
				contiguous = false
				break
			}
		}
		if !contiguous {
			class |= apis.ClassGapped
		}
		return class
	}

	// Scalars are contiguous when the span equals length-1. The span is
	// computed in uint64 so extreme ranges cannot overflow the check.
	if uint64(max)-uint64(min) != uint64(length-1) {
		class |= apis.ClassGapped
	}
	return class
}

// byValue sorts a value table and its aligned name table together.
type byValue struct {
	vals  []int64
	names []string
}

func (s *byValue) Len() int           { return len(s.vals) }
func (s *byValue) Less(i, j int) bool { return s.vals[i] < s.vals[j] }
func (s *byValue) Swap(i, j int) {
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	s.names[i], s.names[j] = s.names[j], s.names[i]
}
