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

// Registry is the process-wide store of Records, keyed by type identity.
//
// Records are built lazily, exactly once per distinct type, and are
// immutable after publication. Implementations must serialize the
// build-and-publish step; all read operations (Record, LookupIndex,
// Entries, Count) must be safe for unsynchronized concurrent use and
// should be lock-free on the hot path.
type Registry interface {
	// GetOrCreate returns the Index of the Record for d's identity,
	// building and publishing it on first use. It is idempotent:
	// subsequent calls for the same identity return the cached Index
	// without rebuilding. A descriptor that cannot be represented
	// yields an error and publishes nothing.
	GetOrCreate(d Descriptor) (Index, error)

	// Record returns the Record at i. Index 0, a negative index, or an
	// index beyond the published range returns the sentinel record.
	// The returned Record is a borrowed read-only view.
	Record(i Index) *Record

	// LookupIndex returns the Index published for identity,
	// or 0 (the sentinel) if the identity was never registered.
	LookupIndex(identity uint64) Index

	// Entries returns a snapshot of all published records for
	// diagnostics/tooling, in publication order, sentinel excluded.
	Entries() []Entry

	// Count returns the number of published records, sentinel excluded.
	Count() int

	// Teardown releases every record's backing value table and resets
	// the registry to its empty initial state. Safe to call on an empty
	// registry; must not run concurrently with queries. Borrowed Records
	// must not be used afterwards.
	Teardown()
}

// Entry is a single published record in a Registry snapshot.
type Entry struct {
	// Index is the record's position in the registry.
	Index Index
	// Name is the canonical type name from the registering Descriptor.
	Name string
	// Record is the published record (borrowed view).
	Record *Record
}
