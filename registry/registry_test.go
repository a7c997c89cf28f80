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

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/utils/enumtype"
)

// A few named enumerated types to exercise registration.
type color uint8
type weekday int16
type permission uint8

func (permission) EnumFlags() bool { return true }

func TestGetOrCreate_IdempotentAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	d := enumtype.Describe([]color{3, 1, 2})
	idx, err := reg.GetOrCreate(d)
	if err != nil {
		t.Fatalf("GetOrCreate(color): unexpected error: %v", err)
	}
	if idx == 0 {
		t.Fatalf("GetOrCreate(color) returned the sentinel index")
	}

	// Idempotent: the second call returns the cached index, no rebuild.
	again, err := reg.GetOrCreate(d)
	if err != nil {
		t.Fatalf("GetOrCreate(color) again: unexpected error: %v", err)
	}
	if again != idx {
		t.Fatalf("GetOrCreate(color) again = %d, want %d", again, idx)
	}

	if got := reg.LookupIndex(d.Identity); got != idx {
		t.Fatalf("LookupIndex = %d, want %d", got, idx)
	}
	if got := reg.LookupIndex(0xdeadbeef); got != 0 {
		t.Fatalf("LookupIndex(unknown) = %d, want 0", got)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestGetOrCreate_SortsAndClassifies(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	idx, err := reg.GetOrCreate(enumtype.Describe([]weekday{10, -5, 0}))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	rec := reg.Record(idx)

	want := []int64{-5, 0, 10}
	vals := rec.Values()
	if len(vals) != len(want) {
		t.Fatalf("Len = %d, want %d", len(vals), len(want))
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("values[%d] = %d, want %d", i, vals[i], want[i])
		}
	}

	if !rec.HasGaps() {
		t.Errorf("HasGaps = false, want true")
	}
	if !rec.HasZero() {
		t.Errorf("HasZero = false, want true")
	}
	if !rec.IsSigned() {
		t.Errorf("IsSigned = false, want true")
	}
	if rec.IsFlag() {
		t.Errorf("IsFlag = true, want false")
	}
	if rec.Size() != 2 {
		t.Errorf("Size = %d, want 2", rec.Size())
	}
	if rec.Default() != 0 {
		t.Errorf("Default = %d, want 0 (zero is declared)", rec.Default())
	}
	if rec.Min() != -5 || rec.Max() != 10 {
		t.Errorf("Min/Max = %d/%d, want -5/10", rec.Min(), rec.Max())
	}
}

func TestGetOrCreate_FlagClassification(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	t.Run("contiguous run", func(t *testing.T) {
		idx, err := reg.GetOrCreate(enumtype.Describe([]permission{1, 2, 4, 8}))
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		rec := reg.Record(idx)
		if !rec.IsFlag() {
			t.Fatalf("IsFlag = false; capability interface not honored")
		}
		if rec.HasGaps() {
			t.Errorf("HasGaps = true, want false for {1,2,4,8}")
		}
		if rec.Sum() != 15 {
			t.Errorf("Sum = %d, want 15", rec.Sum())
		}
	})

	t.Run("missing bit gaps the run", func(t *testing.T) {
		type holed uint8
		d := enumtype.DescribeFlags([]holed{1, 2, 8})
		idx, err := reg.GetOrCreate(d)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if rec := reg.Record(idx); !rec.HasGaps() {
			t.Errorf("HasGaps = false, want true for {1,2,8}")
		}
	})

	t.Run("single value run", func(t *testing.T) {
		type lone uint8
		idx, err := reg.GetOrCreate(enumtype.DescribeFlags([]lone{4}))
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		if rec := reg.Record(idx); rec.HasGaps() {
			t.Errorf("HasGaps = true, want false for a single declared bit")
		}
	})
}

func TestGetOrCreate_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if _, err := reg.GetOrCreate(apis.Descriptor{Identity: 0}); !errors.Is(err, registry.ErrZeroIdentity) {
		t.Fatalf("zero identity: want ErrZeroIdentity, got %v", err)
	}

	if _, err := reg.GetOrCreate(apis.Descriptor{Identity: 7, Size: 4}); !errors.Is(err, registry.ErrNoValues) {
		t.Fatalf("no values: want ErrNoValues, got %v", err)
	}

	d := apis.Descriptor{Identity: 8, Size: 3, Values: []int64{1}}
	if _, err := reg.GetOrCreate(d); !errors.Is(err, registry.ErrBadWidth) {
		t.Fatalf("width 3: want ErrBadWidth, got %v", err)
	}

	// A failed build publishes nothing.
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d after failed builds, want 0", reg.Count())
	}
	if reg.LookupIndex(8) != 0 {
		t.Fatalf("failed build leaked an index")
	}
}

func TestGetOrCreate_Aliases(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		reg := registry.New(config.DefaultConfig())
		d := apis.Descriptor{Identity: 42, Size: 1, Values: []int64{1, 2, 2}}
		if _, err := reg.GetOrCreate(d); !errors.Is(err, registry.ErrDuplicateValue) {
			t.Fatalf("want ErrDuplicateValue, got %v", err)
		}
		if reg.Count() != 0 {
			t.Fatalf("Count() = %d after a rejected build, want 0", reg.Count())
		}
	})

	t.Run("deduplicated when opted in", func(t *testing.T) {
		reg := registry.New(config.NewConfig(config.WithAcceptAliases(true)))
		d := apis.Descriptor{
			Identity: 42, Size: 1,
			Values: []int64{2, 1, 2, 3},
			Names:  []string{"Two", "One", "Deuce", "Three"},
		}
		idx, err := reg.GetOrCreate(d)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		rec := reg.Record(idx)
		if rec.Len() != 3 {
			t.Fatalf("Len = %d, want 3 after alias folding", rec.Len())
		}
		if got := rec.MemberName(1); got != "Two" {
			t.Errorf("MemberName(1) = %q, want the first declared alias name", got)
		}
	})
}

func TestRecord_OutOfRangeIsSentinel(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	if _, err := reg.GetOrCreate(enumtype.Describe([]color{1, 2})); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	for _, i := range []apis.Index{0, -1, 99} {
		if rec := reg.Record(i); !rec.IsSentinel() {
			t.Errorf("Record(%d).IsSentinel() = false, want true", i)
		}
	}
	if rec := reg.Record(1); rec.IsSentinel() {
		t.Errorf("Record(1) is the sentinel, want a published record")
	}
}

func TestEntries_Snapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	if _, err := reg.GetOrCreate(enumtype.Describe([]color{1, 2})); err != nil {
		t.Fatalf("GetOrCreate(color): %v", err)
	}
	if _, err := reg.GetOrCreate(enumtype.Describe([]weekday{0, 1})); err != nil {
		t.Fatalf("GetOrCreate(weekday): %v", err)
	}

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(entries))
	}
	if entries[0].Index != 1 || entries[1].Index != 2 {
		t.Fatalf("entries not in publication order: %v, %v", entries[0].Index, entries[1].Index)
	}
	if entries[0].Name == "" || entries[0].Record == nil {
		t.Fatalf("entry missing name or record: %+v", entries[0])
	}
}

func TestTeardown(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	// No-op on an empty registry.
	reg.Teardown()

	d := enumtype.Describe([]color{1, 2, 3})
	idx, err := reg.GetOrCreate(d)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	reg.Teardown()
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d after teardown, want 0", reg.Count())
	}
	if reg.LookupIndex(d.Identity) != 0 {
		t.Fatalf("identity survived teardown")
	}
	if !reg.Record(idx).IsSentinel() {
		t.Fatalf("stale index resolves to a record after teardown")
	}

	// The registry is reusable from its clean state.
	again, err := reg.GetOrCreate(d)
	if err != nil {
		t.Fatalf("GetOrCreate after teardown: %v", err)
	}
	if again == 0 || reg.Count() != 1 {
		t.Fatalf("re-registration after teardown failed: idx=%d count=%d", again, reg.Count())
	}
}
