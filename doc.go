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

// Package enumx provides fast, allocation-free introspection over closed
// enumerated types.
//
// Given a concrete enumerated type, enumx answers "is this value defined?",
// "what is its ordinal position among the declared values?", "what is the
// N-th declared value?", and "which flag bits are set?", all without
// branching in the hot path and without per-call heap allocation.
//
// # Design
//
// The core is the combination of two tightly coupled parts:
//
//   - A process-wide type metadata registry (registry package) that
//     computes and caches, once per distinct enumerated type, a compact
//     sorted description of its legal values: the apis.Record. A record
//     holds the ascending deduplicated value table, the OR-union of all
//     value bit patterns, the classification bits (flag/signed/has-zero/
//     gapped), and the type's 64-bit identity hash. Records are immutable
//     after publication; the registry owns their backing tables and hands
//     out borrowed read-only views.
//
//   - A branchless query engine (query and bitops packages) that operates
//     over a cached record. Membership, ordinal and neighbor queries are
//     built from conditional-select, clamp, sign/abs/min/max and a binary
//     search whose only branch is the loop continuation test, so the
//     executed instruction sequence does not depend on the data.
//
// Registration is lazy and idempotent: the first operation against a type
// triggers the full build (enumerate, validate, sort, classify, publish);
// every later operation pays only a lock-free lookup. The build-and-publish
// sequence is serialized internally, and published records are never
// mutated, so all queries are safe from any number of goroutines.
//
// The package root holds a read-mostly global snapshot (configuration plus
// registry) behind an atomic pointer, so lookups never lock:
//
//	type Weekday uint8
//
//	enumx.Register(Monday, Tuesday, Wednesday, Thursday, Friday)
//	enumx.IsValid(Wednesday)      // true
//	enumx.IndexOf(Friday)         // 4
//	enumx.ValueAt[Weekday](0)     // Monday
//	enumx.Next(Thursday)          // Friday
//
// Flag enumerations either implement apis.Flagger or register through
// RegisterFlags; their validity test accepts any combination of declared
// bits, and FlagsOf walks the individual bits of a combined value:
//
//	type Perm uint8
//	func (Perm) EnumFlags() bool { return true }
//
//	enumx.Register(Read, Write, Exec)
//	enumx.IsValid(Read | Exec)    // true
//	it := enumx.FlagsOf(Read | Exec)
//	for bit, ok := it.TryTakeNext(); ok; bit, ok = it.TryTakeNext() {
//		...
//	}
//
// # Failure semantics
//
// Build problems (no declared values, unsupported storage width, value
// collisions) are reported synchronously by Register and never publish a
// partial record. Query anomalies (an unregistered type, a value of the
// wrong type, an undeclared value) never produce errors: they degrade
// uniformly to false, -1 or the zero value, keeping the query path free
// of error-handling control flow.
//
// Teardown releases every record and returns the registry to its empty
// initial state; it must not overlap in-flight queries, and borrowed
// records must not be retained across it.
package enumx
