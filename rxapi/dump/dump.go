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

// Package dump serializes a registry snapshot as JSON for diagnostics and
// editor tooling. It sits entirely off the query hot path; the snapshot
// reflects the registry at the moment of the call.
package dump

import (
	"io"

	"github.com/go-faster/jx"

	"dirpx.dev/enumx/apis"
)

// Snapshot writes all published records of reg to w as a JSON array in
// publication order, sentinel excluded.
func Snapshot(w io.Writer, reg apis.Registry) error {
	var e jx.Encoder
	e.ArrStart()
	for _, ent := range reg.Entries() {
		encodeEntry(&e, ent)
	}
	e.ArrEnd()
	_, err := w.Write(e.Bytes())
	return err
}

// encodeEntry encodes a single registry entry.
func encodeEntry(e *jx.Encoder, ent apis.Entry) {
	rec := ent.Record
	e.ObjStart()
	e.FieldStart("index")
	e.Int(int(ent.Index))
	e.FieldStart("type")
	e.Str(ent.Name)
	e.FieldStart("identity")
	e.UInt64(rec.Identity())
	e.FieldStart("size")
	e.Int(int(rec.Size()))
	e.FieldStart("flag")
	e.Bool(rec.IsFlag())
	e.FieldStart("signed")
	e.Bool(rec.IsSigned())
	e.FieldStart("has_zero")
	e.Bool(rec.HasZero())
	e.FieldStart("gapped")
	e.Bool(rec.HasGaps())
	e.FieldStart("sum")
	e.UInt64(rec.Sum())
	e.FieldStart("default")
	e.Int64(rec.Default())
	e.FieldStart("values")
	e.ArrStart()
	for _, v := range rec.Values() {
		e.Int64(v)
	}
	e.ArrEnd()
	if members := rec.MemberNames(); members != nil {
		e.FieldStart("members")
		e.ArrStart()
		for _, n := range members {
			e.Str(n)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}
