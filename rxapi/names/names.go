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

// Package names formats declared member names for human display.
//
// It is the presentation companion of the registry: editor and GUI layers
// that render flag toggle buttons, dropdowns or tooltips consume the
// registry's member names through this package rather than hand-rolling
// case conversions. Formatting never feeds back into the registry; the
// canonical names stored on a Record stay exactly as registered.
package names

import (
	"github.com/iancoleman/strcase"

	"dirpx.dev/enumx/apis"
)

// Style selects a display convention for member names.
//
// Styles are pure presentation: two styles applied to the same member name
// MUST NOT be assumed to round-trip, and callers SHOULD treat the output
// as opaque display text rather than parsing it back.
type Style int

const (
	// Spaced renders "DarkRed" as "dark red"; the usual choice for
	// tooltips and button captions.
	Spaced Style = iota
	// Snake renders "DarkRed" as "dark_red".
	Snake
	// Kebab renders "DarkRed" as "dark-red".
	Kebab
	// Camel renders "dark_red" as "DarkRed".
	Camel
)

// Format renders one member name in the given style.
// Unknown styles fall back to Spaced.
func Format(name string, style Style) string {
	switch style {
	case Snake:
		return strcase.ToSnake(name)
	case Kebab:
		return strcase.ToKebab(name)
	case Camel:
		return strcase.ToCamel(name)
	default:
		return strcase.ToDelimited(name, ' ')
	}
}

// Label renders the display label of the i-th declared value of rec.
// Records registered without member names yield "".
func Label(rec *apis.Record, i int, style Style) string {
	n := rec.MemberName(i)
	if n == "" {
		return ""
	}
	return Format(n, style)
}

// Labels renders display labels for all declared values of rec, aligned
// with rec.Values(). A record without member names yields nil.
func Labels(rec *apis.Record, style Style) []string {
	members := rec.MemberNames()
	if members == nil {
		return nil
	}
	out := make([]string, len(members))
	for i, n := range members {
		out[i] = Format(n, style)
	}
	return out
}
