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

// Config carries read-only registry knobs that influence record building
// and validity checks. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// StrictBounds restores the legacy exclusive interior test for
	// contiguous scalar validity checks (Min < v < Max), which rejects
	// the endpoints themselves. When false (the default), the corrected
	// inclusive test Min <= v <= Max is used.
	StrictBounds bool

	// AcceptAliases controls how duplicate declared values are handled
	// during the build step. When false (the default), values that
	// collapse to the same 64-bit representation fail the registration;
	// when true, they are treated as aliases and deduplicated.
	AcceptAliases bool

	// CapacityHint pre-sizes the registry's record list. Zero or negative
	// selects the default.
	CapacityHint int
}
