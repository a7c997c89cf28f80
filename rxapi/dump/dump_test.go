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

package dump_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/rxapi/dump"
	"dirpx.dev/enumx/utils/enumtype"
)

type severity int8

func (s severity) String() string {
	switch s {
	case 0:
		return "Info"
	case 1:
		return "Warning"
	case 2:
		return "Error"
	}
	return "severity(?)"
}

type toggles uint8

func (toggles) EnumFlags() bool { return true }

type entry struct {
	Index    int      `json:"index"`
	Type     string   `json:"type"`
	Identity uint64   `json:"identity"`
	Size     int      `json:"size"`
	Flag     bool     `json:"flag"`
	Signed   bool     `json:"signed"`
	HasZero  bool     `json:"has_zero"`
	Gapped   bool     `json:"gapped"`
	Sum      uint64   `json:"sum"`
	Default  int64    `json:"default"`
	Values   []int64  `json:"values"`
	Members  []string `json:"members"`
}

func TestSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	_, err := reg.GetOrCreate(enumtype.Describe([]severity{0, 1, 2}))
	require.NoError(t, err)
	_, err = reg.GetOrCreate(enumtype.Describe([]toggles{1, 2, 4}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump.Snapshot(&buf, reg))

	// The output must be plain JSON any consumer can decode.
	var got []entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	sev := got[0]
	assert.Equal(t, 1, sev.Index)
	assert.Equal(t, "dump_test.severity", sev.Type)
	assert.NotZero(t, sev.Identity)
	assert.Equal(t, 1, sev.Size)
	assert.False(t, sev.Flag)
	assert.True(t, sev.Signed)
	assert.True(t, sev.HasZero)
	assert.False(t, sev.Gapped)
	assert.Equal(t, int64(0), sev.Default)
	assert.Equal(t, []int64{0, 1, 2}, sev.Values)
	assert.Equal(t, []string{"Info", "Warning", "Error"}, sev.Members)

	flg := got[1]
	assert.Equal(t, 2, flg.Index)
	assert.True(t, flg.Flag)
	assert.False(t, flg.Signed)
	assert.False(t, flg.Gapped)
	assert.Equal(t, uint64(7), flg.Sum)
	assert.Equal(t, []int64{1, 2, 4}, flg.Values)
}

func TestSnapshot_EmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Snapshot(&buf, registry.New(config.DefaultConfig())))
	assert.Equal(t, "[]", buf.String())
}
