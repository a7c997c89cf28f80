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
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

func TestLogger_DefaultIsQuiet(t *testing.T) {
	if registry.Logger() == nil {
		t.Fatalf("Logger() = nil, want a usable logger")
	}
}

func TestSetLogger_BuildAndTeardownLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	registry.SetLogger(zap.New(core))
	t.Cleanup(func() { registry.SetLogger(zap.NewNop()) })

	reg := registry.New(config.DefaultConfig())
	if _, err := reg.GetOrCreate(descriptorFor(5)); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	reg.Teardown()

	if got := logs.FilterMessage("published enum record").Len(); got != 1 {
		t.Errorf("publish log entries = %d, want 1", got)
	}
	if got := logs.FilterMessage("registry teardown").Len(); got != 1 {
		t.Errorf("teardown log entries = %d, want 1", got)
	}
}
