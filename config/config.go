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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultStrictBounds represents the default for StrictBounds.
	// When false, contiguous scalar ranges accept their own endpoints.
	DefaultStrictBounds = false
	// DefaultAcceptAliases represents the default for AcceptAliases.
	// When false, duplicate declared values fail the build; alias
	// folding is opt-in via WithAcceptAliases(true).
	DefaultAcceptAliases = false
	// DefaultCapacityHint represents the default for CapacityHint.
	// A value of 16 covers most applications without reallocation.
	DefaultCapacityHint = 16
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure CapacityHint is valid.
	if cfg.CapacityHint <= 0 {
		cfg.CapacityHint = DefaultCapacityHint
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictBounds:  DefaultStrictBounds,
		AcceptAliases: DefaultAcceptAliases,
		CapacityHint:  DefaultCapacityHint,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictBounds sets the StrictBounds option.
func WithStrictBounds(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictBounds = strict
	}
}

// WithAcceptAliases sets the AcceptAliases option.
func WithAcceptAliases(accept bool) Option {
	return func(c *apis.Config) {
		c.AcceptAliases = accept
	}
}

// WithCapacityHint sets the CapacityHint option.
// A non-positive value resets to the default.
func WithCapacityHint(hint int) Option {
	return func(c *apis.Config) {
		if hint <= 0 {
			c.CapacityHint = DefaultCapacityHint
			return
		}
		c.CapacityHint = hint
	}
}
