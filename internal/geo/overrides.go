// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Overrides supplements the built-in alias and coordinate tables from a
// user-provided TOML file:
//
//	[aliases]
//	"Czech Republic" = "Czechia"
//
//	[coordinates]
//	"Greenland" = [72.0, -40.0]
type Overrides struct {
	Aliases     map[string]string    `toml:"aliases"`
	Coordinates map[string][]float64 `toml:"coordinates"`
}

// LoadOverrides reads a TOML overrides file. An empty path or a missing
// file yields empty overrides; a malformed file is an error, since the
// overrides file is explicit user input rather than best-effort data.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-provided overrides path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	for name, c := range o.Coordinates {
		if len(c) != 2 {
			return nil, fmt.Errorf("overrides %s: coordinate for %q must be [lat, lon], got %d values", path, name, len(c))
		}
	}
	return &o, nil
}

// Apply merges override coordinates into coords, adding new countries and
// replacing existing entries.
func (o *Overrides) Apply(coords map[string][2]float64) {
	for name, c := range o.Coordinates {
		coords[name] = [2]float64{c[0], c[1]}
	}
}
