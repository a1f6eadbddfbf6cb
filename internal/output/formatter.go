// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

// Package output defines formatters that serialize a MapDocument in
// various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/davetashner/paymap/internal/layer"
)

// MapDocument bundles everything a formatter needs to render the map: the
// country centroid table, per-layer marker sets, per-layer legends, and the
// page chrome strings.
type MapDocument struct {
	Title       string
	Caption     string
	Coordinates map[string][2]float64
	Layers      map[string][]layer.Marker
	Legends     map[string]layer.Legend
}

// Formatter writes a MapDocument to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json").
	Name() string

	// Format writes the document to w.
	Format(doc *MapDocument, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// formatNames returns a comma-separated sorted list of registered format names.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
