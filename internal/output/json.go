// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/davetashner/paymap/internal/layer"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the map data with metadata for the JSON output format,
// letting downstream consumers use the layer data without scraping HTML.
type JSONEnvelope struct {
	Coordinates map[string][2]float64     `json:"coordinates"`
	Layers      map[string][]layer.Marker `json:"layers"`
	Legends     map[string]layer.Legend   `json:"legends"`
	Metadata    JSONMetadata              `json:"metadata"`
}

// JSONMetadata describes the generation run that produced the envelope.
type JSONMetadata struct {
	CountryCount int      `json:"country_count"`
	LayerKeys    []string `json:"layer_keys"`
	GeneratedAt  string   `json:"generated_at"`
}

// JSONFormatter writes the map document as a JSON envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or
	// pretty-printed with two-space indent (the default).
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the document as a JSON envelope to w.
func (f *JSONFormatter) Format(doc *MapDocument, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	countryCount := 0
	if markers, ok := doc.Layers[layer.PaymentType]; ok {
		countryCount = len(markers)
	}

	env := JSONEnvelope{
		Coordinates: doc.Coordinates,
		Layers:      doc.Layers,
		Legends:     doc.Legends,
		Metadata: JSONMetadata{
			CountryCount: countryCount,
			LayerKeys:    layer.Keys(),
			GeneratedAt:  now.UTC().Format(time.RFC3339),
		},
	}

	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode json envelope: %w", err)
	}
	return nil
}
