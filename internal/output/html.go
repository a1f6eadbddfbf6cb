// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/davetashner/paymap/internal/layer"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the map as a single self-contained HTML document:
// all marker, legend, and coordinate data is embedded as JSON, and the
// Leaflet rendering library plus map tiles load from CDN at view time.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	mapTmplOnce sync.Once
	mapTmpl     *template.Template
)

// Format writes the interactive map document to w. Output is deterministic
// for a given document: marker slices arrive pre-sorted and encoding/json
// serializes map keys in sorted order.
func (h *HTMLFormatter) Format(doc *MapDocument, w io.Writer) error {
	mapTmplOnce.Do(func() {
		mapTmpl = template.Must(template.New("map").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(mapTemplate))
	})

	data := buildHTMLData(doc)
	if err := mapTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute map template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the map document.
type htmlData struct {
	Title       string
	Caption     string
	Coordinates map[string][2]float64
	Layers      map[string][]layer.Marker
	Legends     map[string]layer.Legend
	Buttons     []buttonEntry
	LayerKeys   []string
}

type buttonEntry struct {
	Key    string
	Label  string
	Active bool
}

func buildHTMLData(doc *MapDocument) htmlData {
	keys := layer.Keys()
	buttons := make([]buttonEntry, len(keys))
	for i, key := range keys {
		buttons[i] = buttonEntry{
			Key:    key,
			Label:  layer.Label(key),
			Active: i == 0, // first layer is shown on load
		}
	}
	return htmlData{
		Title:       doc.Title,
		Caption:     doc.Caption,
		Coordinates: doc.Coordinates,
		Layers:      doc.Layers,
		Legends:     doc.Legends,
		Buttons:     buttons,
		LayerKeys:   keys,
	}
}
