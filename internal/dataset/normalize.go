// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package dataset

import "strings"

// countryAliases maps dataset spellings to the canonical names used by the
// coordinate table.
var countryAliases = map[string]string{
	"United States": "United States of America",
	"USA":           "United States of America",
	"UK":            "United Kingdom",
	"UAE":           "United Arab Emirates",
	"South Korea":   "Republic of Korea",
	"Korea":         "Republic of Korea",
	"Russia":        "Russian Federation",
}

// regionalAggregates are dataset rows that describe a whole region rather
// than a single country. They never produce markers.
var regionalAggregates = map[string]struct{}{
	"Africa": {},
	"Asia":   {},
	"Europe": {},
}

// NormalizeCountry trims surrounding whitespace and maps known aliases to
// their canonical form. Unrecognized names pass through trimmed.
func NormalizeCountry(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := countryAliases[name]; ok {
		return canonical
	}
	return name
}

// IsRegionalAggregate reports whether name labels a regional aggregate row.
func IsRegionalAggregate(name string) bool {
	_, ok := regionalAggregates[name]
	return ok
}
