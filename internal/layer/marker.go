// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/davetashner/paymap/internal/dataset"
	"github.com/davetashner/paymap/internal/palette"
)

// Marker is one colored circle on the map for a (country, layer) pair.
// JSON field names are part of the embedded client contract.
type Marker struct {
	Country     string `json:"country"`
	Color       string `json:"color"`
	Value       string `json:"value"`
	Popup       string `json:"popup"`
	SystemCount int    `json:"system_count"`
}

// Representative picks the record that characterizes a country when it has
// several systems: the first record with an active real-time system, else
// the first implemented one, else the first record. The ordered predicate
// chain preserves insertion-order tie-breaking; records must be non-empty.
func Representative(records []dataset.SystemRecord) dataset.SystemRecord {
	for _, r := range records {
		if r.Active == "Yes" {
			return r
		}
	}
	for _, r := range records {
		if r.Status == "Implemented" {
			return r
		}
	}
	return records[0]
}

// BuildMarkers returns one marker per country for the given layer key.
// Countries are ordered alphabetically so repeated runs serialize
// identically. An unrecognized key yields neutral markers, not an error.
func BuildMarkers(groups dataset.CountryGroups, key string) []Marker {
	markers := make([]Marker, 0, len(groups))
	for _, country := range groups.Countries() {
		records := groups[country]
		rep := Representative(records)
		color, value := classify(rep, key)
		markers = append(markers, Marker{
			Country:     country,
			Color:       color,
			Value:       value,
			Popup:       Popup(country, records),
			SystemCount: len(records),
		})
	}
	return markers
}

// BuildAll returns marker sets for all eight layers, keyed by layer key.
func BuildAll(groups dataset.CountryGroups) map[string][]Marker {
	all := make(map[string][]Marker, len(keys))
	for _, key := range keys {
		all[key] = BuildMarkers(groups, key)
	}
	return all
}

// classify extracts the layer's field from the representative record and
// returns its display color and raw value.
func classify(rep dataset.SystemRecord, key string) (color, value string) {
	switch key {
	case PaymentType:
		return palette.PaymentType(rep.PaymentType), rep.PaymentType
	case Operator:
		return palette.Operator(rep.Operator), rep.Operator
	case Status:
		return palette.Status(rep.Status), rep.Status
	case BankParticipation:
		return palette.YesNo(rep.BankParticipation), rep.BankParticipation
	case NonBankParticipation:
		return palette.YesNo(rep.NonBankParticipation), rep.NonBankParticipation
	case SettlementType:
		// Composite settlement values display only their first component.
		return palette.Settlement(rep.SettlementType), palette.FirstSettlement(rep.SettlementType)
	case NationalRegional:
		return palette.Scope(rep.NationalRegional), rep.NationalRegional
	case QRCode:
		return palette.YesNo(rep.QRCode), rep.QRCode
	default:
		return palette.Fallback, "Unknown"
	}
}
