// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package layer

import "encoding/json"

// Entry is one legend row: a swatch color and its label.
type Entry struct {
	Color string
	Label string
}

// Legend is a layer's legend: a title plus ordered entries. Legends are
// hand-authored per layer, independent of observed data; rare categories are
// merged into an "NA/Other" bucket.
type Legend struct {
	Title   string
	Entries []Entry
}

// MarshalJSON serializes a legend as [title, [[color, label], ...]], the
// tuple shape the embedded client script indexes into.
func (l Legend) MarshalJSON() ([]byte, error) {
	entries := make([][2]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, [2]string{e.Color, e.Label})
	}
	return json.Marshal([2]any{l.Title, entries})
}

// UnmarshalJSON decodes the [title, [[color, label], ...]] tuple shape
// produced by MarshalJSON.
func (l *Legend) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &l.Title); err != nil {
		return err
	}
	var entries [][2]string
	if err := json.Unmarshal(raw[1], &entries); err != nil {
		return err
	}
	l.Entries = make([]Entry, 0, len(entries))
	for _, e := range entries {
		l.Entries = append(l.Entries, Entry{Color: e[0], Label: e[1]})
	}
	return nil
}

var legends = map[string]Legend{
	PaymentType: {Title: "Payment System Type", Entries: []Entry{
		{"#2E7D32", "Interbank payment system"},
		{"#1976D2", "Cross-domain payment system"},
		{"#F57C00", "Mobile money"},
		{"#7B1FA2", "CBDC"},
		{"#C2185B", "Mobile wallet"},
		{"#9E9E9E", "NA/Other"},
	}},
	Operator: {Title: "Operator", Entries: []Entry{
		{"#1565C0", "Central bank"},
		{"#00897B", "Bank association"},
		{"#6A1B9A", "Commercial bank/Private PSP"},
		{"#AD1457", "Private PSP"},
		{"#9E9E9E", "NA/Other"},
	}},
	Status: {Title: "Implementation Status", Entries: []Entry{
		{"#2E7D32", "Implemented"},
		{"#F9A825", "Planned/Piloted"},
		{"#9E9E9E", "NA"},
	}},
	BankParticipation: {Title: "Bank Participation", Entries: []Entry{
		{"#2E7D32", "Yes"},
		{"#D32F2F", "No"},
		{"#9E9E9E", "NA"},
	}},
	NonBankParticipation: {Title: "Non-Bank Participation", Entries: []Entry{
		{"#2E7D32", "Yes"},
		{"#D32F2F", "No"},
		{"#9E9E9E", "NA"},
	}},
	SettlementType: {Title: "Settlement System Type", Entries: []Entry{
		{"#1565C0", "RTGS"},
		{"#00897B", "DNS"},
		{"#6A1B9A", "ACH"},
		{"#F57C00", "MN"},
		{"#9E9E9E", "NA/Other"},
	}},
	NationalRegional: {Title: "Scope", Entries: []Entry{
		{"#1976D2", "National"},
		{"#388E3C", "Regional"},
	}},
	QRCode: {Title: "QR Code Based", Entries: []Entry{
		{"#2E7D32", "Yes"},
		{"#D32F2F", "No"},
		{"#9E9E9E", "NA"},
	}},
}

// LegendFor returns the legend for a layer key. An unrecognized key yields
// a titled "Unknown" legend with no entries.
func LegendFor(key string) Legend {
	if l, ok := legends[key]; ok {
		return l
	}
	return Legend{Title: "Unknown", Entries: []Entry{}}
}

// Legends returns all eight legends keyed by layer key.
func Legends() map[string]Legend {
	all := make(map[string]Legend, len(keys))
	for _, key := range keys {
		all[key] = LegendFor(key)
	}
	return all
}
