// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

// Package dataset loads payment system records from a delimited dataset
// and groups them by country.
package dataset

import "sort"

// SystemRecord is one row of the payment systems dataset. All fields are
// free-form categorical strings; the sentinel "NA" marks unknown values.
type SystemRecord struct {
	Name                  string
	PaymentType           string
	Operator              string
	BankParticipation     string
	NonBankParticipation  string
	Status                string
	NationalRegional      string
	SettlementType        string
	QRCode                string
	CrossBorder           string
	TransactionsSupported string
	Active                string
	URL                   string
}

// CountryGroups maps a normalized country name to its records, preserving
// input row order within each country.
type CountryGroups map[string][]SystemRecord

// Countries returns the group keys sorted alphabetically.
func (g CountryGroups) Countries() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalSystems returns the number of records across all countries.
func (g CountryGroups) TotalSystems() int {
	total := 0
	for _, records := range g {
		total += len(records)
	}
	return total
}
