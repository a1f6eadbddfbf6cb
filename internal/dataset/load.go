// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Dataset column headers. Column presence is never validated; a missing
// column yields that field's default for every row.
const (
	colCountry      = "Country / Region"
	colName         = "Payment system name"
	colPaymentType  = "Payment system type"
	colOperator     = "Operator"
	colBank         = "Bank participation"
	colNonBank      = "Non-bank participation"
	colStatus       = "Status of payment system implementation"
	colScope        = "National / Regional"
	colSettlement   = "Type of settlement system"
	colQRCode       = "QR code based transactions"
	colCrossBorder  = "Cross-border payments"
	colTransactions = "Types of transactions supported"
	colActive       = "Active real-time payment system present"
	colURL          = "URL"
)

// Options controls dataset loading.
type Options struct {
	// FilterActiveImplemented keeps only rows describing an active real-time
	// system whose implementation status is exactly "Implemented".
	FilterActiveImplemented bool

	// Aliases adds country alias entries on top of the built-in table.
	// Keys are matched against the built-in normalization result.
	Aliases map[string]string
}

// Load reads the dataset at path and groups its rows by country.
// Only open/read failures are errors; malformed or partial rows degrade to
// default field values.
func Load(path string, opts Options) (CountryGroups, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided dataset path
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	groups, err := LoadReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return groups, nil
}

// LoadReader reads CSV rows from r and groups them by country. The first
// row names the columns.
func LoadReader(r io.Reader, opts Options) (CountryGroups, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return CountryGroups{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	groups := make(CountryGroups)
	skipped := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(col, def string) string {
			i, ok := cols[col]
			if !ok || i >= len(row) || row[i] == "" {
				return def
			}
			return row[i]
		}

		country := normalizeWith(field(colCountry, ""), opts.Aliases)
		if country == "" || IsRegionalAggregate(country) {
			skipped++
			continue
		}

		if opts.FilterActiveImplemented {
			active := field(colActive, "No")
			status := field(colStatus, "NA")
			if active != "Yes" || status != "Implemented" {
				skipped++
				continue
			}
		}

		groups[country] = append(groups[country], SystemRecord{
			Name:                  field(colName, "Unknown"),
			PaymentType:           field(colPaymentType, "NA"),
			Operator:              field(colOperator, "NA"),
			BankParticipation:     field(colBank, "NA"),
			NonBankParticipation:  field(colNonBank, "NA"),
			Status:                field(colStatus, "NA"),
			NationalRegional:      field(colScope, "National"),
			SettlementType:        field(colSettlement, "NA"),
			QRCode:                field(colQRCode, "NA"),
			CrossBorder:           field(colCrossBorder, "NA"),
			TransactionsSupported: field(colTransactions, "NA"),
			Active:                field(colActive, "No"),
			URL:                   field(colURL, ""),
		})
	}

	slog.Debug("dataset loaded",
		"countries", len(groups),
		"systems", groups.TotalSystems(),
		"skipped", skipped)
	return groups, nil
}

// normalizeWith applies extra aliases on top of the built-in table.
func normalizeWith(name string, extra map[string]string) string {
	trimmed := NormalizeCountry(name)
	if canonical, ok := extra[trimmed]; ok {
		return canonical
	}
	return trimmed
}
