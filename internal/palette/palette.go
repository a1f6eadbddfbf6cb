// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

// Package palette maps categorical dataset values to fixed display colors.
// Every classifier matches exact table keys and falls back to Fallback for
// anything else; unknown values are never an error.
package palette

import "strings"

// Fallback is returned for any value absent from a classifier's table. It
// is distinct from every in-table color, including the "NA" gray.
const Fallback = "#757575"

var paymentTypeColors = map[string]string{
	"Interbank payment system":                "#2E7D32",
	"Cross-domain payment system":             "#1976D2",
	"Mobile money":                            "#F57C00",
	"CBDC":                                    "#7B1FA2",
	"Mobile wallet":                           "#C2185B",
	"Interbank payment system, Mobile wallet": "#00796B",
	"NA":                                      "#9E9E9E",
}

var operatorColors = map[string]string{
	"Central bank":                  "#1565C0",
	"Bank association":              "#00897B",
	"Commercial bank/Private PSP":   "#6A1B9A",
	"Private PSP":                   "#AD1457",
	"Central bank/Bank association": "#0277BD",
	"Other":                         "#F57C00",
	"NA":                            "#9E9E9E",
}

var statusColors = map[string]string{
	"Implemented":     "#2E7D32",
	"Planned/Piloted": "#F9A825",
	"NA":              "#9E9E9E",
}

var yesNoColors = map[string]string{
	"Yes": "#2E7D32",
	"No":  "#D32F2F",
	"NA":  "#9E9E9E",
}

var settlementColors = map[string]string{
	"RTGS":                   "#1565C0",
	"DNS":                    "#00897B",
	"ACH":                    "#6A1B9A",
	"MN":                     "#F57C00",
	"Distributed settlement": "#00796B",
	"NA":                     "#9E9E9E",
}

var scopeColors = map[string]string{
	"National": "#1976D2",
	"Regional": "#388E3C",
}

// PaymentType returns the color for a payment system type value.
func PaymentType(v string) string {
	return lookup(paymentTypeColors, v)
}

// Operator returns the color for an operator value. The operator column
// carries stray whitespace in the source dataset, so the value is trimmed
// before lookup; the other classifiers match verbatim.
func Operator(v string) string {
	return lookup(operatorColors, strings.TrimSpace(v))
}

// Status returns the color for an implementation status value.
func Status(v string) string {
	return lookup(statusColors, v)
}

// YesNo returns the color for a yes/no categorical value.
func YesNo(v string) string {
	return lookup(yesNoColors, v)
}

// Settlement returns the color for a settlement system value. Comma-joined
// composites are classified by their first component only.
func Settlement(v string) string {
	return lookup(settlementColors, FirstSettlement(v))
}

// Scope returns the color for a national/regional value.
func Scope(v string) string {
	return lookup(scopeColors, v)
}

// FirstSettlement returns the first comma-separated component of v, trimmed,
// or "NA" when v is empty.
func FirstSettlement(v string) string {
	if v == "" {
		return "NA"
	}
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}

func lookup(table map[string]string, v string) string {
	if c, ok := table[v]; ok {
		return c
	}
	return Fallback
}
