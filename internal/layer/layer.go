// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

// Package layer derives per-country map markers and legends for each of the
// eight visualization layers.
package layer

// Layer keys. Each key selects one categorical dimension of the dataset
// with its own classifier, legend, and marker set.
const (
	PaymentType          = "payment_type"
	Operator             = "operator"
	Status               = "status"
	BankParticipation    = "bank_participation"
	NonBankParticipation = "nonbank_participation"
	SettlementType       = "settlement_type"
	NationalRegional     = "national_regional"
	QRCode               = "qr_code"
)

// keys lists all layers in display order. The first entry is the layer
// shown when the map loads.
var keys = []string{
	PaymentType,
	Operator,
	Status,
	BankParticipation,
	NonBankParticipation,
	SettlementType,
	NationalRegional,
	QRCode,
}

// labels are the toggle-button captions, by layer key.
var labels = map[string]string{
	PaymentType:          "Payment System Type",
	Operator:             "Operator",
	Status:               "Implementation Status",
	BankParticipation:    "Bank Participation",
	NonBankParticipation: "Non-Bank Participation",
	SettlementType:       "Settlement Type",
	NationalRegional:     "National/Regional",
	QRCode:               "QR Code Support",
}

// Keys returns the eight layer keys in display order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Label returns the toggle-button caption for a layer key, or "Unknown"
// for an unrecognized key.
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return "Unknown"
}
