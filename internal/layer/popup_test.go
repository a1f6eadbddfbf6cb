// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davetashner/paymap/internal/dataset"
)

func TestPopup_SingleRecord(t *testing.T) {
	records := []dataset.SystemRecord{
		{Name: "Pix", PaymentType: "Cross-domain payment system",
			Operator: "Central bank", Status: "Implemented", Active: "Yes"},
	}
	html := Popup("Brazil", records)

	assert.True(t, strings.HasPrefix(html, "<b>Brazil</b><br/><br/>"))
	assert.Contains(t, html, "<b>Payment Systems: 1</b><br/><br/>")
	assert.Contains(t, html, "<b>1. Pix</b><br/>")
	assert.Contains(t, html, "Type: Cross-domain payment system<br/>")
	assert.Contains(t, html, "Operator: Central bank<br/>")
	assert.Contains(t, html, "Status: Implemented<br/>")
	assert.Contains(t, html, "✓ Active real-time system<br/>")
	assert.NotContains(t, html, "more systems")
}

func TestPopup_InactiveRecordHasNoBadge(t *testing.T) {
	records := []dataset.SystemRecord{
		{Name: "Legacy", PaymentType: "NA", Operator: "NA", Status: "NA", Active: "No"},
	}
	html := Popup("Chad", records)
	assert.NotContains(t, html, "Active real-time system")
}

func TestPopup_TruncatesAfterFive(t *testing.T) {
	var records []dataset.SystemRecord
	for i := 1; i <= 7; i++ {
		records = append(records, dataset.SystemRecord{
			Name: fmt.Sprintf("sys-%d", i), Active: "No",
		})
	}
	html := Popup("India", records)

	assert.Contains(t, html, "<b>Payment Systems: 7</b>")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, html, fmt.Sprintf("<b>%d. sys-%d</b>", i, i))
	}
	assert.NotContains(t, html, "sys-6")
	assert.NotContains(t, html, "sys-7")
	assert.Contains(t, html, "<i>...and 2 more systems</i><br/>")
}

func TestPopup_ExactlyFiveNoTruncationLine(t *testing.T) {
	var records []dataset.SystemRecord
	for i := 1; i <= 5; i++ {
		records = append(records, dataset.SystemRecord{Name: fmt.Sprintf("sys-%d", i)})
	}
	html := Popup("Egypt", records)
	assert.Contains(t, html, "<b>5. sys-5</b>")
	assert.NotContains(t, html, "more systems")
}

func TestPopup_PreservesInsertionOrder(t *testing.T) {
	// The active record is the representative, but the popup lists records
	// in input order regardless.
	records := []dataset.SystemRecord{
		{Name: "first", Active: "No"},
		{Name: "second", Active: "Yes"},
	}
	html := Popup("Kenya", records)
	firstIdx := strings.Index(html, "1. first")
	secondIdx := strings.Index(html, "2. second")
	assert.True(t, firstIdx >= 0 && secondIdx > firstIdx)
}
