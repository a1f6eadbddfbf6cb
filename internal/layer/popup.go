// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"strings"

	"github.com/davetashner/paymap/internal/dataset"
)

// maxPopupSystems caps how many systems a popup itemizes before truncating.
const maxPopupSystems = 5

// Popup renders the HTML fragment shown when a country's marker is clicked:
// the country name, the total system count, and up to five systems in
// input order followed by a truncation notice for the rest.
func Popup(country string, records []dataset.SystemRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b><br/><br/>", country)
	fmt.Fprintf(&b, "<b>Payment Systems: %d</b><br/><br/>", len(records))

	for i, rec := range records {
		if i >= maxPopupSystems {
			break
		}
		fmt.Fprintf(&b, "<b>%d. %s</b><br/>", i+1, rec.Name)
		fmt.Fprintf(&b, "Type: %s<br/>", rec.PaymentType)
		fmt.Fprintf(&b, "Operator: %s<br/>", rec.Operator)
		fmt.Fprintf(&b, "Status: %s<br/>", rec.Status)
		if rec.Active == "Yes" {
			b.WriteString("✓ Active real-time system<br/>")
		}
		b.WriteString("<br/>")
	}

	if len(records) > maxPopupSystems {
		fmt.Fprintf(&b, "<i>...and %d more systems</i><br/>", len(records)-maxPopupSystems)
	}

	return b.String()
}
