package intake

import (
	"fmt"
	"strings"

	"quotely/models"
)

// BuildPrefill renders the quote as a human-readable itemized text block:
// one paragraph per service listing its signed-delta line items and
// subtotal, followed by the grand total.
func BuildPrefill(q models.Quote) string {
	var b strings.Builder
	for _, sq := range q.Services {
		fmt.Fprintf(&b, "%s (base %d)\n", sq.ServiceName, sq.BasePrice)
		for _, item := range sq.LineItems {
			fmt.Fprintf(&b, "  %s: %+d\n", item.Label, item.Price)
		}
		fmt.Fprintf(&b, "  Subtotal: %d\n\n", sq.Subtotal)
	}
	fmt.Fprintf(&b, "Total: %d", q.Total)
	return b.String()
}
