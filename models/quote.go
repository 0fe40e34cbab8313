package models

import "time"

// QuoteLineItem is one active, contributing option. Zero-delta items are
// kept; hiding them is a display concern.
type QuoteLineItem struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// ServiceQuote is the per-service breakdown.
// Invariant: Subtotal == BasePrice + sum of line item prices.
type ServiceQuote struct {
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	BasePrice   int64           `json:"basePrice"`
	LineItems   []QuoteLineItem `json:"lineItems"`
	Subtotal    int64           `json:"subtotal"`
}

// Quote is the immutable snapshot of a computed price breakdown.
// Invariant: Total == sum of service subtotals. A selection change produces
// a new Quote, never an in-place edit.
type Quote struct {
	QuoteID   string         `json:"quoteId,omitempty"`
	Services  []ServiceQuote `json:"services"`
	Total     int64          `json:"total"`
	CreatedAt time.Time      `json:"createdAt"`
}
