// Package schema defines the canonical, venue-agnostic entity shapes shared by
// every exchange adapter built on this stack. Entities are immutable snapshots
// constructed fresh from one API response; optional numeric fields are nil when
// the venue omits them, never fabricated.
package schema

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Market describes one tradable pair in canonical form.
type Market struct {
	// ID is the venue-native pair identifier, e.g. "BRLBTC".
	ID string `json:"id"`
	// Symbol is the canonical "BASE/QUOTE" notation, e.g. "BTC/BRL".
	Symbol string `json:"symbol"`
	// Base and Quote are canonical currency codes.
	Base  string `json:"base"`
	Quote string `json:"quote"`
	// BaseID and QuoteID are the venue-native currency codes.
	BaseID  string `json:"base_id"`
	QuoteID string `json:"quote_id"`
	Active  bool   `json:"active"`
	// AmountPrecision and PricePrecision count fractional digits, derived
	// from the venue's step sizes; nil when the venue does not publish them.
	AmountPrecision *float64 `json:"amount_precision,omitempty"`
	PricePrecision  *float64 `json:"price_precision,omitempty"`
	MinAmount       *float64 `json:"min_amount,omitempty"`
	MaxAmount       *float64 `json:"max_amount,omitempty"`
	MinPrice        *float64 `json:"min_price,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	MinCost         *float64 `json:"min_cost,omitempty"`
	MaxCost         *float64 `json:"max_cost,omitempty"`
	Maker           float64  `json:"maker"`
	Taker           float64  `json:"taker"`
	// Info retains the raw venue payload verbatim.
	Info json.RawMessage `json:"info,omitempty"`
}

// BuildSymbol joins canonical currency codes into the canonical pair notation.
func BuildSymbol(base, quote string) string {
	return base + "/" + quote
}

// SplitSymbol parses a canonical "BASE/QUOTE" symbol into its components.
func SplitSymbol(symbol string) (base, quote string, ok bool) {
	parts := strings.Split(strings.TrimSpace(symbol), "/")
	if len(parts) != 2 {
		return "", "", false
	}
	base = strings.TrimSpace(parts[0])
	quote = strings.TrimSpace(parts[1])
	if base == "" || quote == "" {
		return "", "", false
	}
	return base, quote, true
}

// CanonicalCurrencyCode normalizes a venue currency code into canonical form.
func CanonicalCurrencyCode(venueCode string) string {
	return strings.ToUpper(strings.TrimSpace(venueCode))
}
