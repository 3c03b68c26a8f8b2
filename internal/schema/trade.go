package schema

import json "github.com/goccy/go-json"

// TradeSide identifies the aggressor side of a trade or order.
type TradeSide string

const (
	// TradeSideBuy marks buy-side activity.
	TradeSideBuy TradeSide = "buy"
	// TradeSideSell marks sell-side activity.
	TradeSideSell TradeSide = "sell"
)

// Valid reports whether the trade side is recognised.
func (s TradeSide) Valid() bool {
	switch s {
	case TradeSideBuy, TradeSideSell:
		return true
	default:
		return false
	}
}

// Trade is one public execution in canonical form. Price, Amount, and Cost are
// decimal strings; Cost is always the exact decimal product price × amount.
type Trade struct {
	// ID is synthesized from the parsed timestamp when the venue supplies no
	// usable trade id; empty when the date is absent.
	ID        string          `json:"id,omitempty"`
	Symbol    string          `json:"symbol,omitempty"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Side      TradeSide       `json:"side,omitempty"`
	Price     string          `json:"price,omitempty"`
	Amount    string          `json:"amount,omitempty"`
	Cost      string          `json:"cost,omitempty"`
	Info      json.RawMessage `json:"info,omitempty"`
}
