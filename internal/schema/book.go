package schema

import json "github.com/goccy/go-json"

// BookLevel is one (price, amount) pair on an order book side. Levels carry no
// venue order id; per-level aggregation is whatever the venue returned.
type BookLevel struct {
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// OrderBook is a sorted snapshot of resting liquidity: bids descending, asks
// ascending, best price first on both sides.
type OrderBook struct {
	Symbol    string          `json:"symbol"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Bids      []BookLevel     `json:"bids"`
	Asks      []BookLevel     `json:"asks"`
	Info      json.RawMessage `json:"info,omitempty"`
}
