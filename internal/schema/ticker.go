package schema

import json "github.com/goccy/go-json"

// Ticker is a point-in-time market summary. Fields the venue does not provide
// (open, vwap, percentage change) are nil, never interpolated.
type Ticker struct {
	Symbol string `json:"symbol"`
	// Timestamp is epoch milliseconds parsed from the venue date string; zero
	// when the venue omitted the date.
	Timestamp  int64           `json:"timestamp,omitempty"`
	High       *float64        `json:"high,omitempty"`
	Low        *float64        `json:"low,omitempty"`
	Bid        *float64        `json:"bid,omitempty"`
	Ask        *float64        `json:"ask,omitempty"`
	Last       *float64        `json:"last,omitempty"`
	BaseVolume *float64        `json:"base_volume,omitempty"`
	Info       json.RawMessage `json:"info,omitempty"`
}
