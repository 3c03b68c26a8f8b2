package schema

import json "github.com/goccy/go-json"

// Balance holds per-currency wallet amounts as decimal strings.
// Total is recomputed as Free + Used exactly, never trusted from the venue.
type Balance struct {
	Currency string          `json:"currency"`
	Free     string          `json:"free"`
	Used     string          `json:"used"`
	Total    string          `json:"total"`
	Info     json.RawMessage `json:"info,omitempty"`
}

// Balances is an account snapshot keyed by canonical currency code.
type Balances struct {
	Assets map[string]Balance `json:"assets"`
	Info   json.RawMessage    `json:"info,omitempty"`
}
