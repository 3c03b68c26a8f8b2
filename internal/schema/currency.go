package schema

import json "github.com/goccy/go-json"

// Currency describes one listed asset in canonical form.
type Currency struct {
	// ID is the venue-native currency code.
	ID string `json:"id"`
	// Code is the canonical currency code.
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Active bool   `json:"active"`
	// Precision is the withdrawal precision in fractional digits, nil when the
	// venue omits it.
	Precision *int `json:"precision,omitempty"`
	// MinWithdraw is the minimum withdrawal amount, nil when unpublished.
	MinWithdraw *float64 `json:"min_withdraw,omitempty"`
	Info        json.RawMessage `json:"info,omitempty"`
}
