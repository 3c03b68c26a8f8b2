package schema

import json "github.com/goccy/go-json"

// OrderType identifies the execution style of an order.
type OrderType string

const (
	// OrderTypeLimit represents limit orders.
	OrderTypeLimit OrderType = "limit"
	// OrderTypeMarket represents market orders.
	OrderTypeMarket OrderType = "market"
)

// Valid reports whether the order type is recognised.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeLimit, OrderTypeMarket:
		return true
	default:
		return false
	}
}

// OrderStatus is the canonical order lifecycle vocabulary. Venue statuses the
// translator does not recognise pass through unchanged so new venue states
// never break parsing.
type OrderStatus string

const (
	// OrderStatusOpen marks resting or partially executed orders.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed marks completely executed orders.
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCanceled marks canceled orders.
	OrderStatusCanceled OrderStatus = "canceled"
	// OrderStatusPending marks orders the venue has accepted but not yet booked.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusRejected marks orders the venue refused.
	OrderStatusRejected OrderStatus = "rejected"
)

// Fill is one execution against an order.
type Fill struct {
	Timestamp int64  `json:"timestamp,omitempty"`
	Price     string `json:"price,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Cost      string `json:"cost,omitempty"`
}

// Order is one venue order in canonical form. Amount fields are decimal
// strings. Remaining is surfaced from the venue directly, not derived from
// Amount - Filled; discrepancies stay visible through Info.
type Order struct {
	// ID is the venue order code.
	ID     string      `json:"id"`
	Symbol string      `json:"symbol,omitempty"`
	Side   TradeSide   `json:"side,omitempty"`
	Type   OrderType   `json:"type,omitempty"`
	Status OrderStatus `json:"status,omitempty"`
	// Amount is the requested amount; Price is empty for market orders.
	Amount    string `json:"amount,omitempty"`
	Price     string `json:"price,omitempty"`
	Filled    string `json:"filled,omitempty"`
	Remaining string `json:"remaining,omitempty"`
	// Cost is the exact decimal product of the venue unit price and the
	// executed amount.
	Cost string `json:"cost,omitempty"`
	// Timestamp is the creation time, LastUpdate the latest venue update,
	// both epoch milliseconds.
	Timestamp  int64           `json:"timestamp,omitempty"`
	LastUpdate int64           `json:"last_update,omitempty"`
	Fills      []Fill          `json:"fills,omitempty"`
	Info       json.RawMessage `json:"info,omitempty"`
}
