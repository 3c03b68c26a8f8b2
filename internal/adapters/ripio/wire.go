package ripio

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// The v3 API wraps every response in {"message": ..., "data": ...}. Numeric
// fields decode as json.Number so their literal decimal form survives into the
// exact-arithmetic path.

type envelope struct {
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeEnvelope unwraps the venue response envelope and returns the data
// fragment.
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}
	return env.Data, nil
}

// envelopeMessage extracts the human-readable message from a raw response
// body, tolerating both string and null shapes.
func envelopeMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	var msg string
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg)
}

type pairPayload struct {
	Base      string      `json:"base"`
	BaseName  string      `json:"base_name"`
	Quote     string      `json:"quote"`
	QuoteName string      `json:"quote_name"`
	Symbol    string      `json:"symbol"`
	Enabled   *bool       `json:"enabled"`
	MinAmount json.Number `json:"min_amount"`
	PriceTick json.Number `json:"price_tick"`
	MinValue  json.Number `json:"min_value"`
}

type currencyPayload struct {
	Active            *bool       `json:"active"`
	Code              string      `json:"code"`
	Name              string      `json:"name"`
	Precision         *int        `json:"precision"`
	MinWithdrawAmount json.Number `json:"min_withdraw_amount"`
}

type tickerPayload struct {
	High           json.Number `json:"high"`
	Low            json.Number `json:"low"`
	Volume         json.Number `json:"volume"`
	TradesQuantity json.Number `json:"trades_quantity"`
	Last           json.Number `json:"last"`
	Buy            json.Number `json:"buy"`
	Sell           json.Number `json:"sell"`
	Date           string      `json:"date"`
}

type bookEntryPayload struct {
	Amount    json.Number `json:"amount"`
	Code      string      `json:"code"`
	UnitPrice json.Number `json:"unit_price"`
}

type bookPayload struct {
	Bids []bookEntryPayload `json:"bids"`
	Asks []bookEntryPayload `json:"asks"`
}

type tradePayload struct {
	Type             string      `json:"type"`
	Amount           json.Number `json:"amount"`
	UnitPrice        json.Number `json:"unit_price"`
	ActiveOrderCode  string      `json:"active_order_code"`
	PassiveOrderCode string      `json:"passive_order_code"`
	Date             string      `json:"date"`
}

type paginationPayload struct {
	TotalPages     int `json:"total_pages"`
	CurrentPage    int `json:"current_page"`
	PageSize       int `json:"page_size"`
	RegistersCount int `json:"registers_count"`
}

type tradesPagePayload struct {
	Trades     []json.RawMessage `json:"trades"`
	Pagination paginationPayload `json:"pagination"`
}

type balancePayload struct {
	Address         string      `json:"address"`
	AvailableAmount json.Number `json:"available_amount"`
	CurrencyCode    string      `json:"currency_code"`
	LastUpdate      string      `json:"last_update"`
	LockedAmount    json.Number `json:"locked_amount"`
	Memo            string      `json:"memo"`
	Tag             string      `json:"tag"`
}

type transactionPayload struct {
	Amount     json.Number `json:"amount"`
	CreateDate string      `json:"create_date"`
	TotalPrice json.Number `json:"total_price"`
	UnitPrice  json.Number `json:"unit_price"`
}

type orderPayload struct {
	Code            string               `json:"code"`
	CreateDate      string               `json:"create_date"`
	ExecutedAmount  json.Number          `json:"executed_amount"`
	Pair            string               `json:"pair"`
	RemainingAmount json.Number          `json:"remaining_amount"`
	RemainingPrice  json.Number          `json:"remaining_price"`
	RequestedAmount json.Number          `json:"requested_amount"`
	Status          string               `json:"status"`
	Subtype         string               `json:"subtype"`
	TotalPrice      json.Number          `json:"total_price"`
	Type            string               `json:"type"`
	UnitPrice       json.Number          `json:"unit_price"`
	UpdateDate      string               `json:"update_date"`
	Transactions    []transactionPayload `json:"transactions"`
}

type ordersPagePayload struct {
	Orders     []json.RawMessage `json:"orders"`
	Pagination paginationPayload `json:"pagination"`
}

type createOrderPayload struct {
	Code string `json:"code"`
}
