package ripio

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tradewire/ripio/internal/numeric"
	"github.com/tradewire/ripio/internal/runtime"
	"github.com/tradewire/ripio/internal/schema"
)

// The normalizers below are pure functions from one raw payload fragment to
// one canonical entity. Missing optional fields become nil or empty, never an
// error; the raw fragment is always retained verbatim under Info.

func parseMarket(raw json.RawMessage) (schema.Market, error) {
	var p pairPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Market{}, fmt.Errorf("decode pair: %w", err)
	}
	base := schema.CanonicalCurrencyCode(p.Base)
	quote := schema.CanonicalCurrencyCode(p.Quote)
	active := true
	if p.Enabled != nil {
		active = *p.Enabled
	}
	return schema.Market{
		ID:              p.Symbol,
		Symbol:          schema.BuildSymbol(base, quote),
		Base:            base,
		Quote:           quote,
		BaseID:          p.Base,
		QuoteID:         p.Quote,
		Active:          active,
		AmountPrecision: stepScale(p.MinAmount),
		PricePrecision:  stepScale(p.PriceTick),
		MinAmount:       numberPtr(p.MinAmount),
		MaxAmount:       nil,
		MinPrice:        nil,
		MaxPrice:        nil,
		MinCost:         numberPtr(p.MinValue),
		MaxCost:         nil,
		Maker:           defaultMakerFee,
		Taker:           defaultTakerFee,
		Info:            raw,
	}, nil
}

func parseCurrency(raw json.RawMessage) (schema.Currency, error) {
	var p currencyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Currency{}, fmt.Errorf("decode currency: %w", err)
	}
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return schema.Currency{
		ID:          p.Code,
		Code:        schema.CanonicalCurrencyCode(p.Code),
		Name:        p.Name,
		Active:      active,
		Precision:   p.Precision,
		MinWithdraw: numberPtr(p.MinWithdrawAmount),
		Info:        raw,
	}, nil
}

func parseTicker(raw json.RawMessage, symbol string) (schema.Ticker, error) {
	var p tickerPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Ticker{}, fmt.Errorf("decode ticker: %w", err)
	}
	timestamp, _ := runtime.ParseISO8601(p.Date)
	return schema.Ticker{
		Symbol:     symbol,
		Timestamp:  timestamp,
		High:       numberPtr(p.High),
		Low:        numberPtr(p.Low),
		Bid:        numberPtr(p.Buy),
		Ask:        numberPtr(p.Sell),
		Last:       numberPtr(p.Last),
		BaseVolume: numberPtr(p.Volume),
		Info:       raw,
	}, nil
}

func parseOrderBook(raw json.RawMessage, symbol string) (schema.OrderBook, error) {
	var p bookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.OrderBook{}, fmt.Errorf("decode order book: %w", err)
	}
	return schema.OrderBook{
		Symbol: symbol,
		Bids:   runtime.BuildBookSide(bookLevels(p.Bids), true),
		Asks:   runtime.BuildBookSide(bookLevels(p.Asks), false),
		Info:   raw,
	}, nil
}

func bookLevels(entries []bookEntryPayload) []runtime.RawLevel {
	levels := make([]runtime.RawLevel, 0, len(entries))
	for _, entry := range entries {
		price := numberPtr(entry.UnitPrice)
		amount := numberPtr(entry.Amount)
		if price == nil || amount == nil {
			continue
		}
		levels = append(levels, runtime.RawLevel{Price: *price, Amount: *amount})
	}
	return levels
}

// parseTrade normalizes one public execution. The venue supplies no usable
// trade id in this response shape, so the id is synthesized from the parsed
// timestamp; when the date is absent the id is absent too.
func parseTrade(raw json.RawMessage, symbol string) (schema.Trade, error) {
	var p tradePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Trade{}, fmt.Errorf("decode trade: %w", err)
	}
	timestamp, hasDate := runtime.ParseISO8601(p.Date)
	id := ""
	if hasDate {
		id = strconv.FormatInt(timestamp, 10)
	}
	price := p.UnitPrice.String()
	amount := p.Amount.String()
	return schema.Trade{
		ID:        id,
		Symbol:    symbol,
		Timestamp: timestamp,
		Side:      schema.TradeSide(strings.ToLower(p.Type)),
		Price:     price,
		Amount:    amount,
		Cost:      numeric.MulStrings(price, amount),
		Info:      raw,
	}, nil
}

// parseBalanceEntry normalizes one wallet row. Total is recomputed as
// free + used exactly, never copied from the venue.
func parseBalanceEntry(raw json.RawMessage) (schema.Balance, error) {
	var p balancePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Balance{}, fmt.Errorf("decode balance: %w", err)
	}
	free := p.AvailableAmount.String()
	used := p.LockedAmount.String()
	return schema.Balance{
		Currency: schema.CanonicalCurrencyCode(p.CurrencyCode),
		Free:     free,
		Used:     used,
		Total:    numeric.AddStrings(free, used),
		Info:     raw,
	}, nil
}

// parseOrder normalizes one venue order. The venue's "limited" subtype maps
// to the canonical "limit" type; the limit price is absent for market orders.
// Remaining is surfaced from the venue directly, not derived.
func parseOrder(raw json.RawMessage, symbol string) (schema.Order, error) {
	var p orderPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return schema.Order{}, fmt.Errorf("decode order: %w", err)
	}
	orderType := schema.OrderType(strings.ToLower(p.Subtype))
	if orderType == "limited" {
		orderType = schema.OrderTypeLimit
	}
	price := ""
	if orderType == schema.OrderTypeLimit {
		price = p.UnitPrice.String()
	}
	created, _ := runtime.ParseISO8601(p.CreateDate)
	updated, _ := runtime.ParseISO8601(p.UpdateDate)
	return schema.Order{
		ID:         p.Code,
		Symbol:     symbol,
		Side:       schema.TradeSide(strings.ToLower(p.Type)),
		Type:       orderType,
		Status:     parseOrderStatus(p.Status),
		Amount:     p.RequestedAmount.String(),
		Price:      price,
		Filled:     p.ExecutedAmount.String(),
		Remaining:  p.RemainingAmount.String(),
		Cost:       numeric.MulStrings(p.UnitPrice.String(), p.ExecutedAmount.String()),
		Timestamp:  created,
		LastUpdate: updated,
		Fills:      parseFills(p.Transactions),
		Info:       raw,
	}, nil
}

func parseFills(transactions []transactionPayload) []schema.Fill {
	if len(transactions) == 0 {
		return nil
	}
	fills := make([]schema.Fill, 0, len(transactions))
	for _, tx := range transactions {
		ts, _ := runtime.ParseISO8601(tx.CreateDate)
		fills = append(fills, schema.Fill{
			Timestamp: ts,
			Price:     tx.UnitPrice.String(),
			Amount:    tx.Amount.String(),
			Cost:      tx.TotalPrice.String(),
		})
	}
	return fills
}

// numberPtr converts a wire number into an optional float64 for simple field
// extraction; exact-arithmetic paths keep the literal string instead.
func numberPtr(n json.Number) *float64 {
	return numeric.Float(n.String())
}

// stepScale converts a step-size literal like "0.01" into its fractional
// digit count; nil when the step is absent or malformed.
func stepScale(n json.Number) *float64 {
	if numberPtr(n) == nil {
		return nil
	}
	scale := float64(numeric.ScaleFromStep(n.String()))
	return &scale
}
