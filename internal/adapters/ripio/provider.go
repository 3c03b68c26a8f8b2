package ripio

import (
	"context"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/tradewire/ripio/errs"
	"github.com/tradewire/ripio/internal/runtime"
	"github.com/tradewire/ripio/internal/schema"
)

// Venue status sets used to pre-filter order listings.
var (
	openOrderStatuses   = []string{"executed_partially", "waiting"}
	closedOrderStatuses = []string{"executed_completely", "canceled"}
)

// Provider is the Ripio Trade adapter surface. Every operation takes
// canonical-form arguments and returns canonical entities; the venue wire
// format never leaks past this package.
type Provider struct {
	opts       Options
	signer     *Signer
	classifier *Classifier
	transport  runtime.Transport
	catalog    *runtime.Catalog
	log        *zap.Logger
}

// New constructs the adapter. When no transport is supplied the production
// HTTP transport is created with this adapter's classifier wired in.
func New(opts Options) *Provider {
	opts = withDefaults(opts)
	p := &Provider{
		opts:       opts,
		signer:     NewSigner(opts.Name, opts.Settings),
		classifier: NewClassifier(opts.Name),
		log:        opts.Logger,
	}
	if opts.Transport != nil {
		p.transport = opts.Transport
	} else {
		p.transport = runtime.NewHTTPTransport(opts.Name, opts.Settings.HTTPTimeout,
			opts.Settings.RateInterval, p.classifier, opts.Logger)
	}
	p.catalog = runtime.NewCatalog(opts.Name, p)
	return p
}

// Name returns the exchange identifier.
func (p *Provider) Name() string { return p.opts.Name }

// Catalog exposes the runtime market/currency cache.
func (p *Provider) Catalog() *runtime.Catalog { return p.catalog }

// LoadMarkets loads and caches the market/currency catalog.
func (p *Provider) LoadMarkets(ctx context.Context) ([]schema.Market, error) {
	return p.catalog.LoadMarkets(ctx, false)
}

func (p *Provider) fetch(ctx context.Context, id EndpointID, params map[string]any) (json.RawMessage, error) {
	req, err := p.signer.Build(id, params)
	if err != nil {
		return nil, err
	}
	body, err := p.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body)
}

// FetchMarkets retrieves and normalizes the tradable pairs listing.
func (p *Provider) FetchMarkets(ctx context.Context) ([]schema.Market, error) {
	data, err := p.fetch(ctx, EndpointPairs, nil)
	if err != nil {
		return nil, err
	}
	var fragments []json.RawMessage
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, decodeError(p.opts.Name, "pairs", err)
	}
	markets := make([]schema.Market, 0, len(fragments))
	for _, fragment := range fragments {
		market, err := parseMarket(fragment)
		if err != nil {
			p.log.Debug("skipping unparseable pair", zap.Error(err))
			continue
		}
		markets = append(markets, market)
	}
	return markets, nil
}

// FetchCurrencies retrieves and normalizes the asset listing. Later
// duplicates of a canonical code overwrite earlier ones at the catalog layer.
func (p *Provider) FetchCurrencies(ctx context.Context) ([]schema.Currency, error) {
	data, err := p.fetch(ctx, EndpointCurrencies, nil)
	if err != nil {
		return nil, err
	}
	var fragments []json.RawMessage
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, decodeError(p.opts.Name, "currencies", err)
	}
	currencies := make([]schema.Currency, 0, len(fragments))
	for _, fragment := range fragments {
		currency, err := parseCurrency(fragment)
		if err != nil {
			p.log.Debug("skipping unparseable currency", zap.Error(err))
			continue
		}
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

// FetchTicker retrieves the market summary for one canonical symbol.
func (p *Provider) FetchTicker(ctx context.Context, symbol string) (schema.Ticker, error) {
	pair, err := venueSymbol(p.opts.Name, symbol, p.opts.SymbolOrder)
	if err != nil {
		return schema.Ticker{}, err
	}
	data, err := p.fetch(ctx, EndpointTicker, map[string]any{"pair": pair})
	if err != nil {
		return schema.Ticker{}, err
	}
	return parseTicker(data, symbol)
}

// FetchOrderBook retrieves resting liquidity for one canonical symbol. A
// positive limit truncates both sides after sorting.
func (p *Provider) FetchOrderBook(ctx context.Context, symbol string, limit int) (schema.OrderBook, error) {
	pair, err := venueSymbol(p.opts.Name, symbol, p.opts.SymbolOrder)
	if err != nil {
		return schema.OrderBook{}, err
	}
	data, err := p.fetch(ctx, EndpointOrderBook, map[string]any{"pair": pair})
	if err != nil {
		return schema.OrderBook{}, err
	}
	book, err := parseOrderBook(data, symbol)
	if err != nil {
		return schema.OrderBook{}, err
	}
	return runtime.TruncateBook(book, limit), nil
}

// FetchTrades retrieves the public execution tape for one canonical symbol.
// since is an epoch-millisecond lower bound; a positive limit truncates.
func (p *Provider) FetchTrades(ctx context.Context, symbol string, since int64, limit int) ([]schema.Trade, error) {
	pair, err := venueSymbol(p.opts.Name, symbol, p.opts.SymbolOrder)
	if err != nil {
		return nil, err
	}
	data, err := p.fetch(ctx, EndpointTrades, map[string]any{"pair": pair})
	if err != nil {
		return nil, err
	}
	var page tradesPagePayload
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, decodeError(p.opts.Name, "trades", err)
	}
	trades := make([]schema.Trade, 0, len(page.Trades))
	for _, fragment := range page.Trades {
		trade, err := parseTrade(fragment, symbol)
		if err != nil {
			p.log.Debug("skipping unparseable trade", zap.Error(err))
			continue
		}
		if since > 0 && trade.Timestamp < since {
			continue
		}
		trades = append(trades, trade)
		if limit > 0 && len(trades) >= limit {
			break
		}
	}
	return trades, nil
}

// FetchBalance retrieves the account wallet snapshot keyed by canonical
// currency code. Totals are recomputed from free + used.
func (p *Provider) FetchBalance(ctx context.Context) (schema.Balances, error) {
	data, err := p.fetch(ctx, EndpointBalance, nil)
	if err != nil {
		return schema.Balances{}, err
	}
	var fragments []json.RawMessage
	if err := json.Unmarshal(data, &fragments); err != nil {
		return schema.Balances{}, decodeError(p.opts.Name, "balance", err)
	}
	balances := schema.Balances{
		Assets: make(map[string]schema.Balance, len(fragments)),
		Info:   data,
	}
	for _, fragment := range fragments {
		balance, err := parseBalanceEntry(fragment)
		if err != nil {
			p.log.Debug("skipping unparseable balance", zap.Error(err))
			continue
		}
		balances.Assets[balance.Currency] = balance
	}
	return balances, nil
}

// CreateOrder submits a new order. The canonical limit type maps to the
// venue's LIMITED subtype; unit_price is sent only for limit orders. The
// venue acknowledges with the order code alone.
func (p *Provider) CreateOrder(ctx context.Context, symbol string, orderType schema.OrderType, side schema.TradeSide, amount, price string) (schema.Order, error) {
	if !orderType.Valid() {
		return schema.Order{}, errs.New(p.opts.Name, errs.CodeInvalid,
			errs.WithMessage("unsupported order type"),
			errs.WithCanonicalCode(errs.CanonicalInvalidOrder),
			errs.WithVenueField("type", string(orderType)))
	}
	if !side.Valid() {
		return schema.Order{}, errs.New(p.opts.Name, errs.CodeInvalid,
			errs.WithMessage("unsupported order side"),
			errs.WithCanonicalCode(errs.CanonicalInvalidOrder),
			errs.WithVenueField("side", string(side)))
	}
	if orderType == schema.OrderTypeLimit && strings.TrimSpace(price) == "" {
		return schema.Order{}, errs.ArgumentsRequired(p.opts.Name, "createOrder() requires a price argument for limit orders")
	}
	pair, err := venueSymbol(p.opts.Name, symbol, p.opts.SymbolOrder)
	if err != nil {
		return schema.Order{}, err
	}

	subtype := "MARKET"
	if orderType == schema.OrderTypeLimit {
		subtype = "LIMITED"
	}
	params := map[string]any{
		"pair":    pair,
		"subtype": subtype,
		"type":    strings.ToUpper(string(side)),
		"amount":  json.Number(amount),
	}
	if orderType == schema.OrderTypeLimit {
		params["unit_price"] = json.Number(price)
	}

	data, err := p.fetch(ctx, EndpointOrderCreate, params)
	if err != nil {
		return schema.Order{}, err
	}
	var ack createOrderPayload
	if err := json.Unmarshal(data, &ack); err != nil {
		return schema.Order{}, decodeError(p.opts.Name, "create order", err)
	}
	order := schema.Order{
		ID:     ack.Code,
		Symbol: symbol,
		Side:   side,
		Type:   orderType,
		Status: schema.OrderStatusPending,
		Amount: amount,
		Info:   data,
	}
	if orderType == schema.OrderTypeLimit {
		order.Price = price
	}
	return order, nil
}

// CancelOrder cancels an order by venue code. The symbol argument is required
// for canonical symbol context and validated before any request is built.
func (p *Provider) CancelOrder(ctx context.Context, id, symbol string) (schema.Order, error) {
	if strings.TrimSpace(symbol) == "" {
		return schema.Order{}, errs.ArgumentsRequired(p.opts.Name, "cancelOrder() requires a symbol argument")
	}
	data, err := p.fetch(ctx, EndpointOrderCancel, map[string]any{"code": id})
	if err != nil {
		return schema.Order{}, err
	}
	return p.finishOrder(data, symbol)
}

// FetchOrder retrieves one order by venue code.
func (p *Provider) FetchOrder(ctx context.Context, id, symbol string) (schema.Order, error) {
	if strings.TrimSpace(symbol) == "" {
		return schema.Order{}, errs.ArgumentsRequired(p.opts.Name, "fetchOrder() requires a symbol argument")
	}
	data, err := p.fetch(ctx, EndpointOrderGet, map[string]any{"code": id})
	if err != nil {
		return schema.Order{}, err
	}
	return p.finishOrder(data, symbol)
}

// FetchOrders pages through the account's orders for one canonical symbol,
// optionally pre-filtered server-side by trade side and venue status strings.
// since is an epoch-millisecond lower bound on creation time; a positive
// limit truncates.
func (p *Provider) FetchOrders(ctx context.Context, symbol string, since int64, limit int, side schema.TradeSide, statuses ...string) ([]schema.Order, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, errs.ArgumentsRequired(p.opts.Name, "fetchOrders() requires a symbol argument")
	}
	if side != "" && !side.Valid() {
		return nil, errs.New(p.opts.Name, errs.CodeInvalid,
			errs.WithMessage("unsupported order side"),
			errs.WithCanonicalCode(errs.CanonicalInvalidOrder),
			errs.WithVenueField("side", string(side)))
	}
	pair, err := venueSymbol(p.opts.Name, symbol, p.opts.SymbolOrder)
	if err != nil {
		return nil, err
	}
	params := map[string]any{"pair": pair}
	if limit > 0 {
		params["page_size"] = limit
	}
	if side != "" {
		params["type"] = string(side)
	}
	if len(statuses) > 0 {
		params["status"] = strings.Join(statuses, ",")
	}
	data, err := p.fetch(ctx, EndpointOrderList, params)
	if err != nil {
		return nil, err
	}
	var page ordersPagePayload
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, decodeError(p.opts.Name, "orders", err)
	}
	orders := make([]schema.Order, 0, len(page.Orders))
	for _, fragment := range page.Orders {
		order, err := parseOrder(fragment, symbol)
		if err != nil {
			p.log.Debug("skipping unparseable order", zap.Error(err))
			continue
		}
		p.noteUnknownStatus(order)
		if since > 0 && order.Timestamp < since {
			continue
		}
		orders = append(orders, order)
		if limit > 0 && len(orders) >= limit {
			break
		}
	}
	return orders, nil
}

// FetchOpenOrders lists resting and partially executed orders.
func (p *Provider) FetchOpenOrders(ctx context.Context, symbol string, since int64, limit int) ([]schema.Order, error) {
	return p.FetchOrders(ctx, symbol, since, limit, "", openOrderStatuses...)
}

// FetchClosedOrders lists completely executed and canceled orders.
func (p *Provider) FetchClosedOrders(ctx context.Context, symbol string, since int64, limit int) ([]schema.Order, error) {
	return p.FetchOrders(ctx, symbol, since, limit, "", closedOrderStatuses...)
}

func (p *Provider) finishOrder(data json.RawMessage, symbol string) (schema.Order, error) {
	order, err := parseOrder(data, symbol)
	if err != nil {
		return schema.Order{}, err
	}
	p.noteUnknownStatus(order)
	return order, nil
}

// noteUnknownStatus logs venue statuses that passed through untranslated so
// operators notice new lifecycle states before they matter.
func (p *Provider) noteUnknownStatus(order schema.Order) {
	switch order.Status {
	case schema.OrderStatusOpen, schema.OrderStatusClosed, schema.OrderStatusCanceled,
		schema.OrderStatusPending, schema.OrderStatusRejected:
		return
	}
	p.log.Warn("unknown venue order status",
		zap.String("order", order.ID),
		zap.String("status", string(order.Status)))
}

func decodeError(exchange, what string, cause error) *errs.E {
	return errs.New(exchange, errs.CodeExchange,
		errs.WithMessage("decode "+what+" response"),
		errs.WithCause(cause))
}
