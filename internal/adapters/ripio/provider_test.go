package ripio

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/tradewire/ripio/config"
	"github.com/tradewire/ripio/errs"
	"github.com/tradewire/ripio/internal/runtime"
	"github.com/tradewire/ripio/internal/schema"
)

// stubTransport serves canned envelope bodies keyed by URL substring and
// records every request it sees.
type stubTransport struct {
	responses map[string]string
	requests  []runtime.Request
}

func (s *stubTransport) Do(_ context.Context, req runtime.Request) ([]byte, error) {
	s.requests = append(s.requests, req)
	for fragment, body := range s.responses {
		if strings.Contains(req.URL, fragment) {
			return []byte(body), nil
		}
	}
	return nil, errs.New("ripio", errs.CodeNotFound,
		errs.WithMessage("no stub for "+req.URL))
}

func newTestProvider(stub *stubTransport) *Provider {
	settings := config.Default().Exchange
	settings.Credentials = config.Credentials{APIKey: "key", APISecret: "secret"}
	return New(Options{
		Settings:  settings,
		Transport: stub,
	})
}

func TestFetchTicker(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"/BRLBTC/ticker/": `{"message":null,"data":{"last":155000,"buy":154900,"sell":155100,"date":"2019-01-03T02:27:33.940Z"}}`,
	}}
	provider := newTestProvider(stub)

	ticker, err := provider.FetchTicker(context.Background(), "BTC/BRL")
	if err != nil {
		t.Fatalf("FetchTicker: %v", err)
	}
	if ticker.Symbol != "BTC/BRL" {
		t.Fatalf("unexpected symbol %s", ticker.Symbol)
	}
	if ticker.Last == nil || *ticker.Last != 155000 {
		t.Fatalf("unexpected last %v", ticker.Last)
	}
}

func TestFetchOrderBookTruncates(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"/BRLBTC/orders/": `{"message":null,"data":{
			"bids":[{"amount":1,"unit_price":10},{"amount":1,"unit_price":12},{"amount":1,"unit_price":11}],
			"asks":[{"amount":1,"unit_price":20},{"amount":1,"unit_price":19}]}}`,
	}}
	provider := newTestProvider(stub)

	book, err := provider.FetchOrderBook(context.Background(), "BTC/BRL", 1)
	if err != nil {
		t.Fatalf("FetchOrderBook: %v", err)
	}
	if len(book.Bids) != 1 || len(book.Asks) != 1 {
		t.Fatalf("expected one level per side, got %d/%d", len(book.Bids), len(book.Asks))
	}
	if book.Bids[0].Price != 12 || book.Asks[0].Price != 19 {
		t.Fatalf("best levels must survive truncation: %v/%v", book.Bids[0].Price, book.Asks[0].Price)
	}
}

func TestFetchTradesSinceAndLimit(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"/BRLBTC/trades/": `{"message":null,"data":{"trades":[
			{"type":"buy","amount":1,"unit_price":10,"date":"2019-01-03T02:27:35.000Z"},
			{"type":"sell","amount":1,"unit_price":11,"date":"2019-01-03T02:27:33.000Z"},
			{"type":"buy","amount":1,"unit_price":12,"date":"2019-01-03T02:27:34.000Z"}
		],"pagination":{"total_pages":1,"current_page":1,"page_size":100,"registers_count":3}}}`,
	}}
	provider := newTestProvider(stub)

	since := int64(1546482454000) // 02:27:34.000Z
	trades, err := provider.FetchTrades(context.Background(), "BTC/BRL", since, 1)
	if err != nil {
		t.Fatalf("FetchTrades: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("expected one trade after filtering, got %d", len(trades))
	}
	if trades[0].Timestamp < since {
		t.Fatalf("trade before since survived: %d", trades[0].Timestamp)
	}
}

func TestFetchBalance(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"wallets/balance/": `{"message":null,"data":[
			{"currency_code":"btc","available_amount":5.23423423,"locked_amount":0},
			{"currency_code":"brl","available_amount":100.5,"locked_amount":0.5}
		]}`,
	}}
	provider := newTestProvider(stub)

	balances, err := provider.FetchBalance(context.Background())
	if err != nil {
		t.Fatalf("FetchBalance: %v", err)
	}
	btc, ok := balances.Assets["BTC"]
	if !ok {
		t.Fatal("expected BTC entry keyed by canonical code")
	}
	if btc.Total != "5.23423423" {
		t.Fatalf("unexpected total %s", btc.Total)
	}
	if brl := balances.Assets["BRL"]; brl.Total != "101" {
		t.Fatalf("unexpected BRL total %s", brl.Total)
	}
}

func TestCreateOrderMarketOmitsPrice(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"market/create_order/": `{"message":null,"data":{"code":"SkvtQoOZf"}}`,
	}}
	provider := newTestProvider(stub)

	order, err := provider.CreateOrder(context.Background(), "BTC/BRL",
		schema.OrderTypeMarket, schema.TradeSideSell, "1.5", "")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "SkvtQoOZf" {
		t.Fatalf("unexpected id %s", order.ID)
	}
	if order.Status != schema.OrderStatusPending {
		t.Fatalf("acknowledged orders start pending, got %s", order.Status)
	}

	var body map[string]any
	if err := json.Unmarshal(stub.requests[0].Body, &body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if body["subtype"] != "MARKET" || body["type"] != "SELL" || body["pair"] != "BRLBTC" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, present := body["unit_price"]; present {
		t.Fatal("market orders must not send unit_price")
	}
}

func TestCreateOrderLimitRequiresPrice(t *testing.T) {
	stub := &stubTransport{}
	provider := newTestProvider(stub)

	_, err := provider.CreateOrder(context.Background(), "BTC/BRL",
		schema.OrderTypeLimit, schema.TradeSideBuy, "0.5", "")
	if errs.CanonicalOf(err) != errs.CanonicalArgumentsRequired {
		t.Fatalf("expected arguments_required, got %v", err)
	}
	if len(stub.requests) != 0 {
		t.Fatal("validation must happen before any request is built")
	}
}

func TestOrderLookupsRequireSymbol(t *testing.T) {
	stub := &stubTransport{}
	provider := newTestProvider(stub)
	ctx := context.Background()

	if _, err := provider.FetchOrder(ctx, "SkvtQoOZf", ""); errs.CanonicalOf(err) != errs.CanonicalArgumentsRequired {
		t.Fatalf("FetchOrder: expected arguments_required, got %v", err)
	}
	if _, err := provider.CancelOrder(ctx, "SkvtQoOZf", " "); errs.CanonicalOf(err) != errs.CanonicalArgumentsRequired {
		t.Fatalf("CancelOrder: expected arguments_required, got %v", err)
	}
	if _, err := provider.FetchOrders(ctx, "", 0, 0, ""); errs.CanonicalOf(err) != errs.CanonicalArgumentsRequired {
		t.Fatalf("FetchOrders: expected arguments_required, got %v", err)
	}
	if len(stub.requests) != 0 {
		t.Fatal("argument guards must run before any request is built")
	}
}

func TestFetchOpenOrdersStatusFilter(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"market/user_orders/list/": `{"message":null,"data":{"orders":[
			{"code":"a","requested_amount":1,"status":"waiting","subtype":"limited","type":"buy","unit_price":10,
			 "create_date":"2019-01-03T02:27:33.940Z"}
		],"pagination":{"total_pages":1,"current_page":1,"page_size":50,"registers_count":1}}}`,
	}}
	provider := newTestProvider(stub)

	orders, err := provider.FetchOpenOrders(context.Background(), "BTC/BRL", 0, 0)
	if err != nil {
		t.Fatalf("FetchOpenOrders: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != schema.OrderStatusOpen {
		t.Fatalf("unexpected orders %+v", orders)
	}
	url := stub.requests[0].URL
	if !strings.Contains(url, "status=executed_partially%2Cwaiting") {
		t.Fatalf("expected open status filter in %s", url)
	}
	if !strings.Contains(url, "pair=BRLBTC") {
		t.Fatalf("expected pair in %s", url)
	}
}

func TestFetchOrdersSideFilter(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"market/user_orders/list/": `{"message":null,"data":{"orders":[],
			"pagination":{"total_pages":1,"current_page":1,"page_size":50,"registers_count":0}}}`,
	}}
	provider := newTestProvider(stub)

	if _, err := provider.FetchOrders(context.Background(), "BTC/BRL", 0, 10, schema.TradeSideBuy); err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	url := stub.requests[0].URL
	if !strings.Contains(url, "type=buy") {
		t.Fatalf("expected side forwarded as type param in %s", url)
	}
	if !strings.Contains(url, "page_size=10") {
		t.Fatalf("expected page_size in %s", url)
	}

	_, err := provider.FetchOrders(context.Background(), "BTC/BRL", 0, 0, schema.TradeSide("hold"))
	if errs.CanonicalOf(err) != errs.CanonicalInvalidOrder {
		t.Fatalf("expected invalid_order for bogus side, got %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatal("side validation must happen before any request is built")
	}
}

func TestFetchOrderTranslatesStatus(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"market/user_orders/SkvtQoOZf/": `{"message":null,"data":{
			"code":"SkvtQoOZf","requested_amount":0.02347418,"executed_amount":0.02347418,
			"remaining_amount":0,"status":"executed_completely","subtype":"limited",
			"type":"buy","unit_price":42600,"create_date":"2017-12-08T23:42:54.960Z"}}`,
	}}
	provider := newTestProvider(stub)

	order, err := provider.FetchOrder(context.Background(), "SkvtQoOZf", "BTC/BRL")
	if err != nil {
		t.Fatalf("FetchOrder: %v", err)
	}
	if order.Status != schema.OrderStatusClosed {
		t.Fatalf("expected closed, got %s", order.Status)
	}
	if order.Symbol != "BTC/BRL" {
		t.Fatalf("unexpected symbol %s", order.Symbol)
	}
}

func TestLoadMarketsPopulatesCatalog(t *testing.T) {
	stub := &stubTransport{responses: map[string]string{
		"pairs/":      `{"message":null,"data":[{"base":"BTC","quote":"BRL","symbol":"BRLBTC","enabled":true}]}`,
		"currencies/": `{"message":null,"data":[{"code":"BTC","name":"Bitcoin","precision":8}]}`,
	}}
	provider := newTestProvider(stub)

	markets, err := provider.LoadMarkets(context.Background())
	if err != nil {
		t.Fatalf("LoadMarkets: %v", err)
	}
	if len(markets) != 1 {
		t.Fatalf("expected one market, got %d", len(markets))
	}
	id, err := provider.Catalog().MarketID("BTC/BRL")
	if err != nil {
		t.Fatalf("MarketID: %v", err)
	}
	if id != "BRLBTC" {
		t.Fatalf("unexpected id %s", id)
	}
	if _, err := provider.Catalog().Currency("BTC"); err != nil {
		t.Fatalf("Currency: %v", err)
	}
}
