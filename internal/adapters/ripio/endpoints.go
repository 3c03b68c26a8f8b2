package ripio

import "net/http"

// authClass selects the signing path for an endpoint.
type authClass int

const (
	authPublic authClass = iota
	authPrivate
)

// EndpointID names one venue endpoint symbolically. The signer resolves ids
// through the registry below by ordinary lookup; there is no per-endpoint
// method synthesis.
type EndpointID string

const (
	// EndpointPairs lists tradable pairs.
	EndpointPairs EndpointID = "pairs"
	// EndpointCurrencies lists supported assets.
	EndpointCurrencies EndpointID = "currencies"
	// EndpointTicker returns the market summary for one pair.
	EndpointTicker EndpointID = "ticker"
	// EndpointOrderBook returns resting orders for one pair.
	EndpointOrderBook EndpointID = "orderbook"
	// EndpointTrades returns the public execution tape for one pair.
	EndpointTrades EndpointID = "trades"
	// EndpointBalance returns wallet balances.
	EndpointBalance EndpointID = "balance"
	// EndpointOrderList pages through the account's orders.
	EndpointOrderList EndpointID = "order_list"
	// EndpointOrderGet returns a single order by venue code.
	EndpointOrderGet EndpointID = "order_get"
	// EndpointOrderCreate submits a new order.
	EndpointOrderCreate EndpointID = "order_create"
	// EndpointOrderCancel cancels an order by venue code.
	EndpointOrderCancel EndpointID = "order_cancel"
)

type endpointSpec struct {
	method string
	// path is relative to the public or private base URL and may contain
	// {placeholder} segments substituted from request parameters.
	path string
	auth authClass
}

var endpointRegistry = map[EndpointID]endpointSpec{
	EndpointPairs:       {http.MethodGet, "pairs/", authPublic},
	EndpointCurrencies:  {http.MethodGet, "currencies/", authPublic},
	EndpointTicker:      {http.MethodGet, "{pair}/ticker/", authPublic},
	EndpointOrderBook:   {http.MethodGet, "{pair}/orders/", authPublic},
	EndpointTrades:      {http.MethodGet, "{pair}/trades/", authPublic},
	EndpointBalance:     {http.MethodGet, "wallets/balance/", authPrivate},
	EndpointOrderList:   {http.MethodGet, "market/user_orders/list/", authPrivate},
	EndpointOrderGet:    {http.MethodGet, "market/user_orders/{code}/", authPrivate},
	EndpointOrderCreate: {http.MethodPost, "market/create_order/", authPrivate},
	EndpointOrderCancel: {http.MethodDelete, "market/user_orders/", authPrivate},
}
