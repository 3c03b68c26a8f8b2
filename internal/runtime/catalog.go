package runtime

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/tradewire/ripio/errs"
	"github.com/tradewire/ripio/internal/schema"
)

// CatalogLoader fetches the venue market and currency listings. The adapter
// implements it; the catalog owns caching and refresh synchronization.
type CatalogLoader interface {
	FetchMarkets(ctx context.Context) ([]schema.Market, error)
	FetchCurrencies(ctx context.Context) ([]schema.Currency, error)
}

// Catalog is the load-once market/currency cache shared across calls.
// Normalizers receive its entries as immutable snapshots and never mutate
// them.
type Catalog struct {
	exchange string
	loader   CatalogLoader

	mu         sync.RWMutex
	loaded     bool
	markets    []schema.Market
	bySymbol   map[string]schema.Market
	byID       map[string]schema.Market
	currencies map[string]schema.Currency
}

// NewCatalog constructs an empty catalog backed by the given loader.
func NewCatalog(exchange string, loader CatalogLoader) *Catalog {
	return &Catalog{exchange: exchange, loader: loader}
}

// LoadMarkets fetches markets and currencies once and caches them. Subsequent
// calls return the cached snapshot unless reload is forced.
func (c *Catalog) LoadMarkets(ctx context.Context, reload bool) ([]schema.Market, error) {
	c.mu.RLock()
	if c.loaded && !reload {
		markets := c.markets
		c.mu.RUnlock()
		return markets, nil
	}
	c.mu.RUnlock()

	var (
		markets     []schema.Market
		currencies  []schema.Currency
		marketsErr  error
		currencyErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		markets, marketsErr = c.loader.FetchMarkets(ctx)
	})
	wg.Go(func() {
		currencies, currencyErr = c.loader.FetchCurrencies(ctx)
	})
	wg.Wait()

	if marketsErr != nil {
		return nil, marketsErr
	}
	if currencyErr != nil {
		return nil, currencyErr
	}

	bySymbol := make(map[string]schema.Market, len(markets))
	byID := make(map[string]schema.Market, len(markets))
	for _, m := range markets {
		bySymbol[m.Symbol] = m
		byID[m.ID] = m
	}
	// Last write wins for duplicate canonical codes; arrival order is the
	// venue's.
	codes := make(map[string]schema.Currency, len(currencies))
	for _, cur := range currencies {
		codes[cur.Code] = cur
	}

	c.mu.Lock()
	c.loaded = true
	c.markets = markets
	c.bySymbol = bySymbol
	c.byID = byID
	c.currencies = codes
	c.mu.Unlock()

	return markets, nil
}

// Market resolves a canonical symbol to its cached market definition.
func (c *Catalog) Market(symbol string) (schema.Market, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.bySymbol[symbol]
	if !ok {
		return schema.Market{}, errs.New(c.exchange, errs.CodeNotFound,
			errs.WithMessage("unknown market symbol"),
			errs.WithVenueField("symbol", symbol))
	}
	return m, nil
}

// MarketByID resolves a venue pair identifier to its cached market definition.
func (c *Catalog) MarketByID(id string) (schema.Market, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.byID[id]
	if !ok {
		return schema.Market{}, errs.New(c.exchange, errs.CodeNotFound,
			errs.WithMessage("unknown market id"),
			errs.WithVenueField("id", id))
	}
	return m, nil
}

// MarketID resolves a canonical symbol to the venue pair identifier.
func (c *Catalog) MarketID(symbol string) (string, error) {
	m, err := c.Market(symbol)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// Currency resolves a canonical currency code to its cached definition.
func (c *Catalog) Currency(code string) (schema.Currency, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cur, ok := c.currencies[code]
	if !ok {
		return schema.Currency{}, errs.New(c.exchange, errs.CodeNotFound,
			errs.WithMessage("unknown currency code"),
			errs.WithVenueField("code", code))
	}
	return cur, nil
}

// Loaded reports whether the catalog holds a snapshot.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
