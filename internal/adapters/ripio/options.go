// Package ripio implements the Ripio Trade venue adapter: the bidirectional
// mapping between the venue's REST wire format and the canonical model, the
// request signing protocol, and the error-classification tables. All I/O is
// delegated to the runtime transport; everything in this package is a pure
// transformation.
package ripio

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tradewire/ripio/config"
	"github.com/tradewire/ripio/internal/runtime"
)

const (
	defaultExchangeName = "ripio"

	// Venue fee schedule; the pairs listing does not publish per-market fees.
	defaultMakerFee = 0.0025
	defaultTakerFee = 0.005
)

// SymbolOrder controls how a canonical "BASE/QUOTE" symbol concatenates into
// the venue pair identifier.
type SymbolOrder int

const (
	// SymbolOrderQuoteBase concatenates quote then base ("BTC/BRL" ->
	// "BRLBTC"), the venue's native shape.
	SymbolOrderQuoteBase SymbolOrder = iota
	// SymbolOrderBaseQuote concatenates base then quote.
	SymbolOrderBaseQuote
)

// Options configure the Ripio adapter.
type Options struct {
	Name        string
	Settings    config.ExchangeSettings
	SymbolOrder SymbolOrder
	Transport   runtime.Transport
	Logger      *zap.Logger
}

func withDefaults(in Options) Options {
	if strings.TrimSpace(in.Name) == "" {
		in.Name = defaultExchangeName
	}
	def := config.Default().Exchange
	if strings.TrimSpace(in.Settings.PublicBaseURL) == "" {
		in.Settings.PublicBaseURL = def.PublicBaseURL
	}
	if strings.TrimSpace(in.Settings.PrivateBaseURL) == "" {
		in.Settings.PrivateBaseURL = def.PrivateBaseURL
	}
	if in.Settings.AuthStyle == "" {
		in.Settings.AuthStyle = def.AuthStyle
	}
	if in.Settings.HTTPTimeout <= 0 {
		in.Settings.HTTPTimeout = def.HTTPTimeout
	}
	if in.Settings.RateInterval < 0 {
		in.Settings.RateInterval = def.RateInterval
	}
	if in.Logger == nil {
		in.Logger = zap.NewNop()
	}
	return in
}
