package ripio

import (
	"github.com/tradewire/ripio/errs"
	"github.com/tradewire/ripio/internal/schema"
)

// venueSymbol converts a canonical "BASE/QUOTE" symbol into the venue pair
// identifier by concatenating the two codes without a delimiter. The venue's
// native shape puts the quote currency first; the ordering stays configurable
// because sibling venue variants disagree on it. The reverse mapping is done
// once per catalog load by the market normalizer and cached by the runtime.
func venueSymbol(exchange, symbol string, order SymbolOrder) (string, error) {
	base, quote, ok := schema.SplitSymbol(symbol)
	if !ok {
		return "", errs.New(exchange, errs.CodeInvalid,
			errs.WithMessage("malformed canonical symbol"),
			errs.WithVenueField("symbol", symbol))
	}
	if order == SymbolOrderBaseQuote {
		return base + quote, nil
	}
	return quote + base, nil
}
