package runtime

import (
	"sort"

	"github.com/tradewire/ripio/internal/schema"
)

// RawLevel is one unsorted price level as extracted from a venue payload.
// Levels may be un-aggregated individual resting orders; the builder keeps
// whatever aggregation the venue returned.
type RawLevel struct {
	Price  float64
	Amount float64
}

// BuildBookSide sorts raw levels into canonical order, best price first:
// descending for bids, ascending for asks.
func BuildBookSide(levels []RawLevel, descending bool) []schema.BookLevel {
	out := make([]schema.BookLevel, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, schema.BookLevel{Price: lvl.Price, Amount: lvl.Amount})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Price > out[j].Price
		}
		return out[i].Price < out[j].Price
	})
	return out
}

// TruncateBook limits both book sides to the requested depth. A non-positive
// limit keeps full depth.
func TruncateBook(book schema.OrderBook, limit int) schema.OrderBook {
	if limit <= 0 {
		return book
	}
	if len(book.Bids) > limit {
		book.Bids = book.Bids[:limit]
	}
	if len(book.Asks) > limit {
		book.Asks = book.Asks[:limit]
	}
	return book
}
