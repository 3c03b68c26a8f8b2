package schema

import "testing"

func TestSplitSymbol(t *testing.T) {
	base, quote, ok := SplitSymbol("BTC/BRL")
	if !ok || base != "BTC" || quote != "BRL" {
		t.Fatalf("expected BTC/BRL split, got %q %q ok=%v", base, quote, ok)
	}
	if _, _, ok := SplitSymbol("BTCBRL"); ok {
		t.Fatal("expected split failure without separator")
	}
	if _, _, ok := SplitSymbol("BTC/"); ok {
		t.Fatal("expected split failure with empty quote")
	}
	if _, _, ok := SplitSymbol(""); ok {
		t.Fatal("expected split failure for empty symbol")
	}
}

func TestBuildSymbolRoundTrip(t *testing.T) {
	symbol := BuildSymbol("ETH", "BRL")
	base, quote, ok := SplitSymbol(symbol)
	if !ok || base != "ETH" || quote != "BRL" {
		t.Fatalf("round trip failed: %q -> %q %q ok=%v", symbol, base, quote, ok)
	}
}

func TestCanonicalCurrencyCode(t *testing.T) {
	if got := CanonicalCurrencyCode(" btc "); got != "BTC" {
		t.Fatalf("expected BTC, got %q", got)
	}
}

func TestEnumValidity(t *testing.T) {
	if !TradeSideBuy.Valid() || !TradeSideSell.Valid() {
		t.Fatal("expected canonical sides to be valid")
	}
	if TradeSide("hold").Valid() {
		t.Fatal("expected unknown side to be invalid")
	}
	if !OrderTypeLimit.Valid() || !OrderTypeMarket.Valid() {
		t.Fatal("expected canonical order types to be valid")
	}
	if OrderType("stop").Valid() {
		t.Fatal("expected unknown order type to be invalid")
	}
}
