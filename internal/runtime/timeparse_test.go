package runtime

import "testing"

func TestParseISO8601(t *testing.T) {
	ms, ok := ParseISO8601("2019-01-03T02:27:33.940Z")
	if !ok {
		t.Fatal("expected parse success")
	}
	if ms != 1546482453940 {
		t.Fatalf("expected 1546482453940, got %d", ms)
	}

	ms, ok = ParseISO8601("2017-10-20T00:00:00Z")
	if !ok {
		t.Fatal("expected parse success")
	}
	if ms != 1508457600000 {
		t.Fatalf("expected 1508457600000, got %d", ms)
	}
}

func TestParseISO8601Absent(t *testing.T) {
	if _, ok := ParseISO8601(""); ok {
		t.Fatal("expected empty input to report absence")
	}
	if _, ok := ParseISO8601("yesterday"); ok {
		t.Fatal("expected unparseable input to report absence")
	}
}

func TestParseISO8601Stable(t *testing.T) {
	first, ok := ParseISO8601("2019-01-03T02:27:33.940Z")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	second, ok := ParseISO8601("2019-01-03T02:27:33.940Z")
	if !ok || first != second {
		t.Fatalf("parsing is not stable: %d vs %d", first, second)
	}
}
