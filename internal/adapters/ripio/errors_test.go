package ripio

import (
	"errors"
	"testing"

	"github.com/tradewire/ripio/errs"
)

func TestClassifyBroadPhraseBeatsStatus(t *testing.T) {
	classifier := NewClassifier("ripio")

	// 403 alone maps to permission denied; the message must win.
	err := classifier.Classify(403, []byte(`{"message":"Funds insufficient","data":null}`))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errs.CanonicalOf(err); got != errs.CanonicalInsufficientFunds {
		t.Fatalf("expected insufficient_funds, got %s", got)
	}
}

func TestClassifyExactStatus(t *testing.T) {
	classifier := NewClassifier("ripio")

	cases := []struct {
		status int
		want   errs.CanonicalCode
	}{
		{400, errs.CanonicalInvalidOrder},
		{401, errs.CanonicalPermissionDenied},
		{402, errs.CanonicalAuthentication},
		{403, errs.CanonicalPermissionDenied},
		{404, errs.CanonicalNullResponse},
		{405, errs.CanonicalExchange},
		{429, errs.CanonicalDDoSProtection},
		{500, errs.CanonicalExchange},
		{502, errs.CanonicalNetwork},
		{503, errs.CanonicalMaintenance},
	}
	for _, tc := range cases {
		err := classifier.Classify(tc.status, []byte(`{"message":"nope","data":null}`))
		if err == nil {
			t.Fatalf("%d: expected an error", tc.status)
		}
		if got := errs.CanonicalOf(err); got != tc.want {
			t.Fatalf("%d: expected %s, got %s", tc.status, tc.want, got)
		}
	}
}

func TestClassifyPhraseTable(t *testing.T) {
	classifier := NewClassifier("ripio")

	cases := []struct {
		message string
		want    errs.CanonicalCode
	}{
		{"Invalid order quantity", errs.CanonicalInvalidOrder},
		{"Order already canceled", errs.CanonicalInvalidOrder},
		{"Order already completely executed", errs.CanonicalOrderNotFillable},
		{"No orders to cancel", errs.CanonicalOrderNotFound},
		{"Minimum value not reached", errs.CanonicalExchange},
		{"Limit exceeded", errs.CanonicalDDoSProtection},
		{"Too many requests", errs.CanonicalRateLimited},
	}
	for _, tc := range cases {
		body := []byte(`{"message":"` + tc.message + `","data":null}`)
		err := classifier.Classify(400, body)
		if err == nil {
			t.Fatalf("%q: expected an error", tc.message)
		}
		if got := errs.CanonicalOf(err); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.message, tc.want, got)
		}
	}
}

func TestClassifyOutsideRange(t *testing.T) {
	classifier := NewClassifier("ripio")

	for _, status := range []int{200, 302, 399, 504} {
		if err := classifier.Classify(status, []byte(`{"message":"Funds insufficient"}`)); err != nil {
			t.Fatalf("%d: expected nil, got %v", status, err)
		}
	}
}

func TestClassifyUnmappedStatusInRange(t *testing.T) {
	classifier := NewClassifier("ripio")

	// 418 sits inside the window but has neither a phrase nor a table entry.
	if err := classifier.Classify(418, []byte(`{"message":"teapot","data":null}`)); err != nil {
		t.Fatalf("expected nil for unmapped status, got %v", err)
	}
}

func TestClassifyRetainsRawBody(t *testing.T) {
	classifier := NewClassifier("ripio")

	body := []byte(`{"message":"Funds insufficient","data":null}`)
	err := classifier.Classify(400, body)
	var e *errs.E
	if !errors.As(err, &e) {
		t.Fatalf("expected *errs.E, got %T", err)
	}
	if e.RawMsg != string(body) {
		t.Fatalf("raw body not retained: %q", e.RawMsg)
	}
	if e.HTTP != 400 || e.RawCode != "400" {
		t.Fatalf("status not retained: %d %s", e.HTTP, e.RawCode)
	}
}
