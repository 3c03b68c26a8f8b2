package ripio

import (
	"strconv"
	"strings"

	"github.com/tradewire/ripio/errs"
)

type errorMapping struct {
	code      errs.Code
	canonical errs.CanonicalCode
}

// broadPhrases maps known venue message fragments to canonical categories.
// The slice is ordered: the first matching phrase wins.
var broadPhrases = []struct {
	phrase string
	errorMapping
}{
	{"You did another transaction with the same amount in an interval lower than 10(ten) minutes, it is not allowed in order to prevent mistakes. Try again in a few minutes", errorMapping{errs.CodeExchange, errs.CanonicalExchange}},
	{"Invalid order quantity", errorMapping{errs.CodeInvalid, errs.CanonicalInvalidOrder}},
	{"Funds insufficient", errorMapping{errs.CodeExchange, errs.CanonicalInsufficientFunds}},
	{"Order already canceled", errorMapping{errs.CodeInvalid, errs.CanonicalInvalidOrder}},
	{"Order already completely executed", errorMapping{errs.CodeInvalid, errs.CanonicalOrderNotFillable}},
	{"No orders to cancel", errorMapping{errs.CodeNotFound, errs.CanonicalOrderNotFound}},
	{"Minimum value not reached", errorMapping{errs.CodeExchange, errs.CanonicalExchange}},
	{"Limit exceeded", errorMapping{errs.CodeRateLimited, errs.CanonicalDDoSProtection}},
	{"Too many requests", errorMapping{errs.CodeRateLimited, errs.CanonicalRateLimited}},
}

// statusCodes maps exact HTTP status codes to canonical categories.
var statusCodes = map[int]errorMapping{
	400: {errs.CodeInvalid, errs.CanonicalInvalidOrder},
	401: {errs.CodeAuth, errs.CanonicalPermissionDenied},
	402: {errs.CodeAuth, errs.CanonicalAuthentication},
	403: {errs.CodeAuth, errs.CanonicalPermissionDenied},
	404: {errs.CodeNotFound, errs.CanonicalNullResponse},
	405: {errs.CodeExchange, errs.CanonicalExchange},
	429: {errs.CodeRateLimited, errs.CanonicalDDoSProtection},
	500: {errs.CodeExchange, errs.CanonicalExchange},
	502: {errs.CodeNetwork, errs.CanonicalNetwork},
	503: {errs.CodeUnavailable, errs.CanonicalMaintenance},
}

// Classifier maps failed venue responses to the canonical error taxonomy. It
// satisfies the runtime's ResponseClassifier contract and performs no I/O.
type Classifier struct {
	exchange string
}

// NewClassifier constructs a classifier tagged with the exchange name.
func NewClassifier(exchange string) *Classifier {
	return &Classifier{exchange: exchange}
}

// Classify inspects a failed HTTP exchange. The broad phrase table is checked
// first and short-circuits; the exact status-code table is checked second. A
// nil return means no venue-specific match, letting the transport's generic
// status fallback apply. Raised errors always carry the raw body verbatim.
func (c *Classifier) Classify(status int, body []byte) error {
	if status < 400 || status > 503 {
		return nil
	}
	message := envelopeMessage(body)

	if message != "" {
		for _, entry := range broadPhrases {
			if strings.Contains(message, entry.phrase) {
				return c.envelope(entry.errorMapping, status, body, message)
			}
		}
	}

	if entry, ok := statusCodes[status]; ok {
		return c.envelope(entry, status, body, message)
	}
	return nil
}

func (c *Classifier) envelope(m errorMapping, status int, body []byte, message string) *errs.E {
	opts := []errs.Option{
		errs.WithHTTP(status),
		errs.WithRawCode(strconv.Itoa(status)),
		errs.WithRawMessage(string(body)),
		errs.WithCanonicalCode(m.canonical),
	}
	if message != "" {
		opts = append(opts, errs.WithMessage(message))
	}
	return errs.New(c.exchange, m.code, opts...)
}
