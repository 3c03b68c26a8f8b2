// Package runtime supplies the shared exchange-runtime collaborators every
// venue adapter plugs into: HTTP execution, the market/currency catalog, the
// generic order-book builder, and timestamp parsing. Venue-specific mapping
// lives in the adapters; nothing here knows one venue's wire format from
// another's.
package runtime

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tradewire/ripio/errs"
)

// Request is a fully signed wire request, executed verbatim.
type Request struct {
	URL    string
	Method string
	Header http.Header
	Body   []byte
}

// Transport executes signed requests and returns the raw response body.
type Transport interface {
	Do(ctx context.Context, req Request) ([]byte, error)
}

// ResponseClassifier maps a failed HTTP exchange to a typed error. A nil
// return means the classifier found no match and the transport's generic
// status fallback applies.
type ResponseClassifier interface {
	Classify(status int, body []byte) error
}

const maxTransportAttempts = 3

// HTTPTransport executes requests over net/http with request pacing and
// bounded retries for transport-level failures. HTTP-status failures are never
// retried; they are classified and surfaced once.
type HTTPTransport struct {
	exchange   string
	client     *http.Client
	limiter    *rate.Limiter
	classifier ResponseClassifier
	log        *zap.Logger

	requests metric.Int64Counter
	failures metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewHTTPTransport constructs the production transport. A nil classifier
// disables venue-specific classification; a nil logger disables logging.
func NewHTTPTransport(exchange string, timeout, rateInterval time.Duration, classifier ResponseClassifier, log *zap.Logger) *HTTPTransport {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rateInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(rateInterval), 1)
	}
	if log == nil {
		log = zap.NewNop()
	}
	client := new(http.Client)
	client.Timeout = timeout

	meter := otel.Meter("tradewire.ripio/runtime")
	requests, _ := meter.Int64Counter("exchange_requests_total")
	failures, _ := meter.Int64Counter("exchange_request_failures_total")
	latency, _ := meter.Float64Histogram("exchange_request_seconds")

	return &HTTPTransport{
		exchange:   exchange,
		client:     client,
		limiter:    limiter,
		classifier: classifier,
		log:        log,
		requests:   requests,
		failures:   failures,
		latency:    latency,
	}
}

// Do executes the request, retrying transport-level failures with exponential
// backoff. Success-range statuses return the body; failures return an errs
// envelope carrying the raw response verbatim.
func (t *HTTPTransport) Do(ctx context.Context, req Request) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	attrs := metric.WithAttributes(
		attribute.String("exchange", t.exchange),
		attribute.String("method", req.Method),
	)

	backoffCfg := backoff.NewExponentialBackOff()
	var lastErr error
	for attempt := 1; attempt <= maxTransportAttempts; attempt++ {
		start := time.Now()
		body, status, err := t.roundTrip(ctx, req)
		t.requests.Add(ctx, 1, attrs)
		t.latency.Record(ctx, time.Since(start).Seconds(), attrs)

		if err == nil && status >= 200 && status < 300 {
			return body, nil
		}

		if err == nil {
			// HTTP failure: classify once, never retry, never remap a
			// success-range status.
			t.failures.Add(ctx, 1, attrs)
			if t.classifier != nil {
				if classified := t.classifier.Classify(status, body); classified != nil {
					t.log.Debug("venue error classified",
						zap.String("request_id", requestID),
						zap.Int("status", status),
						zap.Error(classified))
					return nil, classified
				}
			}
			return nil, t.fallbackError(status, body)
		}

		lastErr = err
		t.failures.Add(ctx, 1, attrs)
		t.log.Debug("transport failure",
			zap.String("request_id", requestID),
			zap.String("url", req.URL),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == maxTransportAttempts {
			break
		}
		sleep := backoffCfg.NextBackOff()
		if sleep == backoff.Stop {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}

	return nil, errs.New(t.exchange, errs.CodeNetwork,
		errs.WithMessage("transport exhausted retries"),
		errs.WithCanonicalCode(errs.CanonicalNetwork),
		errs.WithCause(lastErr))
}

func (t *HTTPTransport) roundTrip(ctx context.Context, req Request) ([]byte, int, error) {
	var reader io.Reader
	if len(req.Body) > 0 {
		reader = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reader)
	if err != nil {
		return nil, 0, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// fallbackError is the generic HTTP-status mapping applied when the venue
// classifier finds no match.
func (t *HTTPTransport) fallbackError(status int, body []byte) *errs.E {
	code := errs.CodeExchange
	canonical := errs.CanonicalExchange
	switch {
	case status == http.StatusTooManyRequests:
		code = errs.CodeRateLimited
		canonical = errs.CanonicalRateLimited
	case status == http.StatusServiceUnavailable:
		code = errs.CodeUnavailable
		canonical = errs.CanonicalMaintenance
	case status >= 500:
		code = errs.CodeExchange
	case status >= 400:
		code = errs.CodeInvalid
	}
	return errs.New(t.exchange, code,
		errs.WithHTTP(status),
		errs.WithRawMessage(string(body)),
		errs.WithCanonicalCode(canonical))
}
