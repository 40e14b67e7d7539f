package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/mkowalik/twrpulse/internal/logger"
)

// HTTPSource fetches current prices from a quote endpoint over HTTP.
//
// Expected wire format for GET {base}/quote/{symbol}:
//
//	{"symbol": "AAPL", "price": 230.45}
//
// A 404, or a non-numeric price field, maps to ErrUnresolved. Transport errors
// and 5xx responses are retried with exponential backoff up to maxRetries
// before failing; market-data endpoints are flaky enough that a bounded retry
// is part of the contract here.
type HTTPSource struct {
	client     *resty.Client
	maxRetries uint64
}

// NewHTTPSource builds an HTTPSource against baseURL with a per-request
// timeout and a bounded retry count for transient failures.
func NewHTTPSource(baseURL string, timeout time.Duration, maxRetries int) *HTTPSource {
	if maxRetries < 0 {
		maxRetries = 0
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPSource{client: c, maxRetries: uint64(maxRetries)}
}

type quotePayload struct {
	Symbol string      `json:"symbol"`
	Price  json.Number `json:"price"`
}

// CurrentPrice resolves the live price for ticker.
func (s *HTTPSource) CurrentPrice(ctx context.Context, ticker string) (float64, error) {
	log := logger.Component("quote")
	var price float64

	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			Get("/quote/" + url.PathEscape(ticker))
		if err != nil {
			log.Warn().Str("ticker", ticker).Err(err).Msg("quote request failed, retrying")
			return retry.RetryableError(err)
		}

		switch {
		case resp.StatusCode() == http.StatusNotFound:
			return fmt.Errorf("%w: unknown symbol %q", ErrUnresolved, ticker)
		case resp.StatusCode() >= http.StatusInternalServerError:
			log.Warn().Str("ticker", ticker).Int("status", resp.StatusCode()).Msg("quote endpoint error, retrying")
			return retry.RetryableError(fmt.Errorf("quote endpoint returned %d", resp.StatusCode()))
		case resp.StatusCode() != http.StatusOK:
			return fmt.Errorf("quote endpoint returned %d for %q", resp.StatusCode(), ticker)
		}

		var payload quotePayload
		if err := json.Unmarshal(resp.Body(), &payload); err != nil {
			return fmt.Errorf("decode quote for %q: %w", ticker, err)
		}
		v, err := payload.Price.Float64()
		if err != nil {
			// The endpoint signals "no quote" with a non-numeric sentinel.
			return fmt.Errorf("%w: non-numeric price %q for %q", ErrUnresolved, payload.Price.String(), ticker)
		}
		price = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return price, nil
}

// Ping checks that the quote endpoint is reachable. Any HTTP response counts
// as reachable; only transport failures are errors.
func (s *HTTPSource) Ping(ctx context.Context) error {
	_, err := s.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("quote endpoint unreachable: %w", err)
	}
	return nil
}
