package quote

import (
	"context"
	"errors"
	"time"
)

// ErrUnresolved reports that the price source has no numeric quote for a
// ticker. Rows hitting it are dropped from the computation individually; it
// never aborts the run.
var ErrUnresolved = errors.New("price unresolved")

// Clock supplies the as-of calendar date for a computation run. It is read
// exactly once per run so every row sees the same date.
type Clock interface {
	Today() time.Time
}

// SystemClock returns the current UTC date, truncated to midnight.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same date. Used for reproducible runs
// (AS_OF config, --as-of flag) and in tests.
type FixedClock struct {
	Date time.Time
}

func (c FixedClock) Today() time.Time { return c.Date }

// PriceSource resolves the current market price for a ticker.
//
// CurrentPrice returns ErrUnresolved (possibly wrapped) when the source has no
// numeric quote for the symbol. Any other error means the lookup itself
// failed; callers treat both the same way for a single row.
type PriceSource interface {
	CurrentPrice(ctx context.Context, ticker string) (float64, error)
	Ping(ctx context.Context) error
}

// StaticSource is a map-backed PriceSource for tests and offline runs.
// Missing tickers resolve to ErrUnresolved.
type StaticSource map[string]float64

func (s StaticSource) CurrentPrice(_ context.Context, ticker string) (float64, error) {
	p, ok := s[ticker]
	if !ok {
		return 0, ErrUnresolved
	}
	return p, nil
}

func (s StaticSource) Ping(context.Context) error { return nil }
