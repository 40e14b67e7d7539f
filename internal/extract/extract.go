package extract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkowalik/twrpulse/internal/domain/models"
	"github.com/mkowalik/twrpulse/internal/logger"
	"github.com/mkowalik/twrpulse/internal/quote"
	"github.com/mkowalik/twrpulse/internal/statement"
)

// Rows copies the located section rows into a working set and attaches a
// frozen Snapshot to each: the shared as-of date plus the ticker's current
// price, fetched exactly once per row and never re-read afterwards. The
// snapshot isolates the calculator from lookup latency and volatility.
//
// A lookup that yields no numeric price (unknown symbol, sentinel value,
// exhausted retries) marks the row's snapshot unresolved and is logged; it
// never aborts the pass.
//
// Parameters:
//   - ctx:    context for cancellation.
//   - rows:   raw rows of the located section, header row already stripped.
//   - layout: column layout used to find each row's ticker cell.
//   - asOf:   the run's as-of date, read once from the clock by the caller.
//   - prices: live price source.
func Rows(ctx context.Context, rows [][]string, layout statement.Layout, asOf time.Time, prices quote.PriceSource) ([]models.ExtractedRow, error) {
	log := logger.Component("extract")
	out := make([]models.ExtractedRow, 0, len(rows))

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extract row %d: %w", i+1, err)
		}

		snap := models.Snapshot{AsOf: asOf}
		ticker := statement.Cell(row, layout.Ticker)
		if ticker != "" {
			// Forced evaluation: one lookup per row, then freeze.
			p, err := prices.CurrentPrice(ctx, ticker)
			switch {
			case err == nil:
				snap.Price = p
				snap.Resolved = true
			case errors.Is(err, quote.ErrUnresolved):
				log.Warn().Str("ticker", ticker).Int("row", i+1).Msg("no quote for ticker, row will be skipped")
			default:
				log.Warn().Str("ticker", ticker).Int("row", i+1).Err(err).Msg("price lookup failed, row will be skipped")
			}
		}

		out = append(out, models.ExtractedRow{
			Cells:    append([]string(nil), row...),
			Snapshot: snap,
		})
	}

	return out, nil
}
