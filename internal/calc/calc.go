package calc

import (
	"math"
	"time"

	"github.com/mkowalik/twrpulse/internal/domain/models"
	"github.com/mkowalik/twrpulse/internal/logger"
	"github.com/mkowalik/twrpulse/internal/statement"
)

const daysPerYear = 365

// DaysHeld returns the holding period between the trade date and the frozen
// as-of date, rounded to the nearest whole day.
func DaysHeld(asOf, tradeDate time.Time) int {
	return int(math.Round(asOf.Sub(tradeDate).Hours() / 24))
}

// Annualize computes the annualized time-weighted return of one transaction:
//
//	(currentPrice - txnPrice) / txnPrice / daysHeld * 365
//
// daysHeld must be positive; callers filter out zero-day holds first.
func Annualize(currentPrice, txnPrice float64, daysHeld int) float64 {
	return (currentPrice - txnPrice) / txnPrice / float64(daysHeld) * daysPerYear
}

// Run is the single-pass return calculator.
//
// It walks the extracted rows in order, classifying each into a trade or a
// group boundary, and keeps two accumulators scoped to the current group: the
// share-weighted return tally and the share count tally.
//
// Per-row behavior:
//   - Malformed rows (bad timestamp, quantity or price) are skipped with a
//     warning; the run continues.
//   - Trade rows with an unresolved price snapshot vanish entirely: no output
//     row, no accumulation.
//   - Sells (negative quantity) stay in the output without a return value and
//     contribute nothing to the accumulators.
//   - Buys held zero whole days (trade dated on, or after, the as-of date)
//     are skipped with a warning, like malformed rows: a zero-day hold has no
//     annualized return and would otherwise divide by zero.
//   - Buys get their annualized return written to the row and accumulated.
//   - A boundary row closes the group: the share-weighted average is emitted
//     as a TickerSummary under the boundary row's ticker, written to the
//     boundary row itself, and both accumulators reset. A group that closes
//     with zero net bought shares yields NaN and a warning.
//
// Trades after the last boundary are accumulated but never emitted; the
// statement format always terminates a group with its subtotal row.
func Run(rows []models.ExtractedRow, layout statement.Layout) ([]models.AnnotatedRow, []models.TickerSummary) {
	log := logger.Component("calc")

	var (
		annotated []models.AnnotatedRow
		summaries []models.TickerSummary
		tally     float64
		shares    int64
	)

	for i, er := range rows {
		cl, err := statement.Classify(er.Cells, layout)
		if err != nil {
			log.Warn().Int("row", i+1).Err(err).Msg("malformed row skipped")
			continue
		}

		switch cl.Kind {
		case models.KindGroupBoundary:
			agg := math.NaN()
			if shares != 0 {
				agg = tally / float64(shares)
			} else {
				log.Warn().Str("ticker", cl.Boundary.Ticker).Msg("group closed with zero net bought shares")
			}
			annotated = append(annotated, models.AnnotatedRow{
				Cells:     er.Cells,
				Snapshot:  er.Snapshot,
				Return:    agg,
				HasReturn: true,
			})
			summaries = append(summaries, models.TickerSummary{Ticker: cl.Boundary.Ticker, Aggregate: agg})
			tally, shares = 0, 0

		case models.KindTrade:
			if !er.Snapshot.Resolved {
				continue
			}
			if cl.Trade.Quantity < 0 {
				annotated = append(annotated, models.AnnotatedRow{Cells: er.Cells, Snapshot: er.Snapshot})
				continue
			}
			days := DaysHeld(er.Snapshot.AsOf, cl.Trade.TradeDate)
			if days <= 0 {
				log.Warn().Str("ticker", cl.Trade.Ticker).Int("row", i+1).Int("days_held", days).Msg("non-positive holding period, row skipped")
				continue
			}
			r := Annualize(er.Snapshot.Price, cl.Trade.Price, days)
			annotated = append(annotated, models.AnnotatedRow{
				Cells:     er.Cells,
				Snapshot:  er.Snapshot,
				Return:    r,
				HasReturn: true,
			})
			tally += r * float64(cl.Trade.Quantity)
			shares += cl.Trade.Quantity
		}
	}

	return annotated, summaries
}
