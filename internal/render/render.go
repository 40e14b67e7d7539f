package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mkowalik/twrpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Percent formats a decimal fraction as a percentage with two decimals.
// NaN aggregates format as "NaN%", which is deliberate: a zero-share group is
// visible in the output instead of crashing the run.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Summary renders the ordered ticker summaries as a two-column table with a
// header row, preserving emission order.
func Summary(summaries []models.TickerSummary) [][]string {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, []string{"Ticker", "Annualized Return"})
	for _, s := range summaries {
		rows = append(rows, []string{s.Ticker, Percent(s.Aggregate)})
	}
	return rows
}

// Annotated renders the working table: each row's original cells padded to a
// common width, followed by the frozen as-of date, the frozen current price,
// and the annualized-return column (blank for sells).
//
// The returned width is the padded base width; the two snapshot columns sit at
// width and width+1 so callers can hide them.
func Annotated(rows []models.AnnotatedRow) (table [][]string, width int) {
	for _, r := range rows {
		if len(r.Cells) > width {
			width = len(r.Cells)
		}
	}

	table = make([][]string, 0, len(rows))
	for _, r := range rows {
		out := make([]string, width, width+3)
		copy(out, r.Cells)

		out = append(out, formatDate(r.Snapshot.AsOf), formatPrice(r.Snapshot))
		if r.HasReturn {
			out = append(out, strconv.FormatFloat(r.Return, 'f', -1, 64))
		} else {
			out = append(out, "")
		}
		table = append(table, out)
	}
	return table, width
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func formatPrice(s models.Snapshot) string {
	if !s.Resolved {
		return ""
	}
	return strconv.FormatFloat(s.Price, 'f', -1, 64)
}
