package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mkowalik/twrpulse/internal/domain/models"
)

const tradeDateLayout = "2006-01-02"

// Layout maps the logical trade fields to column indexes inside the located
// section. The defaults follow the broker's fixed export layout; when the
// section carries its own header row, MapHeader rebinds the indexes by name so
// that reasonable column reordering is tolerated.
type Layout struct {
	Category  int
	Ticker    int
	Timestamp int
	Quantity  int
	Price     int
}

// DefaultLayout returns the broker's fixed column positions.
func DefaultLayout() Layout {
	return Layout{Category: 0, Ticker: 6, Timestamp: 7, Quantity: 8, Price: 9}
}

// headerAliases maps normalized header names to the logical field they bind.
var headerAliases = map[string]string{
	"symbol":      "ticker",
	"ticker":      "ticker",
	"date/time":   "timestamp",
	"datetime":    "timestamp",
	"quantity":    "quantity",
	"qty":         "quantity",
	"t. price":    "price",
	"trade price": "price",
	"price":       "price",
}

// MapHeader inspects a row for column names and, when all four trade fields
// (ticker, timestamp, quantity, price) can be bound, returns a Layout built
// from their positions. The boolean reports whether the row was a usable
// header; a false result means the caller should keep the current layout and
// treat the row as data.
func MapHeader(row []string) (Layout, bool) {
	l := Layout{Category: 0, Ticker: -1, Timestamp: -1, Quantity: -1, Price: -1}
	for i, cell := range row {
		field, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		switch field {
		case "ticker":
			if l.Ticker < 0 {
				l.Ticker = i
			}
		case "timestamp":
			if l.Timestamp < 0 {
				l.Timestamp = i
			}
		case "quantity":
			if l.Quantity < 0 {
				l.Quantity = i
			}
		case "price":
			if l.Price < 0 {
				l.Price = i
			}
		}
	}
	if l.Ticker < 0 || l.Timestamp < 0 || l.Quantity < 0 || l.Price < 0 {
		return Layout{}, false
	}
	return l, true
}

// Classify converts one raw section row into its tagged variant.
//
// An empty timestamp cell marks a group boundary (subtotal row); such rows
// never carry quantity/price data. Any other row must parse as a full trade:
// timestamp in "YYYY-MM-DD, HH:MM:SS" form (only the date component is kept),
// a signed integer quantity and a decimal price.
//
// Returns:
//   - models.Row: the classified row.
//   - error: when a trade row's timestamp, quantity or price is malformed.
func Classify(row []string, l Layout) (models.Row, error) {
	ticker := Cell(row, l.Ticker)
	ts := Cell(row, l.Timestamp)

	if ts == "" {
		return models.Row{
			Kind:     models.KindGroupBoundary,
			Boundary: models.GroupBoundary{Ticker: ticker},
		}, nil
	}

	// Keep only the date component of "YYYY-MM-DD, HH:MM:SS".
	datePart := ts
	if i := strings.IndexByte(ts, ','); i >= 0 {
		datePart = ts[:i]
	}
	d, err := time.Parse(tradeDateLayout, strings.TrimSpace(datePart))
	if err != nil {
		return models.Row{}, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}

	qty, err := strconv.ParseInt(Cell(row, l.Quantity), 10, 64)
	if err != nil {
		return models.Row{}, fmt.Errorf("invalid quantity %q: %w", Cell(row, l.Quantity), err)
	}

	price, err := strconv.ParseFloat(Cell(row, l.Price), 64)
	if err != nil {
		return models.Row{}, fmt.Errorf("invalid price %q: %w", Cell(row, l.Price), err)
	}

	return models.Row{
		Kind: models.KindTrade,
		Trade: models.TradeRow{
			Category:  Cell(row, l.Category),
			Ticker:    ticker,
			TradeDate: d,
			Quantity:  qty,
			Price:     price,
		},
	}, nil
}
