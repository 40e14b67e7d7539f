package models

import "time"

// RowKind discriminates the two shapes a statement row can take once classified.
type RowKind int

const (
	// KindTrade is an executed transaction with timestamp, quantity and price.
	KindTrade RowKind = iota
	// KindGroupBoundary is a subtotal marker: it carries no transaction data and
	// terminates the contiguous run of trades for one ticker.
	KindGroupBoundary
)

// TradeRow is one executed transaction inside the located statement section.
//
// Fields:
//   - Category: column-0 label of the row (e.g., "Trades"), kept for grouping context.
//   - Ticker: stock symbol the transaction refers to.
//   - TradeDate: transaction date (time component discarded on parse).
//   - Quantity: signed share count; negative means a sell.
//   - Price: per-share transaction price.
type TradeRow struct {
	Category  string
	Ticker    string
	TradeDate time.Time
	Quantity  int64
	Price     float64
}

// GroupBoundary marks the end of one ticker's contiguous block of trades.
// The ticker cell on the boundary row names the group being closed.
type GroupBoundary struct {
	Ticker string
}

// Row is a classified statement row: a tagged variant that is either a trade
// or a group boundary, depending on Kind. Exactly one of Trade/Boundary is
// meaningful.
type Row struct {
	Kind     RowKind
	Trade    TradeRow
	Boundary GroupBoundary
}
