package models

import "time"

// TickerSummary is the aggregate result for one contiguous group of trades:
// the boundary row's ticker plus the share-weighted average of the per-trade
// annualized returns in the group.
//
// Aggregate is NaN for a group that closed with zero net bought shares.
type TickerSummary struct {
	Ticker    string
	Aggregate float64
}

// ReportResult is the full output of one computation run, in row-encounter order.
type ReportResult struct {
	AsOf      time.Time
	Rows      []AnnotatedRow
	Summaries []TickerSummary
}
