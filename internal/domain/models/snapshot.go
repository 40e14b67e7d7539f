package models

import "time"

// Snapshot is the frozen copy of the volatile per-row lookups: the as-of date
// and the current market price for the row's ticker. It is captured exactly
// once per row by the extractor; the calculator reads only this snapshot and
// never re-queries the live source.
//
// Resolved is false when the price source returned no numeric quote for the
// ticker (unknown symbol, non-numeric sentinel, lookup failure).
type Snapshot struct {
	AsOf     time.Time
	Price    float64
	Resolved bool
}

// ExtractedRow is one raw statement row copied into the working set, paired
// with its frozen snapshot.
type ExtractedRow struct {
	Cells    []string
	Snapshot Snapshot
}

// AnnotatedRow is an extracted row after the return computation.
//
// HasReturn distinguishes rows that carry a value in the annualized-return
// column (buys and boundary rows) from rows that are kept but left blank
// (sells). Rows with an unresolved price never appear as AnnotatedRows at all.
type AnnotatedRow struct {
	Cells     []string
	Snapshot  Snapshot
	Return    float64
	HasReturn bool
}
