package dto

// TickerReturn is one ticker's aggregate annualized return on the wire.
//
// AnnualizedReturn is a pointer because a zero-share group aggregates to NaN,
// which JSON cannot carry; such groups serialize with a null value and their
// Formatted field still shows "NaN%".
//
// swagger:model TickerReturn
type TickerReturn struct {
	Ticker           string   `json:"ticker" example:"FB"`
	AnnualizedReturn *float64 `json:"annualized_return" example:"4.0772"`
	Formatted        string   `json:"formatted" example:"407.72%"`
}

// ReturnsResponse is returned by GET /api/v1/returns: the as-of date of the
// computation plus the ordered per-ticker aggregates.
//
// swagger:model ReturnsResponse
type ReturnsResponse struct {
	AsOf    string         `json:"as_of" example:"2033-03-01"`
	Returns []TickerReturn `json:"returns"`
}
