package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by the API.
//
// Fields:
//   - Message: human-readable description of what failed.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: when the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to compute returns"`
	ErrorDetails string    `json:"error,omitempty" example:"section \"Trades\" not found"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel through
// error-typed plumbing (e.g., gin's c.Error).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
