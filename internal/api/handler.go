package api

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkowalik/twrpulse/internal/domain/dto"
	"github.com/mkowalik/twrpulse/internal/domain/models"
	"github.com/mkowalik/twrpulse/internal/render"
	"github.com/mkowalik/twrpulse/internal/service"
	"github.com/mkowalik/twrpulse/internal/statement"
)

// Handler provides HTTP handlers for the return-computation endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Run the report service
//   - Translate pipeline results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc            service.ReportService
	defaultSection string
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: the report service running the computation.
//   - defaultSection: section label used when the request does not override it.
func NewHandler(svc service.ReportService, defaultSection string) *Handler {
	return &Handler{svc: svc, defaultSection: defaultSection}
}

// GetReturns handles GET /api/v1/returns requests.
//
// Query Parameters:
//   - section (string, optional): statement section label (default "Trades").
//
// Responses:
//   - 200 OK: ordered per-ticker aggregate annualized returns.
//   - 422 Unprocessable Entity: the labeled section is absent from the statement.
//   - 500 Internal Server Error: statement unreadable or pipeline failure.
//
// GetReturns godoc
// @Summary      Compute annualized returns per ticker
// @Description  Runs the statement pipeline and returns share-weighted aggregate annualized returns, one per ticker group
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        section  query     string  false  "Statement section label"  example(Trades)
// @Success      200      {object}  dto.ReturnsResponse  "Success"
// @Failure      422      {object}  dto.ErrorResponse    "Section not found"
// @Failure      500      {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/returns [get]
func (h *Handler) GetReturns(c *gin.Context) {
	section := strings.TrimSpace(c.Query("section"))
	if section == "" {
		section = h.defaultSection
	}

	res, err := h.svc.Run(c.Request.Context(), section)
	if err != nil {
		var snf *statement.SectionNotFoundError
		if errors.As(err, &snf) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("section not found in statement", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute returns", err))
		return
	}

	c.JSON(http.StatusOK, toReturnsResponse(res))
}

// toReturnsResponse maps a pipeline result onto the wire DTO. Non-finite
// aggregates become null: JSON carries neither NaN nor Inf, and a pointer left
// set to one makes json.Marshal fail and the response body come out empty.
func toReturnsResponse(res *models.ReportResult) dto.ReturnsResponse {
	out := dto.ReturnsResponse{
		AsOf:    res.AsOf.Format("2006-01-02"),
		Returns: make([]dto.TickerReturn, 0, len(res.Summaries)),
	}
	for _, s := range res.Summaries {
		tr := dto.TickerReturn{
			Ticker:    s.Ticker,
			Formatted: render.Percent(s.Aggregate),
		}
		if !math.IsNaN(s.Aggregate) && !math.IsInf(s.Aggregate, 0) {
			v := s.Aggregate
			tr.AnnualizedReturn = &v
		}
		out.Returns = append(out.Returns, tr)
	}
	return out
}
