package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkowalik/twrpulse/internal/domain/dto"
	"github.com/mkowalik/twrpulse/internal/domain/models"
	"github.com/mkowalik/twrpulse/internal/service"
	"github.com/mkowalik/twrpulse/internal/statement"
)

type mockReportService struct {
	res     *models.ReportResult
	err     error
	section string
}

func (m *mockReportService) Run(_ context.Context, section string) (*models.ReportResult, error) {
	m.section = section
	return m.res, m.err
}

var _ service.ReportService = (*mockReportService)(nil)

func setupRouterWithMock(s service.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, "Trades")
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/returns", h.GetReturns)
	return r
}

func TestGetReturns_TableDriven(t *testing.T) {
	okResult := &models.ReportResult{
		AsOf: time.Date(2033, 3, 1, 0, 0, 0, 0, time.UTC),
		Summaries: []models.TickerSummary{
			{Ticker: "FB", Aggregate: 4.0772},
			{Ticker: "ZZZ", Aggregate: math.NaN()},
		},
	}

	cases := []struct {
		name   string
		svc    *mockReportService
		query  string
		status int
		assert func(t *testing.T, svc *mockReportService, body []byte)
	}{
		{
			name:   "section not found",
			svc:    &mockReportService{err: &statement.SectionNotFoundError{Label: "Trades", Reason: "label absent from column 0"}},
			query:  "/api/v1/returns",
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "internal error",
			svc:    &mockReportService{err: errors.New("statement unreadable")},
			query:  "/api/v1/returns",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success with NaN group",
			svc:    &mockReportService{res: okResult},
			query:  "/api/v1/returns",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockReportService, body []byte) {
				var out dto.ReturnsResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.AsOf != "2033-03-01" || len(out.Returns) != 2 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Returns[0].Ticker != "FB" || out.Returns[0].AnnualizedReturn == nil || *out.Returns[0].AnnualizedReturn != 4.0772 {
					t.Fatalf("unexpected FB entry: %+v", out.Returns[0])
				}
				if out.Returns[0].Formatted != "407.72%" {
					t.Fatalf("unexpected formatting: %q", out.Returns[0].Formatted)
				}
				if out.Returns[1].AnnualizedReturn != nil || out.Returns[1].Formatted != "NaN%" {
					t.Fatalf("NaN group not serialized as null: %+v", out.Returns[1])
				}
			},
		},
		{
			name: "infinite aggregate serialized as null",
			svc: &mockReportService{res: &models.ReportResult{
				AsOf:      time.Date(2033, 3, 1, 0, 0, 0, 0, time.UTC),
				Summaries: []models.TickerSummary{{Ticker: "FB", Aggregate: math.Inf(1)}},
			}},
			query:  "/api/v1/returns",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockReportService, body []byte) {
				if len(body) == 0 {
					t.Fatalf("empty response body")
				}
				var out dto.ReturnsResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Returns) != 1 || out.Returns[0].AnnualizedReturn != nil {
					t.Fatalf("Inf aggregate not serialized as null: %+v", out.Returns)
				}
			},
		},
		{
			name:   "section override",
			svc:    &mockReportService{res: &models.ReportResult{AsOf: time.Now()}},
			query:  "/api/v1/returns?section=Transactions",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockReportService, _ []byte) {
				if svc.section != "Transactions" {
					t.Fatalf("section=%q, want Transactions", svc.section)
				}
			},
		},
		{
			name:   "default section",
			svc:    &mockReportService{res: &models.ReportResult{AsOf: time.Now()}},
			query:  "/api/v1/returns",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockReportService, _ []byte) {
				if svc.section != "Trades" {
					t.Fatalf("section=%q, want Trades", svc.section)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body %s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}
