package service

import (
	"context"
	"fmt"

	"github.com/mkowalik/twrpulse/internal/calc"
	"github.com/mkowalik/twrpulse/internal/domain/models"
	"github.com/mkowalik/twrpulse/internal/extract"
	"github.com/mkowalik/twrpulse/internal/logger"
	"github.com/mkowalik/twrpulse/internal/quote"
	"github.com/mkowalik/twrpulse/internal/render"
	"github.com/mkowalik/twrpulse/internal/statement"
	"github.com/mkowalik/twrpulse/internal/storage"
)

// Computation sheet names. Both are recreated from scratch on every run.
const (
	WorkingSheet = "working"
	SummarySheet = "summary"
)

// ReportService runs the full computation: locate the trade section of the
// statement, extract and freeze per-row quotes, compute per-trade annualized
// returns with per-group share-weighted aggregates, and materialize the
// working and summary sheets into the table store.
type ReportService interface {
	Run(ctx context.Context, section string) (*models.ReportResult, error)
}

type reportService struct {
	path   string
	clock  quote.Clock
	prices quote.PriceSource
	store  storage.TableStore
}

// NewReportService wires the pipeline's collaborators.
//
// Parameters:
//   - path:   statement CSV file to read on each run.
//   - clock:  as-of date source, read once per run.
//   - prices: live price source, queried once per extracted row.
//   - store:  table store receiving the working and summary sheets.
func NewReportService(path string, clock quote.Clock, prices quote.PriceSource, store storage.TableStore) ReportService {
	return &reportService{path: path, clock: clock, prices: prices, store: store}
}

func (s *reportService) Run(ctx context.Context, section string) (*models.ReportResult, error) {
	report, err := statement.LoadCSV(s.path)
	if err != nil {
		return nil, err
	}

	start, end, err := statement.LocateSection(report, section)
	if err != nil {
		return nil, err
	}
	rows := report[start:end]

	// When the section leads with its own header row, rebind the column
	// layout by name and drop the header from the working set.
	layout := statement.DefaultLayout()
	if len(rows) > 0 {
		if l, ok := statement.MapHeader(rows[0]); ok {
			layout = l
			rows = rows[1:]
		}
	}

	asOf := s.clock.Today()
	extracted, err := extract.Rows(ctx, rows, layout, asOf, s.prices)
	if err != nil {
		return nil, err
	}

	annotated, summaries := calc.Run(extracted, layout)

	if err := s.materialize(annotated, summaries); err != nil {
		return nil, err
	}

	logger.L().Info().
		Str("section", section).
		Int("rows", len(annotated)).
		Int("groups", len(summaries)).
		Str("as_of", asOf.Format("2006-01-02")).
		Msg("report computed")

	return &models.ReportResult{AsOf: asOf, Rows: annotated, Summaries: summaries}, nil
}

// materialize rebuilds the computation sheets from scratch and hides the
// intermediate snapshot columns on the working sheet.
func (s *reportService) materialize(annotated []models.AnnotatedRow, summaries []models.TickerSummary) error {
	s.store.DeleteSheet(WorkingSheet)
	s.store.DeleteSheet(SummarySheet)

	if err := s.store.CreateSheet(WorkingSheet); err != nil {
		return fmt.Errorf("create working sheet: %w", err)
	}
	table, width := render.Annotated(annotated)
	if err := s.store.WriteRows(WorkingSheet, table); err != nil {
		return fmt.Errorf("write working sheet: %w", err)
	}
	if err := s.store.HideColumns(WorkingSheet, width, width+1); err != nil {
		return fmt.Errorf("hide snapshot columns: %w", err)
	}

	if err := s.store.CreateSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := s.store.WriteRows(SummarySheet, render.Summary(summaries)); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	return nil
}
