package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkowalik/twrpulse/config"
	"github.com/mkowalik/twrpulse/internal/api"
	"github.com/mkowalik/twrpulse/internal/quote"
	"github.com/mkowalik/twrpulse/internal/service"
	"github.com/mkowalik/twrpulse/internal/storage"
)

// priceSourceCtor builds the live price source from config; tests swap it out
// to substitute a static source.
var priceSourceCtor = func(cfg config.Config) quote.PriceSource {
	return quote.NewHTTPSource(cfg.Quote.BaseURL, cfg.Quote.Timeout, cfg.Quote.MaxRetries)
}

// BuildClock returns the as-of date source for a run: a fixed clock when
// asOf is set (YYYY-MM-DD), the system date otherwise.
func BuildClock(asOf string) (quote.Clock, error) {
	if asOf == "" {
		return quote.SystemClock{}, nil
	}
	d, err := time.Parse("2006-01-02", asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid as-of date %q: %w", asOf, err)
	}
	return quote.FixedClock{Date: d}, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the run clock from AS_OF (fixed) or the system date.
//   - Builds the HTTP price source and the in-memory table store.
//   - Creates the report service and HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	clock, err := BuildClock(cfg.Statement.AsOf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize clock: %w", err)
	}

	prices := priceSourceCtor(cfg)
	store := storage.NewMemoryStore()

	// Report service runs the whole locate/extract/calculate/render pipeline
	svc := service.NewReportService(cfg.Statement.Path, clock, prices, store)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Statement.SectionLabel)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	api.NewHealthHandler(prices.Ping).Register(router)

	// Nothing to tear down yet: the table store lives in memory.
	cleanup := func() {}

	return router, cleanup, nil
}
