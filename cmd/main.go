package main

//
//  @title           twrpulse API
//  @version         1.0
//  @description     Brokerage statement annualized-return service.
//  @termsOfService  https://github.com/mkowalik/twrpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/mkowalik/twrpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        returns
//  @tag.description Endpoints for computing per-ticker annualized returns
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkowalik/twrpulse/config"
	_ "github.com/mkowalik/twrpulse/docs" // swagger docs
	"github.com/mkowalik/twrpulse/internal/app"
	"github.com/mkowalik/twrpulse/internal/logger"
	"github.com/mkowalik/twrpulse/internal/quote"
	"github.com/mkowalik/twrpulse/internal/render"
	"github.com/mkowalik/twrpulse/internal/service"
	"github.com/mkowalik/twrpulse/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runReport executes the pipeline once and dumps the summary and working
// sheets from the table store to stdout as CSV.
func runReport(ctx context.Context, path, section, asOf string) error {
	clock, err := app.BuildClock(asOf)
	if err != nil {
		return err
	}

	cfg := config.AppConfig
	prices := quote.NewHTTPSource(cfg.Quote.BaseURL, cfg.Quote.Timeout, cfg.Quote.MaxRetries)
	store := storage.NewMemoryStore()
	svc := service.NewReportService(path, clock, prices, store)

	res, err := svc.Run(ctx, section)
	if err != nil {
		return err
	}

	for _, s := range res.Summaries {
		logger.L().Info().Str("ticker", s.Ticker).Str("annualized_return", render.Percent(s.Aggregate)).Msg("ticker aggregate")
	}

	w := csv.NewWriter(os.Stdout)
	for _, sheet := range []string{service.SummarySheet, service.WorkingSheet} {
		rows, err := store.Rows(sheet)
		if err != nil {
			return err
		}
		if err := w.WriteAll(rows); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// main is the entry point of the twrpulse application.
//
// Modes (selected via --mode flag):
//   - report: Runs the computation once over the configured statement and prints the result.
//   - api:    Starts the REST API exposing the computation.
//
// Flags:
//   - --mode:    Execution mode ("report" or "api"). Default: "report".
//   - --file:    Statement CSV path. Defaults to value from config (STATEMENT_PATH).
//   - --section: Section label to locate. Defaults to value from config (SECTION_LABEL).
//   - --as-of:   Fixed as-of date (YYYY-MM-DD). Defaults to value from config (AS_OF).
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "report", "Mode: report or api")
	file := flag.String("file", config.AppConfig.Statement.Path, "Statement CSV path")
	section := flag.String("section", config.AppConfig.Statement.SectionLabel, "Section label to locate")
	asOf := flag.String("as-of", config.AppConfig.Statement.AsOf, "Fixed as-of date (YYYY-MM-DD), empty for today")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "report":
		logger.L().Info().Str("file", *file).Str("section", *section).Msg("running report")
		if err := runReport(ctx, *file, *section, *asOf); err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}
		logger.L().Info().Msg("report completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
