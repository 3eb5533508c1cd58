package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	adapthttp "bptrack/internal/adapter/http"
	"bptrack/internal/adapter/memory"
	"bptrack/internal/adapter/postgres"
	"bptrack/internal/app"
	"bptrack/internal/config"
	"bptrack/internal/domain"
	"bptrack/internal/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web UI",
		Long: `Serves the JSON API under /api and the static web UI from WEB_DIR.
Readings are stored in PostgreSQL when DATABASE_URL is set, otherwise in memory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ADDR)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	repo, closeRepo, err := openRepository(cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	readingSvc := app.NewReadingService(repo, log)
	assessmentSvc := app.NewAssessmentService(repo, log, cfg.TrendMinPoints)

	h := adapthttp.New(readingSvc, assessmentSvc, adapthttp.Config{
		WebDir:       cfg.WebDir,
		CORSOrigins:  cfg.CORSOrigins,
		HistoryLimit: cfg.HistoryLimit,
		Log:          log,
	}).Handler()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepository(cfg *config.Config, log zerolog.Logger) (domain.ReadingRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return memory.New(), func() {}, nil
	}
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}
