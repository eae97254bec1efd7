package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/memory"
	"fintrack/internal/records"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func main() {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(cfg.LogLevel, applog.ComponentApp)
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var (
		slots   records.Slots
		closers []io.Closer
	)
	switch cfg.DataBackend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open sqlite backend", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		slots = store
		closers = append(closers, store)
		logger.Info("Initialized sqlite backend", "backend", cfg.DataBackend, "path", cfg.SQLiteDBPath)
	default:
		slots = memory.New()
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	}

	dash := services.NewDashboard(slots, closers...)
	defer func() {
		if err := dash.Close(); err != nil {
			logger.Error("Close error", "error", err)
		}
	}()

	// The three stores are independent; load their snapshots in parallel.
	g, initCtx := errgroup.WithContext(context.Background())
	g.Go(func() error { return dash.Transactions().Init(initCtx) })
	g.Go(func() error { return dash.Assets().Init(initCtx) })
	g.Go(func() error { return dash.Goals().Init(initCtx) })
	if err := g.Wait(); err != nil {
		logger.Error("Failed to initialize record stores", "error", err)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, dash)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting fintrack server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
