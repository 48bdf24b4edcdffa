package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inkstream/inkstream/internal/ingest"
	"github.com/inkstream/inkstream/internal/observability/log"
	"github.com/inkstream/inkstream/pkg/input"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config; defaults apply when empty")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ingestd:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := ingest.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = ingest.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gate := ingest.NewGate(logger)
	// The sink is where a stroke modeler would take over; ingestd just logs.
	server := ingest.NewServer(cfg, logger, gate, func(session string, ev input.Input) {
		logger.Debug("event accepted",
			zap.String("session", session),
			zap.Stringer("event_type", ev.EventType),
			zap.Float64("time", ev.Time.Value()),
		)
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	stats := gate.Stats()
	logger.Info("shutdown complete",
		zap.Uint64("accepted", stats.Accepted),
		zap.Uint64("rejected", stats.Rejected),
	)
	return nil
}
