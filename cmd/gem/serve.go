package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/gem/internal/api"
	"github.com/AlexZinkM/gem/internal/config"
	"github.com/AlexZinkM/gem/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the card editor API on PORT",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, offline)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "skip block height and price lookups")
	return cmd
}

func runServer(ctx context.Context, offline bool) error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := newSession(cfg, logger, offline)
	if err != nil {
		return err
	}
	// A failed first generation leaves an empty card; the operator can retry.
	if err := s.Boot(ctx); err != nil {
		logger.Warn("initial card generation failed", zap.Error(err))
	}

	cardHandler, err := handler.NewCardHandler(s, logger)
	if err != nil {
		return err
	}
	router, err := api.SetupRouter(cardHandler)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{Addr: ":" + config.GetPort(), Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
