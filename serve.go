package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "investment-calculator/http"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *cli) serve(ctx context.Context) error {
	a, err := newApp(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer a.closeLogged(c.logger)

	rateLimiter := httpLayer.NewRateLimiter(c.cfg)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         c.cfg.HTTPAddr,
		Handler:      httpLayer.NewRouter(a.service, rateLimiter, c.logger),
		ReadTimeout:  c.cfg.ReadTimeout,
		WriteTimeout: c.cfg.WriteTimeout,
		IdleTimeout:  c.cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		c.logger.Info("API listening", zap.String("addr", c.cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		c.logger.Error("starting server", zap.Error(err))
		return err
	case <-quit:
		c.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		c.logger.Error("during server shutdown", zap.Error(err))
		return err
	}

	c.logger.Info("server exited")
	return nil
}
