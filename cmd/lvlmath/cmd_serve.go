// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlmath/config"
	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/server"
	"github.com/katalvlaran/lvlmath/solver"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// serve runs the API until SIGINT/SIGTERM, then shuts down gracefully.
func (a *app) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := history.Open(ctx, a.cfg.Database.Path, history.WithLogger(a.log.Named("history")))
	if err != nil {
		return err
	}
	defer st.Close()

	var sv server.Solver
	s, err := newSolver(ctx, a.cfg, a.log)
	switch {
	case errors.Is(err, solver.ErrNotConfigured):
		a.log.Warn("no AI key configured, /api/solve is disabled", zap.String("provider", a.cfg.AI.Provider))
	case err != nil:
		return err
	default:
		sv = s
	}

	api := server.New(sv, st,
		server.WithLogger(a.log.Named("server")),
		server.WithMaxUpload(int64(a.cfg.Server.MaxUploadMB)<<20))
	hs := api.HTTPServer(a.cfg.Server.Addr, a.cfg.ReadTimeout())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("listening", zap.String("addr", hs.Addr), zap.String("db", st.Path()))
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout())
		defer cancel()
		a.log.Info("shutting down")

		return hs.Shutdown(sctx)
	})

	return g.Wait()
}

// newSolver builds the Solver for the configured provider. A missing API
// key is reported as solver.ErrNotConfigured.
func newSolver(ctx context.Context, cfg *config.Config, log *zap.Logger) (*solver.Solver, error) {
	var c solver.Completer
	switch cfg.AI.Provider {
	case config.ProviderGenAI:
		g, err := solver.NewGenAI(ctx, solver.GenAIConfig{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Logger:  log.Named("genai"),
		})
		if err != nil {
			return nil, err
		}
		c = g
	default:
		if cfg.AI.APIKey == "" {
			return nil, solver.ErrNotConfigured
		}
		c = solver.NewGateway(solver.GatewayConfig{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AITimeout(),
			Logger:  log.Named("gateway"),
		})
	}

	return solver.New(c, log.Named("solver")), nil
}
