package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/legisignal/internal/config"
	"github.com/fyrsmithlabs/legisignal/internal/features"
	"github.com/fyrsmithlabs/legisignal/internal/heatmap"
	"github.com/fyrsmithlabs/legisignal/internal/httpapi"
	"github.com/fyrsmithlabs/legisignal/internal/logging"
	"github.com/fyrsmithlabs/legisignal/internal/scoring"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine over HTTP",
	Long: `Serve starts the HTTP shell with scoring and heat-map endpoints.

Endpoints:
  POST /v1/score             score one signal or a batch
  POST /v1/score/importance  importance dimension with factor breakdown
  POST /v1/heatmap           build a priority heat map
  GET  /healthz              health check
  GET  /metrics              Prometheus metrics`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Fields: map[string]string{"service": "legisignal", "version": version},
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best effort on shutdown

	scorer, err := scoring.NewScorer(cfg.Scoring, features.NewExtractor(cfg.Features))
	if err != nil {
		return err
	}
	generator := heatmap.NewGenerator(cfg.Heatmap)

	srv, err := httpapi.NewServer(scorer, generator, logger, &httpapi.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)
	if err := srv.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("server shutdown complete")
	return nil
}
