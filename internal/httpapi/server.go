// Package httpapi is the thin HTTP shell around the scoring engine. It
// decodes records, rejects structurally invalid input at the boundary, and
// serializes engine output; all domain logic stays in the engine packages.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/legisignal/internal/heatmap"
	"github.com/fyrsmithlabs/legisignal/internal/scoring"
	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

// Config holds HTTP server configuration.
type Config struct {
	Host      string
	Port      int
	RateLimit float64
	RateBurst int
}

// Server exposes the scoring and heat-map endpoints.
type Server struct {
	echo      *echo.Echo
	scorer    *scoring.Scorer
	generator *heatmap.Generator
	logger    *zap.Logger
	registry  *prometheus.Registry
	metrics   *Metrics
	config    *Config
}

// NewServer creates the HTTP shell. Scorer, generator, and logger are
// required; a nil config falls back to localhost defaults.
func NewServer(scorer *scoring.Scorer, generator *heatmap.Generator, logger *zap.Logger, cfg *Config) (*Server, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer cannot be nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{Host: "localhost", Port: 8750, RateLimit: 20, RateBurst: 40}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	registry := prometheus.NewRegistry()
	s := &Server{
		echo:      e,
		scorer:    scorer,
		generator: generator,
		logger:    logger,
		registry:  registry,
		metrics:   NewMetrics(registry),
		config:    cfg,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	limiter := newClientLimiter(s.config.RateLimit, s.config.RateBurst)

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.echo.Group("/v1", limiter.middleware)
	v1.POST("/score", s.handleScore)
	v1.POST("/score/importance", s.handleScoreImportance)
	v1.POST("/heatmap", s.handleHeatmap)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "legisignal",
	})
}

// scoreRequest accepts either a single signal or a batch.
type scoreRequest struct {
	Signal  *signal.Signal  `json:"signal,omitempty"`
	Signals []signal.Signal `json:"signals,omitempty"`
}

type scoreResponse struct {
	Results []scoring.Result `json:"results"`
}

func (s *Server) handleScore(c echo.Context) error {
	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	}
	sigs := req.Signals
	if req.Signal != nil {
		sigs = append(sigs, *req.Signal)
	}
	if len(sigs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no signals supplied")
	}

	start := time.Now()
	results := s.scorer.ScoreAll(sigs)
	elapsed := time.Since(start)

	for _, r := range results {
		s.metrics.SignalsScored.WithLabelValues(string(r.OverallRisk)).Inc()
	}
	s.metrics.ScoreSeconds.Observe(elapsed.Seconds() / float64(len(results)))

	return c.JSON(http.StatusOK, scoreResponse{Results: results})
}

func (s *Server) handleScoreImportance(c echo.Context) error {
	var sig signal.Signal
	if err := c.Bind(&sig); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON signal record")
	}
	return c.JSON(http.StatusOK, s.scorer.ScoreImportance(sig))
}

func (s *Server) handleHeatmap(c echo.Context) error {
	var in heatmap.Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON heat-map input")
	}
	hm := s.generator.Generate(in)
	s.metrics.HeatmapsGenerated.Inc()
	s.metrics.HeatmapIssues.Observe(float64(hm.Total))
	return c.JSON(http.StatusOK, hm)
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
