// Package config provides configuration loading for legisignal.
//
// Precedence, highest to lowest: environment variables, YAML config file,
// hardcoded defaults. All scoring tables and thresholds live here and are
// injected into the engine at construction; nothing is a mutable global.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/legisignal/internal/features"
	"github.com/fyrsmithlabs/legisignal/internal/heatmap"
	"github.com/fyrsmithlabs/legisignal/internal/scoring"
)

// Config is the full application configuration.
type Config struct {
	Scoring  scoring.Config  `koanf:"scoring"`
	Features features.Config `koanf:"features"`
	Heatmap  heatmap.Config  `koanf:"heatmap"`
	Server   ServerConfig    `koanf:"server"`
	Logging  LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds the HTTP shell settings.
type ServerConfig struct {
	Host      string  `koanf:"host"`
	Port      int     `koanf:"port"`
	RateLimit float64 `koanf:"rate_limit"` // requests per second per client
	RateBurst int     `koanf:"rate_burst"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or console
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Scoring: scoring.DefaultConfig(),
		Heatmap: heatmap.Config{},
		Server: ServerConfig{
			Host:      "localhost",
			Port:      8750,
			RateLimit: 20,
			RateBurst: 40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks invariants that would otherwise fail silently at runtime,
// most importantly the risk-threshold ordering.
func (c *Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("config: rate limit must be positive")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	for src, score := range c.Features.SourceReliability {
		if score < 0 || score > 1 {
			return fmt.Errorf("config: reliability for source %q must be in [0,1], got %v", src, score)
		}
	}
	return nil
}
