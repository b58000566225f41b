package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// envPrefix scopes environment overrides to this application.
	envPrefix = "LEGISIGNAL_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// configSections are the top-level keys an environment variable can target.
var configSections = []string{"scoring", "features", "heatmap", "server", "logging"}

// Load reads configuration from the YAML file at configPath (if it exists),
// then applies environment overrides, then validates.
//
// The default path is ~/.config/legisignal/config.yaml. Environment
// variables are prefixed and map section-first:
//
//	LEGISIGNAL_SCORING_THRESHOLD_HIGH -> scoring.threshold_high
//	LEGISIGNAL_SERVER_PORT            -> server.port
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "legisignal", "config.yaml")
	}

	if info, err := os.Stat(configPath); err == nil {
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file %s exceeds %d bytes", configPath, maxConfigFileSize)
		}
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnvKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnvKey maps LEGISIGNAL_SECTION_FIELD_NAME to section.field_name.
// Only the first underscore after a known section becomes a separator; the
// rest stay part of the field name (threshold_high, rate_limit, ...).
func transformEnvKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range configSections {
		if strings.HasPrefix(s, section+"_") {
			return section + "." + strings.TrimPrefix(s, section+"_")
		}
	}
	return s
}
