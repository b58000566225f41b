package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults are valid", NewDefaultConfig(), false},
		{"console format", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("builds with defaults filled", func(t *testing.T) {
		logger, err := New(Config{})
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := New(Config{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("carries constant fields", func(t *testing.T) {
		logger, err := New(Config{Fields: map[string]string{"service": "legisignal"}})
		require.NoError(t, err)
		require.NotNil(t, logger)
	})
}

func TestTestLogger(t *testing.T) {
	tl := NewTestLogger()
	tl.Info("scored signal")
	tl.Warn("threshold crossed")

	assert.Len(t, tl.All(), 2)
	tl.AssertLogged(t, zapcore.InfoLevel, "scored")
	tl.AssertLogged(t, zapcore.WarnLevel, "threshold")
}
