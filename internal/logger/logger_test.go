package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/humanizer/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("k", "v").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLoggerDefaultsLevelByEnvironment(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	assert.Equal(t, zerolog.DebugLevel, newLogger(cfg, nil, &bytes.Buffer{}).GetLevel())

	cfg.Environment = "production"
	assert.Equal(t, zerolog.InfoLevel, newLogger(cfg, nil, &bytes.Buffer{}).GetLevel())
}

func TestNewLoggerServiceDisabled(t *testing.T) {
	service, err := NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)
	assert.Nil(t, service.GetApplication())

	// Shutdown on a disabled service is a no-op.
	service.Shutdown()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	traced := WithTraceContext(log, nil)
	traced.Info().Msg("x")

	assert.Contains(t, buf.String(), `"message":"x"`)
	assert.NotContains(t, buf.String(), "trace.id")
}
