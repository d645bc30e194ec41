package logger

import (
	"testing"
	"time"

	"github.com/edukit/teachers-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_NoLicenseIsInert(t *testing.T) {
	cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}

	service, err := NewLoggerService(cfg)
	require.NoError(t, err)
	require.NotNil(t, service)
	assert.Nil(t, service.GetApplication())

	// Safe to call when the agent never started.
	service.Shutdown(time.Millisecond)
}

func TestNewLoggerService_BadLicenseFails(t *testing.T) {
	cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}
	cfg.Observability.NewRelic.LicenseKey = "not-a-valid-license-key"
	cfg.Observability.NewRelic.DistributedTracingEnabled = true
	cfg.Observability.NewRelic.AppLogForwardingEnabled = true

	// The agent rejects malformed license keys at construction, which
	// drives every config option through newrelic.NewApplication.
	_, err := NewLoggerService(cfg)
	assert.Error(t, err)
}

func TestNew_LevelAndFields(t *testing.T) {
	cfg := &config.Config{Observability: config.DefaultObservabilityConfig()}
	cfg.Observability.Logging.Level = "warn"

	log := New(cfg, &LoggerService{})
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	log := zerolog.Nop()
	assert.Equal(t, log, WithTraceContext(log, nil))
}
