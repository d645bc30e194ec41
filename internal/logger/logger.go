// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/edukit/teachers-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When no license key is configured the service still exists but holds a
// nil application; every consumer checks GetApplication() for nil and
// degrades to plain logging.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes New Relic from config.
//
// With an empty license key the agent is never started and the returned
// service is an inert wrapper.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability
	if obs == nil || obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
	}
	if obs.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic: %w", err)
	}

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes pending agent data. Safe to call when disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s != nil && s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application's main zerolog logger from observability
// config.
//
// Format "console" produces human-friendly output for local work; the
// default is JSON. When the New Relic agent is active and log forwarding
// is enabled, the writer is wrapped so log lines carry linking metadata
// and get forwarded by the agent.
func New(cfg *config.Config, service *LoggerService) zerolog.Logger {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := service.GetApplication(); app != nil && obs.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(out, app)
		out = &w
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()
}

// WithTraceContext returns a child logger annotated with the New Relic
// trace and span ids of the given transaction, so log lines can be
// correlated with distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()
	builder := l.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
