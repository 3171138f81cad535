package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/weekly-pot/internal/config"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "weeklypot"

var commandTracer = otel.Tracer("weekly-pot/internal/interfaces/cli")

// InitUptrace configures global OpenTelemetry providers for Uptrace when a
// DSN is configured. The returned shutdown flushes pending spans and logs.
func InitUptrace(cfg config.Config, version string, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logging.SetMirror(nil)
		logger.Debug("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(ServiceName),
		uptrace.WithServiceVersion(version),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(true),
	)
	logging.SetMirror(newUptraceLogMirror(version, logging.LevelInfo))

	logger.Debug("uptrace enabled",
		"service_name", ServiceName,
		"service_version", version,
		"environment", cfg.AppEnv,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

// StartCommandSpan opens the root span of one CLI run.
func StartCommandSpan(ctx context.Context, command string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return commandTracer.Start(ctx, ServiceName+"."+command, trace.WithAttributes(attrs...))
}
