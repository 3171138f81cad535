package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const uptraceLogInstrumentation = "weekly-pot/internal/platform/logging"

// newUptraceLogMirror emits log entries at or above minLevel as OpenTelemetry
// log records so they show up next to the run's spans.
func newUptraceLogMirror(serviceVersion string, minLevel logging.Level) logging.MirrorFunc {
	otelLogger := otelglobal.Logger(
		uptraceLogInstrumentation,
		otellog.WithInstrumentationVersion(serviceVersion),
	)

	return func(ctx context.Context, level logging.Level, msg string, args ...any) {
		if level < minLevel {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}

		severity := toOTelSeverity(level)
		if !otelLogger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
			return
		}

		now := time.Now().UTC()
		record := otellog.Record{}
		record.SetTimestamp(now)
		record.SetObservedTimestamp(now)
		record.SetSeverity(severity)
		record.SetSeverityText(strings.ToUpper(level.String()))
		record.SetEventName(msg)
		record.SetBody(otellog.StringValue(msg))
		if attributes := buildOTelLogAttributes(args); len(attributes) > 0 {
			record.AddAttributes(attributes...)
		}

		otelLogger.Emit(ctx, record)
	}
}

func buildOTelLogAttributes(args []any) []otellog.KeyValue {
	if len(args) == 0 {
		return nil
	}

	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprintf("arg_%d", i/2)
		if k, ok := args[i].(string); ok && strings.TrimSpace(k) != "" {
			key = k
		}
		if i+1 >= len(args) {
			attrs = append(attrs, otellog.Empty(key))
			continue
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: toOTelLogValue(args[i+1])})
	}

	return attrs
}

func toOTelSeverity(level zapcore.Level) otellog.Severity {
	switch {
	case level <= zapcore.DebugLevel:
		return otellog.SeverityDebug
	case level == zapcore.InfoLevel:
		return otellog.SeverityInfo
	case level == zapcore.WarnLevel:
		return otellog.SeverityWarn
	case level >= zapcore.DPanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityError
	}
}

// toOTelLogValue covers the value types this CLI logs; anything else is
// rendered with fmt.
func toOTelLogValue(value any) otellog.Value {
	switch v := value.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int64:
		return otellog.Int64Value(v)
	case float64:
		return otellog.Float64Value(v)
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case []string:
		items := make([]otellog.Value, 0, len(v))
		for _, item := range v {
			items = append(items, otellog.StringValue(item))
		}
		return otellog.SliceValue(items...)
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	default:
		return otellog.StringValue(fmt.Sprint(v))
	}
}
