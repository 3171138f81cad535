package observability

import (
	"errors"
	"testing"

	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"week", 3, "error", errors.New("espn status=503"), "dangling"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "week" || attrs[0].Value.AsInt64() != 3 {
		t.Fatalf("unexpected week attribute")
	}
	if attrs[1].Key != "error" || attrs[1].Value.AsString() != "espn status=503" {
		t.Fatalf("unexpected error attribute")
	}
	if attrs[2].Key != "dangling" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestToOTelLogValue_StringSlice(t *testing.T) {
	v := toOTelLogValue([]string{"john smith", "jane doe"})
	if v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected 2-item slice value, got %s", v.Kind())
	}
}

func TestToOTelSeverity(t *testing.T) {
	if toOTelSeverity(logging.LevelWarn) != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity")
	}
	if toOTelSeverity(logging.LevelError) != otellog.SeverityError {
		t.Fatalf("unexpected error severity")
	}
}
