package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/weekly-pot/internal/config"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
)

func TestInitUptrace_DisabledWithoutDSN(t *testing.T) {
	cfg := config.Config{AppEnv: config.EnvDev}

	shutdown, err := InitUptrace(cfg, "dev", logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStartCommandSpan_NamesSpanAfterCommand(t *testing.T) {
	_, span := StartCommandSpan(context.Background(), "list-payouts")
	defer span.End()

	if span == nil {
		t.Fatalf("expected span")
	}
}
