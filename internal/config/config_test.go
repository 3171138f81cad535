package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
)

const validYAML = `league_id: 123456
season_id: 2025
weekly_pot:
  payout: 10
  participants:
    - "  John Smith "
    - jane doe
    - ""
    - JOHN SMITH
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_ValidFileWithDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ESPN_TIMEOUT", "")
	t.Setenv("ESPN_MAX_RETRIES", "")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.LeagueID != 123456 || cfg.SeasonID != 2025 || cfg.Payout != 10 {
		t.Fatalf("unexpected core values: %+v", cfg)
	}
	if got := strings.Join(cfg.Participants, "|"); got != "john smith|jane doe" {
		t.Fatalf("unexpected participants: %q", got)
	}
	if cfg.CurrencySymbol != "$" {
		t.Fatalf("expected default currency symbol, got %q", cfg.CurrencySymbol)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %q", cfg.AppEnv)
	}
	if cfg.ESPN.Timeout != 20*time.Second || cfg.ESPN.MaxRetries != 1 {
		t.Fatalf("unexpected ESPN defaults: %+v", cfg.ESPN)
	}
	if cfg.ESPN.CircuitBreaker.Enabled || cfg.ESPN.CircuitBreaker.FailureThreshold != 3 {
		t.Fatalf("unexpected breaker defaults: %+v", cfg.ESPN.CircuitBreaker)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ESPN_S2", " s2value ")
	t.Setenv("SWID", "{ABC}")
	t.Setenv("ESPN_TIMEOUT", "5s")
	t.Setenv("ESPN_MAX_RETRIES", "0")
	t.Setenv("ESPN_CIRCUIT_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "https://token@api.uptrace.dev/1")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ESPN.EspnS2 != "s2value" || cfg.ESPN.SWID != "{ABC}" {
		t.Fatalf("unexpected credentials: %+v", cfg.ESPN)
	}
	if cfg.ESPN.Timeout != 5*time.Second || cfg.ESPN.MaxRetries != 0 || !cfg.ESPN.CircuitBreaker.Enabled {
		t.Fatalf("unexpected ESPN overrides: %+v", cfg.ESPN)
	}
	if cfg.UptraceDSN == "" {
		t.Fatalf("expected uptrace dsn")
	}
}

func TestLoad_Failures(t *testing.T) {
	cases := map[string]string{
		"missing league":     "season_id: 2025\nweekly_pot:\n  payout: 10\n  participants: [a]\n",
		"old season":         "league_id: 1\nseason_id: 2010\nweekly_pot:\n  payout: 10\n  participants: [a]\n",
		"missing payout":     "league_id: 1\nseason_id: 2025\nweekly_pot:\n  participants: [a]\n",
		"negative payout":    "league_id: 1\nseason_id: 2025\nweekly_pot:\n  payout: -1\n  participants: [a]\n",
		"blank participants": "league_id: 1\nseason_id: 2025\nweekly_pot:\n  payout: 10\n  participants: [\" \"]\n",
		"malformed yaml":     "league_id: [",
		"missing weekly pot": "league_id: 1\nseason_id: 2025\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoad_ZeroPayoutIsAllowed(t *testing.T) {
	cfg, err := Load(writeConfig(t, "league_id: 1\nseason_id: 2025\nweekly_pot:\n  payout: 0\n  participants: [a]\n  currency_symbol: \"€\"\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Payout != 0 || cfg.CurrencySymbol != "€" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingFileMentionsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to mention %s, got %v", path, err)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(writeConfig(t, validYAML)); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RejectsBadEnvValues(t *testing.T) {
	t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(writeConfig(t, validYAML)); err == nil {
		t.Fatalf("expected error for ESPN_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("WEEKLYPOT_CONFIG", "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Fatalf("expected default path, got %q", got)
	}

	t.Setenv("WEEKLYPOT_CONFIG", "/etc/weeklypot.yaml")
	if got := ResolvePath(""); got != "/etc/weeklypot.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}
	if got := ResolvePath(" ./local.yaml "); got != "./local.yaml" {
		t.Fatalf("expected flag path to win, got %q", got)
	}
}

func TestLogOptions(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_LOG_FORMAT", "JSON")

	opts := LogOptions()
	if opts.Level != logging.LevelWarn || opts.Format != logging.FormatJSON {
		t.Fatalf("unexpected log options: %+v", opts)
	}
}
