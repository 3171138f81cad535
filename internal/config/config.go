package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/riskibarqy/weekly-pot/internal/platform/resilience"
)

const (
	DefaultPath           = "config.yaml"
	DefaultCurrencySymbol = "$"
)

// ErrInvalidConfig marks every configuration failure so the CLI can tell
// them apart from runtime failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config stores runtime configuration for one CLI run.
type Config struct {
	Path                 string
	AppEnv               string
	LeagueID             int64
	SeasonID             int
	Payout               float64
	Participants         []string
	ValidateParticipants bool
	CurrencySymbol       string
	ESPN                 ESPNConfig
	UptraceDSN           string
}

type ESPNConfig struct {
	BaseURL        string
	EspnS2         string
	SWID           string
	Timeout        time.Duration
	MaxRetries     int
	CircuitBreaker resilience.CircuitBreakerConfig
}

// ResolvePath picks the config file: explicit flag, then WEEKLYPOT_CONFIG,
// then config.yaml in the working directory.
func ResolvePath(flagValue string) string {
	if path := strings.TrimSpace(flagValue); path != "" {
		return path
	}
	return strings.TrimSpace(getEnv("WEEKLYPOT_CONFIG", DefaultPath))
}

func Load(path string) (Config, error) {
	cfg, err := load(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func load(path string) (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}

	espnMaxRetries, err := getEnvAsInt("ESPN_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_RETRIES: %w", err)
	}
	if espnMaxRetries < 0 {
		return Config{}, fmt.Errorf("ESPN_MAX_RETRIES must be >= 0")
	}

	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}

	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be > 0")
	}

	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if espnCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	currency := file.WeeklyPot.CurrencySymbol
	if currency == "" {
		currency = DefaultCurrencySymbol
	}

	return Config{
		Path:                 path,
		AppEnv:               appEnv,
		LeagueID:             file.LeagueID,
		SeasonID:             file.SeasonID,
		Payout:               *file.WeeklyPot.Payout,
		Participants:         file.WeeklyPot.Participants,
		ValidateParticipants: file.WeeklyPot.ValidateParticipants,
		CurrencySymbol:       currency,
		ESPN: ESPNConfig{
			BaseURL:    strings.TrimSpace(getEnv("ESPN_BASE_URL", "")),
			EspnS2:     strings.TrimSpace(getEnv("ESPN_S2", "")),
			SWID:       strings.TrimSpace(getEnv("SWID", "")),
			Timeout:    espnTimeout,
			MaxRetries: espnMaxRetries,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          espnCircuitEnabled,
				FailureThreshold: espnCircuitFailureCount,
				OpenTimeout:      espnCircuitOpenTimeout,
			},
		},
		UptraceDSN: strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
	}, nil
}

// LogOptions reads logger settings on their own so logging works before the
// config file is loaded.
func LogOptions() logging.Options {
	return logging.Options{
		Level:  logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		Format: strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", logging.FormatConsole))),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
