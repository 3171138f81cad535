package resilience

import "time"

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          false,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	return cfg
}

// RetryPolicy bounds attempts against an upstream. Attempts after the first
// wait attempt*Backoff.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
}

func NormalizeRetryPolicy(p RetryPolicy) RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.Backoff <= 0 {
		p.Backoff = time.Second
	}
	return p
}
