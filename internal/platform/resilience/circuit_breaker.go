package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker stops calls to an upstream after a run of consecutive
// failures. After the open timeout a single probe call is let through; its
// outcome closes or re-opens the circuit.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration

	state               CircuitState
	consecutiveFailures int
	openedAt            time.Time
	probeInFlight       bool
	now                 func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	return &CircuitBreaker{
		failureThreshold: cfg.FailureThreshold,
		openTimeout:      cfg.OpenTimeout,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateOpen:
		if b.now().Sub(b.openedAt) < b.openTimeout {
			return ErrCircuitOpen
		}
		b.state = CircuitStateHalfOpen
		b.probeInFlight = true
		return nil
	case CircuitStateHalfOpen:
		if b.probeInFlight {
			return ErrCircuitOpen
		}
		b.probeInFlight = true
		return nil
	default:
		return nil
	}
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = CircuitStateClosed
	b.consecutiveFailures = 0
	b.probeInFlight = false
	b.openedAt = time.Time{}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateHalfOpen, CircuitStateOpen:
		b.trip()
	default:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.failureThreshold {
			b.trip()
		}
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

// ProbeAfter returns how long an open circuit stays closed to calls before
// the next probe is let through. It is zero in any other state.
func (b *CircuitBreaker) ProbeAfter() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != CircuitStateOpen {
		return 0
	}
	if wait := b.openTimeout - b.now().Sub(b.openedAt); wait > 0 {
		return wait
	}
	return 0
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.probeInFlight = false
}
