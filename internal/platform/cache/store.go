package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store memoizes values by key for the lifetime of one run. Concurrent loads
// of the same key share one call.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	flight  singleflight.Group
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{entries: make(map[string]V)}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	return value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or stores what loader returns. Loader
// errors are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	out, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return out.(V), nil
}
