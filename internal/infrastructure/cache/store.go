package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a byte-oriented key/value cache with per-key expiry
type Store interface {
	// Get returns the value and true, or false on a miss
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// GetJSON decodes a cached JSON value into dest
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value as JSON and caches it
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data, ttl)
}

// NoopStore never stores anything. It stands in when caching is disabled.
type NoopStore struct{}

// Get implements Store
func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set implements Store
func (NoopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete implements Store
func (NoopStore) Delete(context.Context, ...string) error { return nil }

// Close implements Store
func (NoopStore) Close() error { return nil }

var _ Store = NoopStore{}
