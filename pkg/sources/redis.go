package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/vine/pkg/binding"
)

// RedisSource reads a component value from a Redis key on every session
// start. The model keeps writing the key; the UI stays current without the
// binding layer owning any persistence.
type RedisSource struct {
	client   *backend.Client
	key      string
	timeout  time.Duration
	asJSON   bool
	fallback any
	hasFall  bool
}

// RedisOption configures a RedisSource.
type RedisOption func(*RedisSource)

// WithTimeout bounds each read. Default is 2s.
func WithTimeout(d time.Duration) RedisOption {
	return func(s *RedisSource) {
		s.timeout = d
	}
}

// WithJSON decodes the stored string as JSON before pushing it.
func WithJSON() RedisOption {
	return func(s *RedisSource) {
		s.asJSON = true
	}
}

// WithFallback supplies a value for a missing key instead of an error.
func WithFallback(v any) RedisOption {
	return func(s *RedisSource) {
		s.fallback = v
		s.hasFall = true
	}
}

// NewRedisSource creates a source with its own Redis client.
func NewRedisSource(address, password string, db int, key string, opts ...RedisOption) *RedisSource {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisSourceFromClient(client, key, opts...)
}

// NewRedisSourceFromClient creates a source from an existing client.
func NewRedisSourceFromClient(client *backend.Client, key string, opts ...RedisOption) *RedisSource {
	s := &RedisSource{
		client:  client,
		key:     key,
		timeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read fetches the current value. It satisfies binding.SourceFunc, so it
// can be registered directly: comp.Source(src.Read).
func (s *RedisSource) Read() (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, backend.Nil) {
		if s.hasFall {
			return s.fallback, nil
		}
		return nil, fmt.Errorf("key %q not found", s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", s.key, err)
	}

	if s.asJSON {
		var out any
		if err := json.Unmarshal([]byte(val), &out); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", s.key, err)
		}
		return out, nil
	}
	return val, nil
}

// Fn returns the source as a binding.SourceFunc.
func (s *RedisSource) Fn() binding.SourceFunc {
	return s.Read
}
