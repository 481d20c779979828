package ratelimit

import "context"

// Limiter guards login attempts per client key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopLimiter allows everything. Used when redis is disabled.
type NoopLimiter struct{}

func NewNoopLimiter() *NoopLimiter { return &NoopLimiter{} }

func (l *NoopLimiter) Allow(ctx context.Context, key string) (bool, error) { return true, nil }

func (l *NoopLimiter) Reset(ctx context.Context, key string) error { return nil }
