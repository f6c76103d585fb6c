package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig describes how transient failures are retried.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the first attempt
	MaxRetries int
	// InitialInterval is the wait before the first retry
	InitialInterval time.Duration
	// MaxInterval caps the wait between retries
	MaxInterval time.Duration
	// Multiplier grows the interval after every retry
	Multiplier float64
	// RetryOnStatus decides whether a response status is transient. Defaults to 429 and 5xx.
	RetryOnStatus func(status int) bool
}

// NewBackoffConfig creates an exponential backoff policy with multiplier 2.
func NewBackoffConfig(maxRetries int, initialInterval, maxInterval time.Duration) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      maxRetries,
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		Multiplier:      2,
	}
}

// Delay returns the wait before the given retry (1-based).
func (b *BackoffConfig) Delay(retry int) time.Duration {
	if retry < 1 {
		retry = 1
	}
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := float64(b.InitialInterval) * math.Pow(multiplier, float64(retry-1))
	if b.MaxInterval > 0 && delay > float64(b.MaxInterval) {
		delay = float64(b.MaxInterval)
	}
	return time.Duration(delay)
}

func (b *BackoffConfig) shouldRetry(ctx context.Context, status int, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}
	// No response at all: transport failure
	if status == 0 {
		return true
	}
	if b.RetryOnStatus != nil {
		return b.RetryOnStatus(status)
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
