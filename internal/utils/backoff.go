package utils

import (
	"context"
	"time"
)

// Backoff retries fn with exponential spacing. Used only at bootstrap (store
// dial); the provider chain never retries.
type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries}
}

func (b Backoff) Do(ctx context.Context, fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		select {
		case <-time.After(time.Duration(1<<i) * b.base):
		case <-ctx.Done():
			return err
		}
	}
	return err
}
