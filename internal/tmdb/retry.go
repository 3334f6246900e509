package tmdb

import (
	"context"
	"errors"
	"net/url"
	"time"
)

// RetryPolicy decides whether a failed fetch is attempted again. attempt is
// the number of the retry about to happen, starting at 1.
type RetryPolicy interface {
	Backoff(attempt int, err error) (time.Duration, bool)
}

// NoRetry gives up on the first error.
type NoRetry struct{}

func (NoRetry) Backoff(int, error) (time.Duration, bool) {
	return 0, false
}

// FixedRetry retries transient failures up to Attempts times, waiting Delay
// between tries.
type FixedRetry struct {
	Attempts int
	Delay    time.Duration
}

func (p FixedRetry) Backoff(attempt int, err error) (time.Duration, bool) {
	if attempt > p.Attempts || !IsTransient(err) {
		return 0, false
	}
	return p.Delay, true
}

// IsTransient reports transport failures and 5xx responses. Decoding errors
// and 4xx responses are permanent.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}

	var ue *url.Error
	return errors.As(err, &ue)
}
