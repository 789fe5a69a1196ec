package storage

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryBlob wraps a Blob and retries failed writes with capped exponential
// backoff. Reads are not retried: a failed read already degrades to an
// empty ledger at load time.
type RetryBlob struct {
	inner           Blob
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	log             zerolog.Logger
}

// WithRetry decorates inner with write retries.
func WithRetry(inner Blob, log zerolog.Logger) *RetryBlob {
	return &RetryBlob{
		inner:           inner,
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		log:             log,
	}
}

// Read passes through to the wrapped Blob.
func (r *RetryBlob) Read() ([]byte, error) {
	return r.inner.Read()
}

// Write retries the wrapped Write up to maxRetries times before giving up
// and returning the last error.
func (r *RetryBlob) Write(data []byte) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval

	attempts := 0
	return backoff.Retry(func() error {
		err := r.inner.Write(data)
		if err == nil {
			return nil
		}
		attempts++
		if attempts > r.maxRetries {
			return backoff.Permanent(err)
		}
		r.log.Warn().Err(err).Int("retry", attempts).Msg("ledger write failed, retrying")
		return err
	}, b)
}

// Close passes through to the wrapped Blob.
func (r *RetryBlob) Close() error {
	return r.inner.Close()
}
