package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Config holds the backoff policy applied around a model call.
type Config struct {
	// MaxAttempts is the total number of tries, including the first one.
	MaxAttempts int

	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64

	// Jitter scales each delay by a random factor in [0, 1), so concurrent
	// processes hitting the same rate limit do not retry in lockstep.
	Jitter bool
}

// DefaultConfig mirrors the upstream rate-limit guidance: 1s base doubling
// up to a 60s cap, fully jittered.
func DefaultConfig(maxAttempts int) Config {
	return Config{
		MaxAttempts: maxAttempts,
		BaseDelay:   time.Second,
		MaxDelay:    60 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
	}
}

// Func is one attempt at the wrapped call.
type Func func(ctx context.Context) (string, error)

// ExhaustedError reports that every attempt failed.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// delay computes the backoff before attempt n (0-based retry count).
func (c Config) delay(n int) time.Duration {
	d := time.Duration(float64(c.BaseDelay) * math.Pow(c.Multiplier, float64(n)))
	if d > c.MaxDelay || d <= 0 {
		d = c.MaxDelay
	}
	if c.Jitter {
		d = time.Duration(rand.Float64() * float64(d))
	}
	return d
}

// Do runs fn until it succeeds or the attempt budget is spent. Every failure
// is treated as transient; the backoff sleep respects ctx cancellation.
func Do(ctx context.Context, cfg Config, log *zap.Logger, fn Func) (string, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			d := cfg.delay(attempt - 1)
			if log != nil {
				log.Warn("retrying model call",
					zap.Int("attempt", attempt+1),
					zap.Int("max_attempts", cfg.MaxAttempts),
					zap.Duration("backoff", d),
					zap.Error(lastErr))
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(d):
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return "", &ExhaustedError{Attempts: cfg.MaxAttempts, Last: lastErr}
}
