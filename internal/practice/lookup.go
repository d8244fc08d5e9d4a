package practice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/langdrill/internal/questiongen"
)

// retryingLookup retries failed lookups with an exponential backoff.
// Errors caused by the context ending are returned at once.
func retryingLookup(lookup questiongen.LookupWordFunc, maxRetries uint, initialBackoff time.Duration) questiongen.LookupWordFunc {
	return func(ctx context.Context, text string) (*questiongen.Word, error) {
		var found *questiongen.Word
		err := retry.Do(
			func() error {
				w, err := lookup(ctx, text)
				if err != nil {
					return err
				}
				found = w
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(maxRetries+1),
			retry.Delay(initialBackoff),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
			retry.RetryIf(isTransient),
			retry.OnRetry(func(n uint, err error) {
				slog.Debug("retrying word lookup", "text", text, "attempt", n+1, "error", err)
			}),
		)
		if err != nil {
			return nil, err
		}
		return found, nil
	}
}

func isTransient(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
