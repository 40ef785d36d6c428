package complycube

import (
	"context"
	"time"
)

const DefaultPollInterval = 5 * time.Second

type CheckGetter interface {
	GetCheck(ctx context.Context, checkID string) (CheckResult, error)
}

// IsTerminal reports whether a check status will no longer change.
func IsTerminal(status string) bool {
	return status == CheckStatusComplete || status == CheckStatusFailed
}

// WaitForCheck polls the check until it reaches a terminal status, a fetch fails
// or ctx is done. onPoll, when non-nil, sees every intermediate result.
func WaitForCheck(
	ctx context.Context,
	getter CheckGetter,
	checkID string,
	interval time.Duration,
	onPoll func(CheckResult),
) (CheckResult, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		result, err := getter.GetCheck(ctx, checkID)
		if err != nil {
			return CheckResult{}, err
		}

		if onPoll != nil {
			onPoll(result)
		}

		if IsTerminal(result.Status) {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticker.C:
		}
	}
}
