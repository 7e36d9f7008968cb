package overpass

import (
	"context"
	"time"
)

// retryState - состояние машины повторов: не более двух попыток
type retryState int

const (
	stateFirstAttempt retryState = iota
	stateWait
	stateSecondAttempt
	stateDone
	stateGaveUp
)

func (s retryState) String() string {
	switch s {
	case stateFirstAttempt:
		return "attempt1"
	case stateWait:
		return "wait"
	case stateSecondAttempt:
		return "attempt2"
	case stateDone:
		return "done"
	case stateGaveUp:
		return "gave_up"
	default:
		return "unknown"
	}
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// attemptFunc performs one attempt; attempt is 1 or 2.
type attemptFunc func(ctx context.Context, attempt int) error

// retryPolicy runs Attempt1 → (ok: Done) | (fail: Wait) → Attempt2 → (ok: Done) | (fail: GiveUp).
// Every error is retried the same way; there is no backoff and no jitter.
type retryPolicy struct {
	delay time.Duration
	sleep sleepFunc
}

func newRetryPolicy(delay time.Duration) retryPolicy {
	return retryPolicy{delay: delay, sleep: sleepContext}
}

// run returns the terminal state (stateDone or stateGaveUp) and, on give-up,
// the last error seen.
func (p retryPolicy) run(ctx context.Context, fn attemptFunc) (retryState, error) {
	state := stateFirstAttempt
	var lastErr error

	for {
		switch state {
		case stateFirstAttempt:
			if lastErr = fn(ctx, 1); lastErr == nil {
				state = stateDone
			} else {
				state = stateWait
			}
		case stateWait:
			if err := p.sleep(ctx, p.delay); err != nil {
				lastErr = err
				state = stateGaveUp
			} else {
				state = stateSecondAttempt
			}
		case stateSecondAttempt:
			if lastErr = fn(ctx, 2); lastErr == nil {
				state = stateDone
			} else {
				state = stateGaveUp
			}
		case stateDone:
			return stateDone, nil
		default:
			return stateGaveUp, lastErr
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
