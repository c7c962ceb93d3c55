package locknock

import (
	"context"
	"time"
)

// windowResult is the outcome of one completed sampling window.
type windowResult struct {
	timeWaiting time.Duration // cumulative lock-wait time across probes
	timeElapsed time.Duration // measured wall-clock duration of the window
}

// launchWindow starts one sampling window in its own goroutine.
// The result channel is buffered so an abandoned window can always
// complete its send and exit.
func (m *monitor) launchWindow(ctx context.Context) <-chan windowResult {
	resCh := make(chan windowResult, 1)
	go func() {
		defer func() {
			// A panicking probe must not take the process down. The
			// empty result folds as a no-op.
			if r := recover(); r != nil {
				m.logger.Errorf(ctx, "sampling window panicked: %v", r)
				resCh <- windowResult{}
			}
		}()
		resCh <- m.sampleWindow(ctx)
	}()
	return resCh
}

// sampleWindow probes the monitored lock back to back, sleeping
// pollingInterval between probes, until samplingInterval has elapsed.
// The reported elapsed time is the measured one, which may exceed
// samplingInterval by scheduling slack.
func (m *monitor) sampleWindow(ctx context.Context) windowResult {
	start := time.Now()
	var waiting time.Duration
	for time.Since(start) < m.samplingInterval {
		waiting += m.prober.Probe()
		if !sleepOrDone(ctx, m.pollingInterval) {
			break
		}
	}
	return windowResult{
		timeWaiting: waiting,
		timeElapsed: time.Since(start),
	}
}

func sleepOrDone(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
