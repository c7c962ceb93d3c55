package locknock

import (
	"context"
	"time"

	"github.com/locknock/locknock-go/internal/ch"
	"github.com/locknock/locknock-go/log"
)

type controlMessage uint8

const (
	controlStop controlMessage = iota
	controlReset
)

// runningTotals accumulates completed window results since start or the
// last reset. Owned exclusively by the monitor loop, never shared.
type runningTotals struct {
	timeWaiting  time.Duration
	timeSampling time.Duration
}

type monitor struct {
	prober           Prober
	pollingInterval  time.Duration
	samplingInterval time.Duration

	metric *metricCell
	ctrlCh <-chan controlMessage
	ackCh  chan<- struct{}
	state  *monitorState
	logger log.Logger

	totals runningTotals
}

// run is the monitor control loop. It keeps exactly one sampling window
// in flight, folds finished windows into the running totals, publishes
// the contention metric, and services stop/reset messages. The loop
// never blocks on probe latency: windows run in their own goroutine.
func (m *monitor) run(ctx context.Context) {
	defer m.state.Swap(statusStopped)
	defer func() {
		if r := recover(); r != nil {
			m.logger.Errorf(ctx, "monitor loop panicked: %v", r)
		}
	}()

	resCh := m.launchWindow(ctx)
	for {
		select {
		case msg, ok := <-m.ctrlCh:
			if !ok {
				// Control sender is gone. Same as an explicit stop.
				m.logger.Warnf(ctx, "control channel closed, stopping monitor")
				return
			}
			switch msg {
			case controlStop:
				// The in-flight window is abandoned, not awaited. Its
				// result channel is buffered so it winds down on its own.
				return
			case controlReset:
				m.totals = runningTotals{}
				m.metric.Store(0)
				if !ch.WriteOrDone(ctx, struct{}{}, m.ackCh) {
					return
				}
				m.logger.Debugf(ctx, "reset running totals")
			}
		case res := <-resCh:
			m.fold(ctx, res)
			resCh = m.launchWindow(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// fold adds one window result to the totals and republishes the metric.
// Totals zeroed by a reset stay zeroed until the next fold, so a window
// spanning the reset contributes to post-reset totals only.
func (m *monitor) fold(ctx context.Context, res windowResult) {
	m.totals.timeWaiting += res.timeWaiting
	m.totals.timeSampling += res.timeElapsed
	if m.totals.timeSampling == 0 {
		return
	}
	cm := m.totals.timeWaiting.Seconds() / m.totals.timeSampling.Seconds()
	m.metric.Store(cm)
	m.logger.Debugf(ctx, "folded sampling window: waiting=%v elapsed=%v metric=%.6f",
		res.timeWaiting, res.timeElapsed, cm)
}
