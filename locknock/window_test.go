package locknock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locknock/locknock-go/log"
)

func Test_monitor_sampleWindow(t *testing.T) {
	m := &monitor{
		prober:           ProberFunc(func() time.Duration { return 200 * time.Microsecond }),
		pollingInterval:  time.Millisecond,
		samplingInterval: 5 * time.Millisecond,
		logger:           log.NewNop(),
	}

	got := m.sampleWindow(context.Background())

	// Measured elapsed time, not the configured interval, is reported.
	assert.GreaterOrEqual(t, got.timeElapsed, m.samplingInterval)
	assert.Greater(t, got.timeWaiting, time.Duration(0))
	assert.Zero(t, got.timeWaiting%(200*time.Microsecond))
}

func Test_monitor_sampleWindow_canceled(t *testing.T) {
	m := &monitor{
		prober:           ProberFunc(func() time.Duration { return 0 }),
		pollingInterval:  time.Millisecond,
		samplingInterval: time.Hour,
		logger:           log.NewNop(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	got := m.sampleWindow(ctx)

	// Cancellation ends the window at the next sleep boundary.
	assert.Less(t, time.Since(start), time.Second)
	assert.Less(t, got.timeElapsed, time.Second)
}
