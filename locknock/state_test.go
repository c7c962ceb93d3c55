package locknock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_monitorState(t *testing.T) {
	testee := newMonitorState()
	assert.True(t, testee.Is(statusNotStarted))
	assert.Equal(t, statusNotStarted, testee.Current())

	t.Run("success: swap returns the old status", func(t *testing.T) {
		assert.Equal(t, statusNotStarted, testee.Swap(statusRunning))
		assert.True(t, testee.Is(statusRunning))
	})

	t.Run("edge case: compare-and-swap-not refuses while in the excluded status", func(t *testing.T) {
		assert.False(t, testee.CompareAndSwapNot(statusRunning, statusRunning))
		assert.True(t, testee.Is(statusRunning))
	})

	t.Run("success: compare-and-swap-not from stopped back to running", func(t *testing.T) {
		testee.Swap(statusStopped)
		assert.True(t, testee.CompareAndSwapNot(statusRunning, statusRunning))
		assert.True(t, testee.Is(statusRunning))
	})
}

func Test_monitorStatus_String(t *testing.T) {
	assert.Equal(t, "not started", statusNotStarted.String())
	assert.Equal(t, "running", statusRunning.String())
	assert.Equal(t, "stopped", statusStopped.String())
	assert.Equal(t, "unknown", monitorStatus(99).String())
}
