package poll

import (
	"testing"
	"time"
)

func SetSleep(t *testing.T, f func(time.Duration)) {
	org := sleep
	sleep = f
	t.Cleanup(func() {
		sleep = org
	})
}
