package locknock

import "sync"

// metricCell holds the latest published contention metric.
// Single writer (the monitor loop), any number of concurrent readers.
type metricCell struct {
	mu    sync.RWMutex
	value float64
}

func (c *metricCell) Store(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}

func (c *metricCell) Load() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}
