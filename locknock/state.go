package locknock

import "sync"

type monitorStatus uint8

const (
	statusNotStarted monitorStatus = iota
	statusRunning
	statusStopped
)

func (s monitorStatus) String() string {
	switch s {
	case statusNotStarted:
		return "not started"
	case statusRunning:
		return "running"
	case statusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type monitorState struct {
	mu      sync.RWMutex
	current monitorStatus
}

func newMonitorState() *monitorState {
	return &monitorState{}
}

func (e *monitorState) Current() monitorStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

func (e *monitorState) Swap(state monitorStatus) (old monitorStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	old = e.current
	e.current = state
	return
}

func (e *monitorState) CompareAndSwapNot(old, new monitorStatus) (swapped bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == old {
		return false
	}
	e.current = new
	return true
}

func (e *monitorState) Is(state monitorStatus) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current == state
}
