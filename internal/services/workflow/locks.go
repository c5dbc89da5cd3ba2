package workflow

import "sync"

// lockMap serializes transitions per session identifier. The state machine
// does a read-modify-write against the session store without a
// compare-and-swap guard, so two concurrent transitions on the same session
// must not interleave. Transitions on different sessions stay independent.
type lockMap struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockMap() *lockMap {
	return &lockMap{
		locks: make(map[string]*sync.Mutex),
	}
}

// acquire locks the mutex for the given key and returns its release func.
// Entries are never removed; the map is bounded by the session population.
func (l *lockMap) acquire(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
