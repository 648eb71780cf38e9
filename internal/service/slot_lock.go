package service

import "sync"

// slotLocks serializes capacity checks per key. An entry lives only while
// some caller holds or waits for it, so the map stays as small as the
// number of slots being written concurrently.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

type slotLock struct {
	mu   sync.Mutex
	refs int
}

// Lock acquires the lock for key and returns the matching unlock function.
func (l *slotLocks) Lock(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*slotLock)
	}
	lock, ok := l.locks[key]
	if !ok {
		lock = &slotLock{}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of keys currently held or awaited.
func (l *slotLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
