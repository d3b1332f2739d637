// Package slotlock provides in-process mutual exclusion keyed by an
// arbitrary string. The booking flow holds a slot's lock across its
// check-then-act sequence (list calendar, then insert/update), closing the
// TOCTOU window the calendar API itself cannot close: it offers no
// transaction spanning list and insert. Locks for different keys never
// block one another.
package slotlock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedLock is a set of named mutexes. The zero value is not usable;
// create instances with New.
type KeyedLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty KeyedLock
func New() *KeyedLock {
	return &KeyedLock{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking while another goroutine holds it
func (l *KeyedLock) Lock(key string) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. The entry is dropped from the map
// once no goroutine holds or waits on it, so the map stays bounded by the
// number of in-flight requests.
func (l *KeyedLock) Unlock(key string) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		l.mu.Unlock()
		panic("slotlock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}
