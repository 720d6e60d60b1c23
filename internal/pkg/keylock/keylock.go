// Package keylock serializes work per key while letting different keys run
// in parallel.
package keylock

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Locker hands out one mutex per key. Mutexes are never released; the key
// space is the set of user identities, which only grows.
type Locker struct {
	locks *xsync.MapOf[string, *sync.Mutex]
}

// New creates an empty Locker
func New() *Locker {
	return &Locker{
		locks: xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// Lock acquires the mutex for key and returns the matching unlock func
func (l *Locker) Lock(key string) (unlock func()) {
	mu, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// Do runs fn while holding the lock for key
func (l *Locker) Do(key string, fn func() error) error {
	unlock := l.Lock(key)
	defer unlock()
	return fn()
}
