package keylock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/keylock"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	locker := keylock.New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.Do("user-1", func() error {
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	locker := keylock.New()
	unlock := locker.Lock("user-1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		_ = locker.Do("user-2", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on user-2 blocked behind user-1")
	}
}
