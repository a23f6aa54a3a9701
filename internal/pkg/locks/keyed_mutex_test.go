package locks_test

import (
	"sync"
	"testing"
	"time"

	"logistics/internal/pkg/locks"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := locks.NewKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("shipment-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	km := locks.NewKeyedMutex()

	unlockA := km.Lock("driver-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("driver-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on an independent key blocked")
	}
}

func TestKeyedMutex_OverlappingPairsDoNotDeadlock(t *testing.T) {
	km := locks.NewKeyedMutex()

	var wg sync.WaitGroup
	// Opposite acquisition orders at the call site; ordering inside Lock
	// must prevent a deadlock.
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := km.Lock("driver-1", "vehicle-1")
			defer unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := km.Lock("vehicle-1", "driver-1")
			defer unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("overlapping pair locks deadlocked")
	}
}

func TestKeyedMutex_DuplicateKeysCollapsed(t *testing.T) {
	km := locks.NewKeyedMutex()

	unlock := km.Lock("order-1", "order-1")
	unlock()

	// Lock must be fully released after a single unlock.
	unlock = km.Lock("order-1")
	unlock()
}
