// Package locks provides in-process serialization of operations on named
// entities. Command handlers use it to guarantee that concurrent mutations
// of the same order, shipment, driver or vehicle do not interleave, on top
// of the atomicity the database transaction already provides.
package locks

import (
	"sort"
	"sync"
)

// KeyedMutex is a set of mutexes addressed by string key, typically an
// entity id. Locking several keys at once always acquires them in ascending
// key order, so two callers contending for overlapping key sets cannot
// deadlock.
//
// Mutexes are created on first use and kept for the lifetime of the
// KeyedMutex. The entity population (drivers, vehicles, in-flight orders)
// is small and long-lived, so entries are not evicted.
type KeyedMutex struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		mutexes: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutexes for every given key in ascending key order and
// returns a function that releases them all. Duplicate keys are collapsed so
// the same mutex is never acquired twice.
func (k *KeyedMutex) Lock(keys ...string) (unlock func()) {
	ordered := dedupeSorted(keys)

	acquired := make([]*sync.Mutex, 0, len(ordered))
	for _, key := range ordered {
		m := k.mutexFor(key)
		m.Lock()
		acquired = append(acquired, m)
	}

	return func() {
		// Release in reverse acquisition order.
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func (k *KeyedMutex) mutexFor(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.mutexes[key]
	if !ok {
		m = &sync.Mutex{}
		k.mutexes[key] = m
	}
	return m
}

func dedupeSorted(keys []string) []string {
	ordered := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, key)
	}
	sort.Strings(ordered)
	return ordered
}
