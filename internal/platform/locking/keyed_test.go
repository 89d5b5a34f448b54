package locking

import (
	"sync"
	"testing"
)

func TestKeyed_SerializesSameKey(t *testing.T) {
	t.Parallel()

	keyed := NewKeyed()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := keyed.Lock("squad-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}

	keyed.mu.Lock()
	remaining := len(keyed.locks)
	keyed.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("expected lock table to be drained, got %d entries", remaining)
	}
}

func TestKeyed_IndependentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	keyed := NewKeyed()
	unlockA := keyed.Lock("squad-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := keyed.Lock("squad-b")
		unlockB()
		close(done)
	}()

	<-done
}
