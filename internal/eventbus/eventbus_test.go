// ABOUTME: Tests for the typed event bus
// ABOUTME: Covers ordered delivery, unsubscribe, and re-entrant subscription

package eventbus

import (
	"sync"
	"testing"
)

func TestBus_PublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var received string

	bus.Subscribe(func(s string) {
		received = s
	})

	bus.Publish("hello")

	if received != "hello" {
		t.Errorf("received = %q, want %q", received, "hello")
	}
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var order []int
	for i := range 5 {
		bus.Subscribe(func(int) { order = append(order, i) })
	}

	bus.Publish(0)

	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("len(order) = %d, want 5", len(order))
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	called := false

	unsub := bus.Subscribe(func(_ string) {
		called = true
	})
	unsub()
	unsub()

	bus.Publish("ignored")

	if called {
		t.Error("handler called after unsubscribe")
	}
	if bus.Count() != 0 {
		t.Errorf("Count() = %d, want 0", bus.Count())
	}
}

func TestBus_UnsubscribeKeepsOthers(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var got []string
	bus.Subscribe(func(int) { got = append(got, "a") })
	unsubB := bus.Subscribe(func(int) { got = append(got, "b") })
	bus.Subscribe(func(int) { got = append(got, "c") })

	unsubB()
	bus.Publish(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("got = %v, want [a c]", got)
	}
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	late := 0
	bus.Subscribe(func(int) {
		bus.Subscribe(func(int) { late++ })
	})

	bus.Publish(1)
	if late != 0 {
		t.Errorf("handler added during publish ran in the same publish")
	}
	bus.Publish(2)
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var mu sync.Mutex
	sum := 0
	bus.Subscribe(func(n int) {
		mu.Lock()
		sum += n
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(2)
		}()
	}
	wg.Wait()

	if sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
}
