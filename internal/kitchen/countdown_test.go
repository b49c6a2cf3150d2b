package kitchen

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdown_ReachesZeroAndStops(t *testing.T) {
	done := make(chan struct{})
	var last atomic.Int64

	c := NewCountdown(3, func(remaining int) {
		last.Store(int64(remaining))
		if remaining == 0 {
			close(done)
		}
	})
	c.SetInterval(time.Millisecond)
	c.Start()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown did not reach zero")
	}

	if last.Load() != 0 {
		t.Errorf("expected final tick at 0, got %d", last.Load())
	}

	// the ticker goroutine shuts itself down at zero
	deadline := time.Now().Add(time.Second)
	for !c.Stopped() {
		if time.Now().After(deadline) {
			t.Fatal("countdown still running after reaching zero")
		}
		time.Sleep(time.Millisecond)
	}
	if c.Remaining() != 0 {
		t.Errorf("expected remaining 0, got %d", c.Remaining())
	}
}

func TestCountdown_StopCancelsTicking(t *testing.T) {
	c := NewCountdown(1000, nil)
	c.SetInterval(time.Millisecond)
	c.Start()

	time.Sleep(5 * time.Millisecond)
	c.Stop()

	// let any in-flight tick drain before sampling
	time.Sleep(5 * time.Millisecond)
	frozen := c.Remaining()
	time.Sleep(10 * time.Millisecond)
	if c.Remaining() != frozen {
		t.Errorf("expected counter frozen at %d after Stop, got %d", frozen, c.Remaining())
	}
	if !c.Stopped() {
		t.Error("expected Stopped() after Stop")
	}
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	c := NewCountdown(10, nil)
	c.Stop()
	c.Stop() // must not panic
}
