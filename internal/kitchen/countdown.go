package kitchen

import (
	"sync"
	"time"
)

// Countdown ticks a remaining-seconds counter down to zero. It backs the
// customer order-tracking view; the owner must call Stop when the tracked
// order is cleared so the ticker goroutine does not outlive its view.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	interval  time.Duration
	onTick    func(remaining int)
	done      chan struct{}
	stopOnce  sync.Once
}

// NewCountdown creates a countdown over the given number of seconds.
// onTick is invoked after every decrement, including the final zero; it
// may be nil.
func NewCountdown(seconds int, onTick func(remaining int)) *Countdown {
	return &Countdown{
		remaining: seconds,
		interval:  time.Second,
		onTick:    onTick,
		done:      make(chan struct{}),
	}
}

// SetInterval overrides the one-second tick, used by tests. Must be
// called before Start.
func (c *Countdown) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
}

// Start begins ticking in a background goroutine. The countdown stops by
// itself when it reaches zero.
func (c *Countdown) Start() {
	c.mu.Lock()
	interval := c.interval
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				if c.tick() {
					c.Stop()
					return
				}
			}
		}
	}()
}

// tick decrements the counter and reports whether it has reached zero.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.remaining > 0 {
		c.remaining--
	}
	remaining := c.remaining
	onTick := c.onTick
	c.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	return remaining == 0
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Stop cancels the countdown. Safe to call more than once and after the
// countdown has finished on its own.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Stopped reports whether the countdown is no longer ticking.
func (c *Countdown) Stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
