// Package payment simulates card processing: a fixed artificial pause and
// a 95% success rate. It exists only to branch the checkout flow between
// confirmation and failure messaging.
package payment

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeclined is returned when the simulated processor rejects a charge.
var ErrDeclined = errors.New("payment declined")

// DefaultSuccessRate is the probability a simulated charge goes through.
const DefaultSuccessRate = 0.95

// Processor simulates a card processor. The random source is injected so
// tests can force either outcome.
type Processor struct {
	rng         *rand.Rand
	successRate float64
	delay       time.Duration
}

// NewProcessor creates a simulated processor. A nil rng falls back to a
// time-seeded source.
func NewProcessor(rng *rand.Rand, successRate float64, delay time.Duration) *Processor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Processor{rng: rng, successRate: successRate, delay: delay}
}

// Process charges the given amount. There is no external effect; the call
// sleeps for the configured delay and then succeeds or declines.
func (p *Processor) Process(amount float64) error {
	if amount < 0 {
		return errors.New("amount must not be negative")
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.rng.Float64() < p.successRate {
		return nil
	}
	return ErrDeclined
}
