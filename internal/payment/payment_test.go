package payment

import (
	"errors"
	"math/rand"
	"testing"
)

func TestProcess_AlwaysSucceeds(t *testing.T) {
	p := NewProcessor(rand.New(rand.NewSource(1)), 1.0, 0)
	for i := 0; i < 100; i++ {
		if err := p.Process(25); err != nil {
			t.Fatalf("expected success at rate 1.0, got %v", err)
		}
	}
}

func TestProcess_AlwaysDeclines(t *testing.T) {
	p := NewProcessor(rand.New(rand.NewSource(1)), 0.0, 0)
	for i := 0; i < 100; i++ {
		if err := p.Process(25); !errors.Is(err, ErrDeclined) {
			t.Fatalf("expected ErrDeclined at rate 0.0, got %v", err)
		}
	}
}

func TestProcess_NegativeAmount(t *testing.T) {
	p := NewProcessor(rand.New(rand.NewSource(1)), 1.0, 0)
	if err := p.Process(-1); err == nil {
		t.Error("expected error for negative amount")
	}
}
