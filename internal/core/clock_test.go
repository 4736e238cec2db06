package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(50 * time.Millisecond)
	c.Advance(50 * time.Millisecond)
	if got := c.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("elapsed = %v, expected 100ms", got)
	}
}

func TestClockOrSystem(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.ClockOrSystem().(SystemClock); !ok {
		t.Error("nil Clock should fall back to SystemClock")
	}

	manual := NewManualClock(time.Unix(0, 0))
	cfg.Clock = manual
	if cfg.ClockOrSystem() != manual {
		t.Error("configured Clock should be returned as-is")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() should report only the set action")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on a zero frame should allocate")
	}
}
