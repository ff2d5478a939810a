package core

import (
	"sync"
	"testing"
	"time"
)

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLatch() (*InputLatch, *stepClock) {
	clk := &stepClock{t: time.Unix(1000, 0)}
	l := NewInputLatch(100 * time.Millisecond)
	l.SetClock(clk.now)
	return l, clk
}

func TestInputLatchHoldExpires(t *testing.T) {
	l, clk := newTestLatch()

	l.Hold(ActionRight)
	if !l.Frame().Has(ActionRight) {
		t.Fatal("held action should be active")
	}

	clk.advance(60 * time.Millisecond)
	l.Hold(ActionRight) // key repeat
	clk.advance(60 * time.Millisecond)
	if !l.Frame().Has(ActionRight) {
		t.Error("repeat should refresh the deadline")
	}

	clk.advance(100 * time.Millisecond)
	if l.Frame().Has(ActionRight) {
		t.Error("hold should lapse without repeats")
	}
}

func TestInputLatchOppositeCancels(t *testing.T) {
	l, _ := newTestLatch()

	l.Hold(ActionLeft)
	l.Hold(ActionRight)
	f := l.Frame()
	if f.Has(ActionLeft) {
		t.Error("right should release left")
	}
	if f.Horizontal() != 1 {
		t.Errorf("Horizontal() = %d, want 1", f.Horizontal())
	}
}

func TestInputLatchPressIsOneShot(t *testing.T) {
	l, _ := newTestLatch()

	l.Press(ActionConfirm)
	if !l.Frame().Has(ActionConfirm) {
		t.Fatal("pressed action should appear once")
	}
	if l.Frame().Has(ActionConfirm) {
		t.Error("pressed action should be consumed")
	}
}

func TestInputLatchSetDown(t *testing.T) {
	l, clk := newTestLatch()

	l.SetDown(ActionAttack, true)
	clk.advance(time.Hour)
	if !l.Frame().Has(ActionAttack) {
		t.Error("explicit down should not expire")
	}

	l.SetDown(ActionAttack, false)
	if l.Frame().Has(ActionAttack) {
		t.Error("explicit release should clear the action")
	}
}

func TestInputLatchRelease(t *testing.T) {
	l, _ := newTestLatch()

	l.Hold(ActionLeft)
	l.SetDown(ActionUp, true)
	l.Press(ActionPause)
	l.Release()

	if f := l.Frame(); !f.Empty() {
		t.Errorf("Release left actions behind: %v", f.Actions())
	}
}

func TestInputLatchConcurrentUse(t *testing.T) {
	l := NewInputLatch(0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			l.Hold(ActionLeft)
			l.Press(ActionAttack)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			l.Frame()
		}
	}()
	wg.Wait()
}
