package core

import "testing"

func TestCooldownExpiresAfterThreshold(t *testing.T) {
	for _, threshold := range []int{0, 1, 30, 60} {
		c := NewCooldown(threshold)
		c.Start()

		// N <= threshold ticks keep it armed
		for n := 1; n <= threshold; n++ {
			if c.Tick() {
				t.Fatalf("threshold %d: expired early at tick %d", threshold, n)
			}
			if !c.Active() {
				t.Fatalf("threshold %d: inactive after %d ticks", threshold, n)
			}
			if c.Count() != n {
				t.Fatalf("threshold %d: Count() = %d after %d ticks", threshold, c.Count(), n)
			}
		}

		// The next tick exceeds the threshold
		if !c.Tick() {
			t.Fatalf("threshold %d: expected expiry on tick %d", threshold, threshold+1)
		}
		if c.Active() || c.Count() != 0 {
			t.Fatalf("threshold %d: expected disarmed and zeroed, got active=%v count=%d",
				threshold, c.Active(), c.Count())
		}

		// Expiry is reported exactly once
		for i := 0; i < 5; i++ {
			if c.Tick() {
				t.Fatalf("threshold %d: expiry reported twice", threshold)
			}
		}
	}
}

func TestCooldownRestartAndReset(t *testing.T) {
	c := NewCooldown(10)
	c.Start()
	for i := 0; i < 7; i++ {
		c.Tick()
	}
	c.Start()
	if c.Count() != 0 || !c.Active() {
		t.Errorf("Start should rewind, got active=%v count=%d", c.Active(), c.Count())
	}

	c.Tick()
	c.Reset()
	if c.Active() || c.Count() != 0 {
		t.Errorf("Reset should disarm, got active=%v count=%d", c.Active(), c.Count())
	}
}

func TestAnimatorLooping(t *testing.T) {
	a := NewAnimator(3)
	frames := make([]int, 0, 12)
	for i := 0; i < 12; i++ {
		a.Advance(3, true)
		frames = append(frames, a.Frame())
	}

	expected := []int{0, 0, 1, 1, 1, 2, 2, 2, 0, 0, 0, 1}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("frames = %v, expected %v", frames, expected)
		}
	}
}

func TestAnimatorClampsWhenNotLooping(t *testing.T) {
	a := NewAnimator(3)
	for i := 0; i < 100; i++ {
		a.Advance(4, false)
	}
	if a.Frame() != 3 {
		t.Errorf("non-looping animation should hold last frame, got %d", a.Frame())
	}

	a.Rewind()
	if a.Frame() != 0 {
		t.Errorf("Rewind should go to frame 0, got %d", a.Frame())
	}
}
