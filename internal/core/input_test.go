package core

import (
	"slices"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionAttack) || !f.Empty() {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionAttack)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(Action(40))
	if !f.Has(ActionAttack) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if got := f.Actions(); !slices.Equal(got, []Action{ActionLeft, ActionAttack}) {
		t.Errorf("Actions() = %v", got)
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove actions")
	}
	if !copied.Has(ActionAttack) {
		t.Error("frames are values; a copy keeps its actions")
	}
}

func TestInputFrameComparable(t *testing.T) {
	a, b := NewInputFrame(), NewInputFrame()
	a.Set(ActionConfirm)
	b.Set(ActionConfirm)
	if a != b {
		t.Error("frames with the same actions should be equal")
	}
	b.Set(ActionUp)
	if a == b {
		t.Error("frames with different actions should differ")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both prefers left", []Action{ActionRight, ActionLeft}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f InputFrame
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Horizontal(); got != tc.expected {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionAttack.String() != "Attack" {
		t.Errorf("ActionAttack.String() = %q", ActionAttack.String())
	}
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q", ActionQuit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
