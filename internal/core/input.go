package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // jump
	ActionDown           // read but unused by the player
	ActionLeft           // move left
	ActionRight          // move right
	ActionAttack         // swing
	ActionConfirm        // start from the menu, leave game over
	ActionPause          // pause/unpause while playing
	ActionDebug          // toggle the hitbox overlay
	ActionQuit           // exit

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Attack", "Confirm", "Pause", "Debug", "Quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// Held actions (movement, attack) stay set while the key is down;
// discrete ones (confirm, pause, debug) are set for a single tick.
// The zero value is an empty frame, and frames compare with ==.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks an action as active. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

// Has reports whether a is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Clear empties the frame.
func (f *InputFrame) Clear() { f.bits = 0 }

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Horizontal returns -1 for left, +1 for right and 0 for neither.
// Left wins when both are held.
func (f InputFrame) Horizontal() int {
	switch {
	case f.Has(ActionLeft):
		return -1
	case f.Has(ActionRight):
		return 1
	default:
		return 0
	}
}
