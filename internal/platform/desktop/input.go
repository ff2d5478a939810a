package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// held bindings mirror the keyboard state every frame.
var held = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionAttack, []ebiten.Key{ebiten.KeySpace, ebiten.KeyX}},
}

// pressed bindings fire once per key press.
var pressed = []binding{
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionDebug, []ebiten.Key{ebiten.KeyF1, ebiten.KeyBackquote}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// keyState reports keyboard state. The window passes ebiten.IsKeyPressed
// and inpututil.IsKeyJustPressed.
type keyState struct {
	down func(ebiten.Key) bool
	just func(ebiten.Key) bool
}

func (b binding) matches(fn func(ebiten.Key) bool) bool {
	for _, k := range b.keys {
		if fn(k) {
			return true
		}
	}
	return false
}

// poll copies the keyboard into the latch and reports whether quit was
// pressed. Quit never reaches the simulation.
func poll(ks keyState, latch *core.InputLatch) (quit bool) {
	for _, b := range held {
		latch.SetDown(b.action, b.matches(ks.down))
	}
	for _, b := range pressed {
		if !b.matches(ks.just) {
			continue
		}
		if b.action == core.ActionQuit {
			quit = true
			continue
		}
		latch.Press(b.action)
	}
	return quit
}
