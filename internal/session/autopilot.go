package session

import (
	"math/rand"

	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

// Autopilot plays the game on its own for headless runs. It walks toward
// the nearest enemy, swings when close and now and then jumps to try a
// stomp. Menus and the game-over screen are confirmed straight away.
type Autopilot struct {
	view  func() brawler.Snapshot
	rng   *rand.Rand
	reach int
	jump  float64
}

// NewAutopilot creates an autopilot reading game state through view.
// view is called from the stepping goroutine.
func NewAutopilot(view func() brawler.Snapshot, seed int64) *Autopilot {
	return &Autopilot{
		view: view,
		rng:  rand.New(rand.NewSource(seed)),
		jump: 0.02,
	}
}

// Frame implements Source.
func (a *Autopilot) Frame() core.InputFrame {
	return a.decide(a.view())
}

func (a *Autopilot) decide(s brawler.Snapshot) core.InputFrame {
	f := core.NewInputFrame()
	if s.Phase != brawler.PhasePlaying {
		f.Set(core.ActionConfirm)
		return f
	}
	if s.Paused {
		f.Set(core.ActionPause)
		return f
	}

	target, ok := nearest(s)
	if !ok {
		return f
	}

	px, _ := s.Player.Body.Center()
	ex, _ := target.Body.Center()
	dx := ex - px
	if dx < 0 {
		f.Set(core.ActionLeft)
	} else {
		f.Set(core.ActionRight)
	}

	reach := a.reach
	if reach == 0 {
		reach = s.Player.Body.W/2 + target.Body.W/2 + s.Tile/4
	}
	if core.Abs(dx) <= reach && !s.Player.Attacking {
		f.Set(core.ActionAttack)
	}
	if s.Player.Grounded && a.rng.Float64() < a.jump {
		f.Set(core.ActionUp)
	}
	return f
}

func nearest(s brawler.Snapshot) (brawler.EnemyView, bool) {
	px, _ := s.Player.Body.Center()
	best, found := brawler.EnemyView{}, false
	bestDist := 0
	for _, e := range s.Enemies {
		ex, _ := e.Body.Center()
		d := core.Abs(ex - px)
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
