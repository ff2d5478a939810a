package brawler

import "github.com/vovakirdan/tui-brawler/internal/core"

// resolveCollisions applies the three hit rules for one tick. All rules
// are evaluated; the pass stops early once the player has no lives left.
//
//  1. An attacking player damages every enemy its attack box touches.
//  2. A falling player that is neither invincible nor attacking stomps
//     every enemy its body touches, and bounces.
//  3. An attacking enemy whose attack box touches the player's body hurts
//     the player, subject to invincibility.
//
// With dedupe false an enemy that stays inside the attack box is hit on
// every tick of the active window.
func resolveCollisions(p *Player, enemies []*Enemy, dedupe bool, ev *core.Events) {
	if p.Attacking() {
		for _, e := range enemies {
			if !p.AttackBox().Intersects(e.Body) {
				continue
			}
			if dedupe && e.lastHitBy == p.swing {
				continue
			}
			e.lastHitBy = p.swing
			e.TakeDamage()
			x, y := e.Body.Center()
			ev.Emit(core.EventHit, x, y)
		}
	}

	for _, e := range enemies {
		if p.Body.Intersects(e.Body) && canStomp(p) {
			e.TakeDamage()
			p.Bounce(ev)
		}
		if e.Attacking() && e.AttackBox().Intersects(p.Body) {
			p.TakeDamage(ev)
			if p.Lives() <= 0 {
				return
			}
		}
	}
}

// canStomp reports whether the player is falling, vulnerable and not
// swinging.
func canStomp(p *Player) bool {
	return p.VY > 0 && !p.Invincible() && !p.Attacking()
}
