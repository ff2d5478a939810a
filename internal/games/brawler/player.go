package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Player is the user-controlled fighter.
type Player struct {
	Entity

	cfg     config.PlayerConfig
	physics config.PhysicsConfig
	groundY int

	lives      int
	facing     Facing
	lastFacing Facing
	grounded   bool

	attack     core.Cooldown
	invincible core.Cooldown
	attackBox  core.Rect
	anim       core.Animator

	// swing counts attacks started since Reset; collision uses it to
	// tell one swing from the next.
	swing int
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.BrawlerConfig) *Player {
	p := &Player{
		cfg:     cfg.Player,
		physics: cfg.Physics,
		groundY: cfg.Screen.GroundY,
	}
	p.Entity = newEntity(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Screen.TileSize, cfg.Player.PadX, cfg.Player.PadY)
	p.attack = core.NewCooldown(cfg.Player.AttackDuration)
	p.invincible = core.NewCooldown(cfg.Player.InvincibleTicks)
	p.anim = core.NewAnimator(cfg.Animation.TicksPerFrame)
	p.Reset()
	return p
}

// Reset restores the spawn state. Calling it twice is the same as once.
func (p *Player) Reset() {
	p.X = p.cfg.SpawnX
	p.Y = p.cfg.SpawnY
	p.VX = 0
	p.VY = 0
	p.lives = p.cfg.Lives
	p.facing = FacingNone
	p.lastFacing = FacingRight
	p.grounded = true
	p.attack.Reset()
	p.invincible.Reset()
	p.attackBox = core.Rect{}
	p.anim.Reset()
	p.swing = 0
	p.syncBody()
}

// Update advances the player by one tick and appends any cues to ev.
func (p *Player) Update(in core.InputFrame, ev *core.Events) {
	// Horizontal movement is locked for the whole swing.
	if !p.Attacking() {
		dir := in.Horizontal()
		p.VX = dir * p.cfg.Speed
		p.facing = facingOf(dir)
		if p.facing != FacingNone {
			p.lastFacing = p.facing
		}
		p.X += p.VX
	} else {
		p.VX = 0
	}

	if in.Has(core.ActionUp) && p.grounded && !p.Attacking() {
		p.VY = p.physics.JumpImpulse
		p.grounded = false
	}

	p.VY += p.physics.Gravity
	p.Y += p.VY
	if p.Y > p.groundY {
		p.Y = p.groundY
		p.VY = 0
		p.grounded = true
	}

	p.syncBody()

	if in.Has(core.ActionAttack) && !p.Attacking() {
		p.attack.Start()
		p.anim.Rewind()
		p.swing++
		ev.Emit(core.EventSwing, p.Body.X, p.Body.Y)
	}

	if p.Attacking() {
		p.attack.Tick()
		p.attackBox = p.attackBoxAt(p.attack.Count())
		if !p.Attacking() {
			p.attackBox = core.Rect{}
		}
	}

	p.invincible.Tick()

	if p.Attacking() {
		p.anim.Advance(p.cfg.AttackFrames, false)
	} else {
		p.anim.Advance(p.cfg.RunFrames, true)
	}
}

// attackBoxAt returns the attack hitbox for a given attack timer value.
// Outside the active window the box has zero area.
func (p *Player) attackBoxAt(t int) core.Rect {
	if t <= p.cfg.AttackStart || t >= p.cfg.AttackEnd {
		return core.Rect{}
	}
	return p.Body.Beside(p.lastFacing == FacingLeft, p.cfg.AttackWidth, p.cfg.AttackHeight)
}

// TakeDamage removes a life unless the player is invincible, and reports
// whether it did.
func (p *Player) TakeDamage(ev *core.Events) bool {
	if p.invincible.Active() {
		return false
	}
	p.lives--
	p.invincible.Start()
	ev.Emit(core.EventPlayerHurt, p.Body.X, p.Body.Y)
	return true
}

// Bounce launches the player upwards after a stomp.
func (p *Player) Bounce(ev *core.Events) {
	p.VY = p.physics.BounceImpulse
	p.grounded = false
	ev.Emit(core.EventStomp, p.Body.X, p.Body.Bottom())
}

func (p *Player) Lives() int           { return p.lives }
func (p *Player) Facing() Facing       { return p.facing }
func (p *Player) LastFacing() Facing   { return p.lastFacing }
func (p *Player) Grounded() bool       { return p.grounded }
func (p *Player) Attacking() bool      { return p.attack.Active() }
func (p *Player) AttackTimer() int     { return p.attack.Count() }
func (p *Player) AttackBox() core.Rect { return p.attackBox }
func (p *Player) Invincible() bool     { return p.invincible.Active() }
func (p *Player) InvincibleTimer() int { return p.invincible.Count() }
func (p *Player) Frame() int           { return p.anim.Frame() }
func (p *Player) Swing() int           { return p.swing }
