package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Variant selects an enemy's stats. Behaviour is identical across variants.
type Variant int

const (
	VariantMale Variant = iota
	VariantFemale
)

func (v Variant) String() string {
	switch v {
	case VariantMale:
		return "male"
	case VariantFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Stats is the immutable per-variant record.
type Stats struct {
	Lives int
	Speed int
	PadX  int
	PadY  int
}

// StatsFor returns the configured stats for a variant.
func StatsFor(cfg config.EnemiesConfig, v Variant) Stats {
	s := cfg.Male
	if v == VariantFemale {
		s = cfg.Female
	}
	return Stats{Lives: s.Lives, Speed: s.Speed, PadX: s.PadX, PadY: s.PadY}
}

// EnemyState is the coarse AI state used for animation.
type EnemyState int

const (
	EnemyRunning EnemyState = iota
	EnemyAttacking
)

func (s EnemyState) String() string {
	if s == EnemyAttacking {
		return "attacking"
	}
	return "running"
}

// Action is what the AI decided to do this tick.
type Action struct {
	Kind   ActionKind
	Facing Facing
}

// ActionKind enumerates AI decisions.
type ActionKind int

const (
	// ActionIdle means the AI did not run (mid-attack).
	ActionIdle ActionKind = iota
	ActionMove
	ActionAttack
)

// Enemy is a chasing melee opponent.
type Enemy struct {
	Entity

	Variant Variant
	stats   Stats
	rules   config.EnemiesConfig

	lives     int
	facing    Facing
	state     EnemyState
	attack    core.Cooldown
	cooldown  core.Cooldown
	attackBox core.Rect
	anim      core.Animator

	// lastHitBy is the player swing that last damaged this enemy.
	lastHitBy int
}

// NewEnemy creates an enemy of the given variant at (x, y).
func NewEnemy(cfg config.BrawlerConfig, v Variant, x, y int) *Enemy {
	stats := StatsFor(cfg.Enemies, v)
	return &Enemy{
		Entity:   newEntity(x, y, cfg.Screen.TileSize, stats.PadX, stats.PadY),
		Variant:  v,
		stats:    stats,
		rules:    cfg.Enemies,
		lives:    stats.Lives,
		facing:   FacingLeft,
		state:    EnemyRunning,
		attack:   core.NewCooldown(cfg.Enemies.AttackFrames * cfg.Animation.TicksPerFrame),
		cooldown: core.NewCooldown(cfg.Enemies.CooldownTicks),
		anim:     core.NewAnimator(cfg.Animation.TicksPerFrame),
	}
}

// Decide is the AI policy. It is pure: it reads the enemy and the player's
// x coordinate and returns what the enemy should do.
func Decide(e *Enemy, playerX int) Action {
	if e.Attacking() {
		return Action{Kind: ActionIdle, Facing: e.facing}
	}

	dx := playerX - e.X
	if !e.OnCooldown() && core.Abs(dx) < e.rules.AggroRange {
		face := FacingRight
		if dx < 0 {
			face = FacingLeft
		}
		return Action{Kind: ActionAttack, Facing: face}
	}

	// Chasing breaks a tie the other way: standing level with the
	// player, the enemy walks left.
	step := FacingLeft
	if dx > 0 {
		step = FacingRight
	}
	return Action{Kind: ActionMove, Facing: step}
}

// Update runs one tick: decide, apply, sync body, animate, then the attack
// and cooldown timers.
func (e *Enemy) Update(playerX int) {
	e.apply(Decide(e, playerX))
	e.syncBody()

	if e.state == EnemyAttacking {
		e.anim.Advance(e.rules.AttackFrames, false)
	} else {
		e.anim.Advance(e.rules.RunFrames, true)
	}

	if e.attack.Tick() {
		e.state = EnemyRunning
		e.attackBox = core.Rect{}
		e.cooldown.Start()
	}
	e.cooldown.Tick()
}

func (e *Enemy) apply(a Action) {
	switch a.Kind {
	case ActionMove:
		e.state = EnemyRunning
		e.facing = a.Facing
		e.VX = a.Facing.sign() * e.stats.Speed
		e.X += e.VX
	case ActionAttack:
		e.facing = a.Facing
		e.VX = 0
		e.triggerAttack()
	default:
		e.VX = 0
	}
}

// triggerAttack starts a swing unless one is in progress.
func (e *Enemy) triggerAttack() {
	if e.Attacking() {
		return
	}
	e.state = EnemyAttacking
	e.attack.Start()
	e.anim.Rewind()
	e.syncBody()
	e.attackBox = e.attackBoxFor(e.facing)
}

// attackBoxFor places the weapon hitbox flush against the body on the
// given side, spanning the full body height.
func (e *Enemy) attackBoxFor(f Facing) core.Rect {
	return e.Body.Beside(f == FacingLeft, e.rules.AttackWidth, e.Body.H)
}

// TakeDamage removes one life. Enemies have no invincibility.
func (e *Enemy) TakeDamage() {
	e.lives--
}

// IsDead reports whether the enemy should be removed.
func (e *Enemy) IsDead() bool {
	return e.lives <= 0
}

func (e *Enemy) Lives() int           { return e.lives }
func (e *Enemy) Speed() int           { return e.stats.Speed }
func (e *Enemy) Facing() Facing       { return e.facing }
func (e *Enemy) State() EnemyState    { return e.state }
func (e *Enemy) Attacking() bool      { return e.attack.Active() }
func (e *Enemy) AttackTimer() int     { return e.attack.Count() }
func (e *Enemy) AttackBox() core.Rect { return e.attackBox }
func (e *Enemy) OnCooldown() bool     { return e.cooldown.Active() }
func (e *Enemy) CooldownTimer() int   { return e.cooldown.Count() }
func (e *Enemy) Frame() int           { return e.anim.Frame() }
