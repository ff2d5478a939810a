package brawler

import (
	"fmt"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Pose selects an animation strip.
type Pose int

const (
	PoseRun Pose = iota
	PoseAttack
)

func (p Pose) String() string {
	if p == PoseAttack {
		return "attack"
	}
	return "run"
}

// Actor names used for sprite lookup.
const (
	ActorPlayer      = "player"
	ActorEnemyMale   = "enemy_male"
	ActorEnemyFemale = "enemy_female"
)

// SpriteKey identifies one frame of one animation strip.
type SpriteKey struct {
	Actor  string
	Pose   Pose
	Facing Facing
	Frame  int
}

// Path returns the asset path of the frame, relative to the asset root.
func (k SpriteKey) Path() string {
	return fmt.Sprintf("%s/%s_%s_%03d.png", k.Actor, k.Pose, k.Facing, k.Frame)
}

// PlayerView is a read-only copy of the player for renderers.
type PlayerView struct {
	X, Y, Size      int
	VX, VY          int
	Body            core.Rect
	AttackBox       core.Rect
	Lives           int
	Facing          Facing
	LastFacing      Facing
	Attacking       bool
	AttackTimer     int
	Invincible      bool
	InvincibleTimer int
	Grounded        bool
	Frame           int
}

// Sprite returns the frame to draw. Standing still shows the first run
// frame in the last direction moved.
func (v PlayerView) Sprite() SpriteKey {
	switch {
	case v.Attacking:
		return SpriteKey{Actor: ActorPlayer, Pose: PoseAttack, Facing: v.LastFacing, Frame: v.Frame}
	case v.Facing == FacingNone:
		return SpriteKey{Actor: ActorPlayer, Pose: PoseRun, Facing: v.LastFacing, Frame: 0}
	default:
		return SpriteKey{Actor: ActorPlayer, Pose: PoseRun, Facing: v.Facing, Frame: v.Frame}
	}
}

// Dimmed reports whether the invincibility blink is in its faded phase.
func (v PlayerView) Dimmed() bool {
	return v.Invincible && v.InvincibleTimer%10 < 5
}

// EnemyView is a read-only copy of an enemy for renderers.
type EnemyView struct {
	X, Y, Size int
	Body       core.Rect
	AttackBox  core.Rect
	Variant    Variant
	Lives      int
	Facing     Facing
	State      EnemyState
	Attacking  bool
	OnCooldown bool
	Frame      int
}

// Sprite returns the frame to draw.
func (v EnemyView) Sprite() SpriteKey {
	actor := ActorEnemyMale
	if v.Variant == VariantFemale {
		actor = ActorEnemyFemale
	}
	pose := PoseRun
	if v.State == EnemyAttacking {
		pose = PoseAttack
	}
	return SpriteKey{Actor: actor, Pose: pose, Facing: v.Facing, Frame: v.Frame}
}

// Snapshot is a value copy of everything a renderer needs. It shares no
// memory with the simulation and can be read from any goroutine.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Paused  bool
	Debug   bool
	WorldW  int
	WorldH  int
	GroundY int
	Tile    int
	Player  PlayerView
	Enemies []EnemyView
}

func viewPlayer(p *Player) PlayerView {
	return PlayerView{
		X:               p.X,
		Y:               p.Y,
		Size:            p.Size,
		VX:              p.VX,
		VY:              p.VY,
		Body:            p.Body,
		AttackBox:       p.attackBox,
		Lives:           p.lives,
		Facing:          p.facing,
		LastFacing:      p.lastFacing,
		Attacking:       p.Attacking(),
		AttackTimer:     p.AttackTimer(),
		Invincible:      p.Invincible(),
		InvincibleTimer: p.InvincibleTimer(),
		Grounded:        p.grounded,
		Frame:           p.anim.Frame(),
	}
}

func viewEnemy(e *Enemy) EnemyView {
	return EnemyView{
		X:          e.X,
		Y:          e.Y,
		Size:       e.Size,
		Body:       e.Body,
		AttackBox:  e.attackBox,
		Variant:    e.Variant,
		Lives:      e.lives,
		Facing:     e.facing,
		State:      e.state,
		Attacking:  e.Attacking(),
		OnCooldown: e.OnCooldown(),
		Frame:      e.anim.Frame(),
	}
}
