package brawler

import "github.com/vovakirdan/tui-brawler/internal/core"

// Facing is the horizontal direction an actor looks or moves in.
type Facing int

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "none"
	}
}

// sign returns -1 for left, 1 for right and 0 otherwise.
func (f Facing) sign() int {
	switch f {
	case FacingLeft:
		return -1
	case FacingRight:
		return 1
	default:
		return 0
	}
}

// facingOf maps a horizontal direction to a Facing.
func facingOf(dir int) Facing {
	switch {
	case dir < 0:
		return FacingLeft
	case dir > 0:
		return FacingRight
	default:
		return FacingNone
	}
}

// Entity is the state shared by every actor: a sprite-sized square at
// (X, Y) and a smaller body hitbox inset by a fixed padding.
type Entity struct {
	X, Y   int
	VX, VY int
	PadX   int
	PadY   int
	Size   int
	Body   core.Rect
}

func newEntity(x, y, size, padX, padY int) Entity {
	e := Entity{
		X:    x,
		Y:    y,
		PadX: padX,
		PadY: padY,
		Size: size,
		Body: core.NewRect(0, 0, max(0, size-2*padX), max(0, size-2*padY)),
	}
	e.syncBody()
	return e
}

// syncBody moves the body hitbox to the current position.
func (e *Entity) syncBody() {
	e.Body.X = e.X + e.PadX
	e.Body.Y = e.Y + e.PadY
}

// Bounds returns the full sprite rectangle.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}
