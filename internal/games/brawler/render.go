package brawler

import (
	"fmt"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	DimChar    = '▒'
	EnemyChar  = '▓'
	GroundChar = '▀'
)

// SpriteSource supplies cell art for one sprite frame scaled to w×h cells.
type SpriteSource interface {
	Cells(key SpriteKey, w, h int) ([][]core.Cell, bool)
}

// viewport maps world pixels to screen cells.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func (v viewport) x(px int) int { return px * v.cols / v.worldW }
func (v viewport) y(py int) int { return py * v.rows / v.worldH }

func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.x(r.X), v.y(r.Y)
	x1, y1 := v.x(r.Right()), v.y(r.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Draw renders a snapshot into dst. sprites may be nil, in which case
// actors are drawn as solid placeholders.
func Draw(dst *core.Screen, s Snapshot, sprites SpriteSource) {
	dst.Clear()
	if s.WorldW <= 0 || s.WorldH <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := viewport{worldW: s.WorldW, worldH: s.WorldH, cols: dst.Width(), rows: dst.Height()}

	switch s.Phase {
	case PhaseMenu:
		drawMenu(dst)
	case PhasePlaying:
		drawArena(dst, vp, s, sprites)
		drawHUD(dst, s)
		if s.Paused {
			dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume", core.ColorBrightYellow)
		}
	case PhaseGameOver:
		drawGameOver(dst, s)
	}
}

func drawArena(dst *core.Screen, vp viewport, s Snapshot, sprites SpriteSource) {
	groundRow := vp.y(s.GroundY + s.Tile)
	if groundRow < dst.Height() {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, groundRow, GroundChar, core.ColorGray)
		}
	}

	for _, e := range s.Enemies {
		color := core.ColorMagenta
		if e.Attacking {
			color = core.ColorBrightMagenta
		}
		drawActor(dst, vp, core.NewRect(e.X, e.Y, e.Size, e.Size), e.Sprite(), EnemyChar, color, false, sprites)
	}

	p := s.Player
	drawActor(dst, vp, core.NewRect(p.X, p.Y, p.Size, p.Size), p.Sprite(), PlayerChar, core.ColorWhite, p.Dimmed(), sprites)

	if s.Debug {
		for _, e := range s.Enemies {
			dst.DrawBoxColored(vp.rect(e.Body), core.ColorRed)
			if !e.AttackBox.IsEmpty() {
				dst.DrawBoxColored(vp.rect(e.AttackBox), core.ColorYellow)
			}
		}
		dst.DrawBoxColored(vp.rect(p.Body), core.ColorGreen)
		if p.Attacking && !p.AttackBox.IsEmpty() {
			dst.DrawBoxColored(vp.rect(p.AttackBox), core.ColorYellow)
		}
	}
}

// drawActor paints sprite art when available and a solid block otherwise.
func drawActor(dst *core.Screen, vp viewport, bounds core.Rect, key SpriteKey, fill rune, color core.Color, dim bool, sprites SpriteSource) {
	r := vp.rect(bounds)
	if sprites != nil {
		if cells, ok := sprites.Cells(key, r.W, r.H); ok {
			for y, row := range cells {
				for x, c := range row {
					if c.Rune == ' ' {
						continue
					}
					if dim {
						c.Color = core.ColorGray
					}
					dst.SetColored(r.X+x, r.Y+y, c.Rune, c.Color)
				}
			}
			return
		}
	}
	if dim {
		fill = DimChar
		color = core.ColorGray
	}
	dst.FillRect(r, fill, color)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Lives: %d", s.Player.Lives), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
}

func drawMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "B R A W L E R", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, "Press ENTER to start", core.ColorDefault)
}

func drawGameOver(dst *core.Screen, s Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+2, "Press ENTER to return to the menu", core.ColorDefault)
}
