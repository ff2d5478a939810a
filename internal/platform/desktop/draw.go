package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-brawler/internal/assets"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

const hudFontSize = 28

var (
	textColor    = color.White
	bodyColor    = color.RGBA{G: 255, A: 255}
	enemyColor   = color.RGBA{R: 255, A: 255}
	attackColor  = color.RGBA{R: 255, G: 255, A: 255}
	groundColor  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	shadeOverlay = color.RGBA{A: 160}
)

func loadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("desktop: parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("desktop: font face: %w", err)
	}
	return face, nil
}

// Draw paints the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.sess.Snapshot()

	w.drawBackground(screen, s)
	switch s.Phase {
	case brawler.PhaseMenu:
		w.drawLines(screen, s.WorldH/2-40, menuLines())
	case brawler.PhasePlaying:
		w.drawArena(screen, s)
		w.drawText(screen, fmt.Sprintf("Lives: %d", s.Player.Lives), 20, 40)
		w.drawText(screen, fmt.Sprintf("Score: %d", s.Score), s.WorldW-200, 40)
		if s.Paused {
			vector.DrawFilledRect(screen, 0, 0, float32(s.WorldW), float32(s.WorldH), shadeOverlay, false)
			w.drawLines(screen, s.WorldH/2, []string{"PAUSED - press P to resume"})
		}
	case brawler.PhaseGameOver:
		w.drawLines(screen, s.WorldH/2-40, gameOverLines(s.Score))
	}

	if s.Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d  enemies %d", ebiten.ActualTPS(), ebiten.ActualFPS(), s.Tick, len(s.Enemies)),
			4, s.WorldH-16)
	}
}

func menuLines() []string {
	return []string{"B R A W L E R", "", "Press ENTER to start"}
}

func gameOverLines(score int) []string {
	return []string{"GAME OVER", "", fmt.Sprintf("Final score: %d", score), "", "Press ENTER to return to the menu"}
}

func (w *Window) drawBackground(screen *ebiten.Image, s brawler.Snapshot) {
	if w.bg == nil && w.table != nil {
		if img, ok := w.table.Background(); ok {
			w.bg = ebiten.NewImageFromImage(img)
		}
	}
	if w.bg == nil {
		screen.Fill(assets.BackgroundColor)
		gy := float32(s.GroundY + s.Tile)
		vector.StrokeLine(screen, 0, gy, float32(s.WorldW), gy, 2, groundColor, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	b := w.bg.Bounds()
	op.GeoM.Scale(float64(s.WorldW)/float64(b.Dx()), float64(s.WorldH)/float64(b.Dy()))
	screen.DrawImage(w.bg, op)
}

func (w *Window) drawArena(screen *ebiten.Image, s brawler.Snapshot) {
	for _, e := range s.Enemies {
		w.drawActor(screen, e.X, e.Y, s.Tile, e.Sprite(), 1)
	}

	alpha := float32(1)
	if s.Player.Dimmed() {
		alpha = 0.5
	}
	w.drawActor(screen, s.Player.X, s.Player.Y, s.Tile, s.Player.Sprite(), alpha)

	if !s.Debug {
		return
	}
	strokeRect(screen, s.Player.Body, bodyColor)
	strokeRect(screen, s.Player.AttackBox, attackColor)
	for _, e := range s.Enemies {
		strokeRect(screen, e.Body, enemyColor)
		strokeRect(screen, e.AttackBox, attackColor)
	}
}

func (w *Window) drawActor(screen *ebiten.Image, x, y, size int, key brawler.SpriteKey, alpha float32) {
	img := w.sprite(key)
	if img == nil {
		c := color.RGBAModel.Convert(assets.PlaceholderColor(key.Actor)).(color.RGBA)
		c.A = uint8(float32(c.A) * alpha)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

// sprite returns the GPU image for key, uploading it on first use. Frames
// without art return nil.
func (w *Window) sprite(key brawler.SpriteKey) *ebiten.Image {
	if img, ok := w.sprites[key]; ok {
		return img
	}
	var img *ebiten.Image
	if w.table != nil && w.table.Has(key) {
		img = ebiten.NewImageFromImage(w.table.Image(key))
	}
	w.sprites[key] = img
	return img
}

func strokeRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.IsEmpty() {
		return
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c, false)
}

func (w *Window) drawText(screen *ebiten.Image, str string, x, y int) {
	if w.face == nil {
		ebitenutil.DebugPrintAt(screen, str, x, y)
		return
	}
	text.Draw(screen, str, w.face, x, y, textColor)
}

// drawLines centres each line horizontally, starting at y.
func (w *Window) drawLines(screen *ebiten.Image, y int, lines []string) {
	width := screen.Bounds().Dx()
	step := 16
	if w.face != nil {
		step = w.face.Metrics().Height.Ceil()
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := (width - textWidth(w.face, line)) / 2
		w.drawText(screen, line, x, y+i*step)
	}
}

func textWidth(face font.Face, s string) int {
	if face == nil {
		// debug font glyphs are 6px wide
		return len(s) * 6
	}
	return text.BoundString(face, s).Dx()
}
