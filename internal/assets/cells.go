package assets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// SpriteRune is the glyph used for opaque sprite cells.
const SpriteRune = '█'

// alphaCutoff is the 16-bit alpha below which a pixel is transparent.
const alphaCutoff = 0x8000

// CellSprite scales img down to w×h terminal cells. Transparent pixels
// become blank cells; opaque ones take the nearest palette color.
func CellSprite(img image.Image, w, h int) [][]core.Cell {
	if w <= 0 || h <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	cells := make([][]core.Cell, h)
	for y := 0; y < h; y++ {
		row := make([]core.Cell, w)
		for x := 0; x < w; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			if a < alphaCutoff {
				row[x] = core.Cell{Rune: ' ', Color: core.ColorDefault}
				continue
			}
			// Undo premultiplication before matching.
			r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
			row[x] = core.Cell{
				Rune:  SpriteRune,
				Color: core.NearestColor(uint8(r>>8), uint8(g>>8), uint8(b>>8)),
			}
		}
		cells[y] = row
	}
	return cells
}
