// Package assets loads sprite art. Loading never fails: anything that is
// missing or cannot be decoded is replaced by a flat placeholder.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
)

// PlaceholderSize is the edge length of placeholder images in pixels.
const PlaceholderSize = 16

// Placeholder colors, matching the solid blocks drawn when art is missing.
var (
	PlayerPlaceholder = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	EnemyPlaceholder  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BackgroundColor   = color.RGBA{A: 255}
)

// Placeholder returns a square image filled with c.
func Placeholder(c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Decode reads and decodes a PNG or BMP image from fsys.
func Decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage returns the decoded image and true, or a white placeholder and
// false when the file is missing or corrupt.
func LoadImage(fsys fs.FS, path string) (image.Image, bool) {
	if fsys == nil {
		return Placeholder(PlayerPlaceholder), false
	}
	img, err := Decode(fsys, path)
	if err != nil {
		return Placeholder(PlayerPlaceholder), false
	}
	return img, true
}
