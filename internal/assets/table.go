package assets

import (
	"image"
	"image/color"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

// BackgroundPath is the arena backdrop, relative to the asset root.
const BackgroundPath = "background.png"

type cellKey struct {
	sprite brawler.SpriteKey
	w, h   int
}

// Table holds every sprite frame, loaded once at startup. It is safe for
// concurrent use by renderers.
type Table struct {
	frames       map[brawler.SpriteKey]image.Image
	placeholders map[string]image.Image
	background   image.Image
	hasBG        bool
	missing      int

	mu    sync.Mutex
	cells map[cellKey][][]core.Cell
}

// strip describes one animation strip to load.
type strip struct {
	actor  string
	pose   brawler.Pose
	frames int
}

// LoadTable reads every sprite the game can ask for from fsys. Missing
// files are logged and replaced by placeholders.
func LoadTable(fsys fs.FS, cfg config.BrawlerConfig, logger *log.Logger) *Table {
	t := &Table{
		frames: make(map[brawler.SpriteKey]image.Image),
		placeholders: map[string]image.Image{
			brawler.ActorPlayer:      Placeholder(PlayerPlaceholder),
			brawler.ActorEnemyMale:   Placeholder(EnemyPlaceholder),
			brawler.ActorEnemyFemale: Placeholder(EnemyPlaceholder),
		},
		cells: make(map[cellKey][][]core.Cell),
	}

	strips := []strip{
		{brawler.ActorPlayer, brawler.PoseRun, cfg.Player.RunFrames},
		{brawler.ActorPlayer, brawler.PoseAttack, cfg.Player.AttackFrames},
		{brawler.ActorEnemyMale, brawler.PoseRun, cfg.Enemies.RunFrames},
		{brawler.ActorEnemyMale, brawler.PoseAttack, cfg.Enemies.AttackFrames},
		{brawler.ActorEnemyFemale, brawler.PoseRun, cfg.Enemies.RunFrames},
		{brawler.ActorEnemyFemale, brawler.PoseAttack, cfg.Enemies.AttackFrames},
	}

	for _, s := range strips {
		for _, facing := range []brawler.Facing{brawler.FacingLeft, brawler.FacingRight} {
			for i := 0; i < s.frames; i++ {
				key := brawler.SpriteKey{Actor: s.actor, Pose: s.pose, Facing: facing, Frame: i}
				img, ok := LoadImage(fsys, key.Path())
				if !ok {
					t.missing++
					logger.Debug("sprite missing", "path", key.Path())
					continue
				}
				t.frames[key] = img
			}
		}
	}

	if img, ok := LoadImage(fsys, BackgroundPath); ok {
		t.background = img
		t.hasBG = true
	} else {
		t.background = Placeholder(BackgroundColor)
		logger.Debug("background missing", "path", BackgroundPath)
	}

	if t.missing > 0 {
		logger.Warn("sprites missing, using placeholders", "missing", t.missing, "loaded", len(t.frames))
	} else {
		logger.Info("sprites loaded", "frames", len(t.frames))
	}
	return t
}

// Image returns the frame for key, or the actor's placeholder.
func (t *Table) Image(key brawler.SpriteKey) image.Image {
	if img, ok := t.frames[key]; ok {
		return img
	}
	if img, ok := t.placeholders[key.Actor]; ok {
		return img
	}
	return Placeholder(PlayerPlaceholder)
}

// Has reports whether real art was loaded for key.
func (t *Table) Has(key brawler.SpriteKey) bool {
	_, ok := t.frames[key]
	return ok
}

// Background returns the backdrop and whether it was loaded from disk.
func (t *Table) Background() (image.Image, bool) {
	return t.background, t.hasBG
}

// Missing returns how many sprite frames fell back to placeholders.
func (t *Table) Missing() int {
	return t.missing
}

// Loaded returns how many sprite frames were decoded.
func (t *Table) Loaded() int {
	return len(t.frames)
}

// Cells returns key scaled to w×h terminal cells. It reports false when
// no art was loaded so the caller can draw its own placeholder.
func (t *Table) Cells(key brawler.SpriteKey, w, h int) ([][]core.Cell, bool) {
	img, ok := t.frames[key]
	if !ok || w <= 0 || h <= 0 {
		return nil, false
	}

	ck := cellKey{sprite: key, w: w, h: h}
	t.mu.Lock()
	defer t.mu.Unlock()
	if cells, ok := t.cells[ck]; ok {
		return cells, true
	}
	cells := CellSprite(img, w, h)
	t.cells[ck] = cells
	return cells, true
}

// PlaceholderColor returns the flat color used for an actor without art.
func PlaceholderColor(actor string) color.Color {
	if actor == brawler.ActorPlayer {
		return PlayerPlaceholder
	}
	return EnemyPlaceholder
}
