package brawler

import (
	"math/rand"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

// Spawner decides when and where enemies enter the arena.
type Spawner struct {
	rng *rand.Rand
	cfg config.BrawlerConfig
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(cfg config.BrawlerConfig, seed int64) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// ShouldSpawn rolls the per-tick trigger. The RNG is only consulted while
// the population is below the cap.
func (s *Spawner) ShouldSpawn(active int) bool {
	if active >= s.cfg.Spawner.Cap {
		return false
	}
	return s.rng.Float64() < s.cfg.Spawner.Chance
}

// Spawn creates an enemy of a random variant just off a random screen edge.
func (s *Spawner) Spawn() *Enemy {
	v := VariantMale
	if s.rng.Intn(2) == 1 {
		v = VariantFemale
	}
	x := -s.cfg.Screen.TileSize
	if s.rng.Intn(2) == 1 {
		x = s.cfg.Screen.Width + s.cfg.Screen.TileSize
	}
	return NewEnemy(s.cfg, v, x, s.cfg.Screen.GroundY)
}
