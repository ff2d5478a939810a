package config

import (
	_ "embed"
)

//go:embed defaults/brawler.yaml
var defaultBrawlerYAML []byte

// DefaultBrawlerConfig returns the built-in configuration.
func DefaultBrawlerConfig() BrawlerConfig {
	return BrawlerConfig{
		Screen: ScreenConfig{
			Width:    1024,
			Height:   768,
			TileSize: 112,
			GroundY:  600,
		},
		Physics: PhysicsConfig{
			Gravity:       1,
			JumpImpulse:   -20,
			BounceImpulse: -10,
		},
		Animation: AnimationConfig{
			TicksPerFrame: 3,
		},
		Player: PlayerConfig{
			SpawnX:          100,
			SpawnY:          600,
			Lives:           3,
			Speed:           4,
			PadX:            20,
			PadY:            16,
			RunFrames:       12,
			AttackFrames:    10,
			AttackWidth:     30,
			AttackHeight:    20,
			AttackStart:     12,
			AttackEnd:       24,
			AttackDuration:  30,
			InvincibleTicks: 60,
		},
		Enemies: EnemiesConfig{
			AggroRange:    50,
			AttackWidth:   30,
			RunFrames:     12,
			AttackFrames:  10,
			CooldownTicks: 60,
			Male:          EnemyStats{Lives: 2, Speed: 3, PadX: 25, PadY: 20},
			Female:        EnemyStats{Lives: 1, Speed: 4, PadX: 25, PadY: 20},
		},
		Spawner: SpawnerConfig{
			Initial: 2,
			Cap:     2,
			Chance:  0.01,
		},
		Scoring: ScoringConfig{
			KillBonus:  100,
			DedupeHits: false,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      1.0,
			SwingVolume: 0.8,
			Dir:         "sounds",
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
	}
}

// GetDefaultYAML returns the embedded default config as YAML bytes.
func GetDefaultYAML() []byte {
	return defaultBrawlerYAML
}
