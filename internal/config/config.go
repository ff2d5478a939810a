// Package config provides YAML-based configuration loading and validation
// for the brawler simulation and its front ends.
package config

// BrawlerConfig contains every tunable constant of the game.
type BrawlerConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
	GroundY  int `yaml:"ground_y"`
}

// PhysicsConfig defines vertical movement. Negative values point up.
type PhysicsConfig struct {
	Gravity       int `yaml:"gravity"`
	JumpImpulse   int `yaml:"jump_impulse"`
	BounceImpulse int `yaml:"bounce_impulse"`
}

// AnimationConfig defines sprite frame pacing shared by all actors.
type AnimationConfig struct {
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	SpawnX          int `yaml:"spawn_x"`
	SpawnY          int `yaml:"spawn_y"`
	Lives           int `yaml:"lives"`
	Speed           int `yaml:"speed"`
	PadX            int `yaml:"pad_x"`
	PadY            int `yaml:"pad_y"`
	RunFrames       int `yaml:"run_frames"`
	AttackFrames    int `yaml:"attack_frames"`
	AttackWidth     int `yaml:"attack_width"`
	AttackHeight    int `yaml:"attack_height"`
	AttackStart     int `yaml:"attack_start"`    // hitbox active while timer > start
	AttackEnd       int `yaml:"attack_end"`      // and timer < end
	AttackDuration  int `yaml:"attack_duration"` // attack ends once timer exceeds this
	InvincibleTicks int `yaml:"invincible_ticks"`
}

// EnemiesConfig defines behaviour shared by every enemy and per-variant stats.
type EnemiesConfig struct {
	AggroRange    int        `yaml:"aggro_range"`
	AttackWidth   int        `yaml:"attack_width"`
	RunFrames     int        `yaml:"run_frames"`
	AttackFrames  int        `yaml:"attack_frames"`
	CooldownTicks int        `yaml:"cooldown_ticks"`
	Male          EnemyStats `yaml:"male"`
	Female        EnemyStats `yaml:"female"`
}

// EnemyStats is the only thing that differs between enemy variants.
type EnemyStats struct {
	Lives int `yaml:"lives"`
	Speed int `yaml:"speed"`
	PadX  int `yaml:"pad_x"`
	PadY  int `yaml:"pad_y"`
}

// SpawnerConfig controls enemy population.
type SpawnerConfig struct {
	Initial int     `yaml:"initial"`
	Cap     int     `yaml:"cap"`
	Chance  float64 `yaml:"chance"` // per tick, 0..1
}

// ScoringConfig controls score and hit rules.
type ScoringConfig struct {
	KillBonus  int  `yaml:"kill_bonus"`
	DedupeHits bool `yaml:"dedupe_hits"`
}

// AudioConfig controls the sound collaborator.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	SwingVolume float64 `yaml:"swing_volume"`
	Dir         string  `yaml:"dir"`
}

// AssetsConfig controls where sprites are read from.
type AssetsConfig struct {
	Root string `yaml:"root"`
}
