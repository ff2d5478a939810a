package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "brawler.yaml"

// LoadBrawler loads the game configuration.
// Search order: customPath -> ~/.brawler/brawler.yaml -> ./configs/brawler.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadBrawler(customPath string) (BrawlerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBrawlerYAML)
	if err != nil {
		return DefaultBrawlerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (BrawlerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBrawlerConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DefaultBrawlerConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg BrawlerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func parse(data []byte) (BrawlerConfig, error) {
	cfg := DefaultBrawlerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// UserDir returns ~/.brawler, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brawler")
}

// Validate reports every inconsistent value in the config.
func (c BrawlerConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %g", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("screen.tile_size", c.Screen.TileSize)
	if c.Screen.GroundY <= 0 || c.Screen.GroundY > c.Screen.Height {
		errs = append(errs, fmt.Errorf("screen.ground_y must be within (0,%d], got %d", c.Screen.Height, c.Screen.GroundY))
	}
	positive("animation.ticks_per_frame", c.Animation.TicksPerFrame)

	p := c.Player
	positive("player.lives", p.Lives)
	positive("player.speed", p.Speed)
	positive("player.run_frames", p.RunFrames)
	positive("player.attack_frames", p.AttackFrames)
	positive("player.attack_width", p.AttackWidth)
	positive("player.attack_height", p.AttackHeight)
	positive("player.attack_duration", p.AttackDuration)
	positive("player.invincible_ticks", p.InvincibleTicks)
	if p.PadX < 0 || p.PadY < 0 || 2*p.PadX >= c.Screen.TileSize || 2*p.PadY >= c.Screen.TileSize {
		errs = append(errs, fmt.Errorf("player padding (%d,%d) leaves no body inside a %d tile", p.PadX, p.PadY, c.Screen.TileSize))
	}
	if p.AttackStart < 0 || p.AttackStart >= p.AttackEnd || p.AttackEnd > p.AttackDuration {
		errs = append(errs, fmt.Errorf("player attack window (%d,%d) must lie inside duration %d", p.AttackStart, p.AttackEnd, p.AttackDuration))
	}

	e := c.Enemies
	positive("enemies.aggro_range", e.AggroRange)
	positive("enemies.attack_width", e.AttackWidth)
	positive("enemies.run_frames", e.RunFrames)
	positive("enemies.attack_frames", e.AttackFrames)
	positive("enemies.cooldown_ticks", e.CooldownTicks)
	for name, s := range map[string]EnemyStats{"male": e.Male, "female": e.Female} {
		positive("enemies."+name+".lives", s.Lives)
		positive("enemies."+name+".speed", s.Speed)
		if s.PadX < 0 || s.PadY < 0 || 2*s.PadX >= c.Screen.TileSize || 2*s.PadY >= c.Screen.TileSize {
			errs = append(errs, fmt.Errorf("enemies.%s padding (%d,%d) leaves no body inside a %d tile", name, s.PadX, s.PadY, c.Screen.TileSize))
		}
	}

	if c.Spawner.Cap < 0 {
		errs = append(errs, fmt.Errorf("spawner.cap must not be negative, got %d", c.Spawner.Cap))
	}
	if c.Spawner.Initial < 0 {
		errs = append(errs, fmt.Errorf("spawner.initial must not be negative, got %d", c.Spawner.Initial))
	}
	unit("spawner.chance", c.Spawner.Chance)
	if c.Scoring.KillBonus < 0 {
		errs = append(errs, fmt.Errorf("scoring.kill_bonus must not be negative, got %d", c.Scoring.KillBonus))
	}
	unit("audio.volume", c.Audio.Volume)
	unit("audio.swing_volume", c.Audio.SwingVolume)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
