package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// testConfig returns the default config with random spawning disabled.
func testConfig() config.BrawlerConfig {
	cfg := config.DefaultBrawlerConfig()
	cfg.Spawner.Chance = 0
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// startedGame returns a game already in the playing phase with no enemies.
func startedGame(cfg config.BrawlerConfig) *Game {
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(input(core.ActionConfirm))
	g.enemies = nil
	return g
}
