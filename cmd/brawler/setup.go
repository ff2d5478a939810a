package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/assets"
	"github.com/vovakirdan/tui-brawler/internal/audio"
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brawler",
		Level:           level,
	}), nil
}

// openLogFile opens the terminal front end's log, creating its directory.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, "brawler.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadConfig resolves the effective config and applies flag overrides.
func loadConfig() (config.BrawlerConfig, error) {
	cfg, err := config.LoadBrawler(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagAssets != "" {
		cfg.Assets.Root = flagAssets
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newGame creates the registered brawler game and resets it.
func newGame(cfg config.BrawlerConfig, screenW, screenH int) (*brawler.Game, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	brawler.SetConfig(cfg)
	g, err := registry.Create("brawler", core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagFPS,
		Seed:     seed,
	})
	if err != nil {
		return nil, err
	}
	game, ok := g.(*brawler.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected game type %T", g)
	}
	game.SetDebug(flagDebug)
	return game, nil
}

// collaborators are the resources shared by the interactive front ends.
type collaborators struct {
	table *assets.Table
	bank  *audio.Bank
	store *storage.Store
}

func (c collaborators) Close() {
	c.bank.Close()
	if c.store != nil {
		c.store.Close()
	}
}

// openCollaborators loads art and sound and opens the session scoreboard.
// Nothing here is fatal: missing pieces degrade to placeholders, silence
// or no scoreboard.
func openCollaborators(cfg config.BrawlerConfig, logger *log.Logger) collaborators {
	fsys := os.DirFS(cfg.Assets.Root)

	table := assets.LoadTable(fsys, cfg, logger)

	var out audio.Output
	if cfg.Audio.Enabled {
		o, err := audio.OpenSpeaker()
		if err != nil {
			logger.Warn("no audio device, playing silence", "err", err)
		} else {
			out = o
		}
	}
	bank := audio.NewBank(fsys, cfg.Audio, out, logger)

	store, err := storage.Open(storage.Memory)
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	}

	return collaborators{table: table, bank: bank, store: store}
}
