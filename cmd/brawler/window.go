package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a brawler session in a desktop window.

Controls:
  Left/A, Right/D  - Walk
  Up/W             - Jump
  Space/X          - Attack
  Enter            - Start / back to the menu after game over
  P                - Pause
  F1               - Toggle hitbox overlay
  Esc/Q            - Quit

Examples:
  brawler window
  brawler window --assets ./assets --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game, err := newGame(cfg, cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return err
	}

	res := openCollaborators(cfg, logger)
	defer res.Close()

	logger.Info("session started", "front_end", "window", "fps", flagFPS,
		"sprites", res.table.Loaded(), "missing", res.table.Missing())
	return desktop.Run(cmd.Context(), game, desktop.Options{
		Bank:     res.bank,
		Store:    res.store,
		Table:    res.table,
		Logger:   logger,
		TickRate: flagFPS,
	})
}
