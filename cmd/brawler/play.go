package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brawler/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a brawler session in the terminal.

Controls:
  Left/A, Right/D  - Walk
  Up/W             - Jump (land on an enemy to stomp it)
  Space/X          - Attack
  Enter            - Start / back to the menu after game over
  P/Esc            - Pause
  F1/` + "`" + `             - Toggle hitbox overlay
  Tab              - Session scores
  ?                - Full help
  Q/Ctrl+C         - Quit

Terminals do not report key release, so a key counts as held for a short
moment after each press or key repeat.

Examples:
  brawler play
  brawler play --seed 42 --mute
  brawler play --config ./my-brawler.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the alternate screen, so logs go to a file
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := newGame(cfg, width, height)
	if err != nil {
		return err
	}

	res := openCollaborators(cfg, logger)
	defer res.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("session started", "front_end", "terminal", "fps", flagFPS, "size", [2]int{width, height})
	return tui.Run(ctx, game, tui.Options{
		Bank:     res.bank,
		Store:    res.store,
		Sprites:  res.table,
		Logger:   logger,
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
	})
}
