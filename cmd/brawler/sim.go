package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/runner"
	"github.com/vovakirdan/tui-brawler/internal/session"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var (
	flagTicks     uint64
	flagAutopilot bool
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a screen or sound and print a summary.

Without --autopilot the player stands still after starting the first
run, which makes a quick smoke test of enemy behaviour. With --autopilot
a simple bot chases enemies, swings at them and jumps now and then.

The same --seed always produces the same summary.

Examples:
  brawler sim --ticks 3600 --seed 1
  brawler sim --ticks 216000 --seed 7 --autopilot
  brawler sim --ticks 600 --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let a bot play")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
}

// idle confirms every menu and otherwise does nothing.
type idle struct {
	view func() brawler.Snapshot
}

func (i idle) Frame() core.InputFrame {
	f := core.NewInputFrame()
	if i.view().Phase != brawler.PhasePlaying {
		f.Set(core.ActionConfirm)
	}
	return f
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	game, err := newGame(cfg, 80, 24)
	if err != nil {
		return err
	}

	store, err := storage.Open(storage.Memory)
	if err != nil {
		return err
	}
	defer store.Close()

	var input session.Source = idle{view: game.Snapshot}
	if flagAutopilot {
		input = session.NewAutopilot(game.Snapshot, flagSeed)
	}
	sess := session.New(game, input,
		session.WithStore(store),
		session.WithLogger(logger),
	)

	opts := []runner.Option{
		runner.WithTickRate(flagFPS),
		runner.WithLogger(logger),
		runner.WithMaxTicks(flagTicks),
	}
	if !flagRealtime {
		opts = append(opts, runner.Unthrottled())
	}
	run := runner.New(sess.Step, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	started := time.Now()
	if err := run.Run(ctx); err != nil {
		return err
	}

	return printSummary(cmd, sess, run, time.Since(started))
}

func printSummary(cmd *cobra.Command, sess *session.Session, run *runner.Runner, elapsed time.Duration) error {
	sum := sess.Summary()
	state := sess.State()
	stats := run.Stats()
	out := cmd.OutOrStdout()

	rec, err := sess.Record()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed:      %d\n", flagSeed)
	fmt.Fprintf(out, "Ticks:     %d (%d failed)\n", stats.Ticks, stats.Failures)
	fmt.Fprintf(out, "Game time: %s\n", (run.Interval() * time.Duration(stats.Ticks)).Round(time.Millisecond))
	fmt.Fprintf(out, "Wall time: %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "Runs:      %d finished\n", sum.Runs)
	fmt.Fprintf(out, "Kills:     %d\n", sum.Kills)
	fmt.Fprintf(out, "Best:      %d\n", sum.Best)
	fmt.Fprintf(out, "Current:   score %d, lives %d\n", state.Score, state.Lives)
	fmt.Fprintf(out, "Stored:    %d runs, best %d\n", rec.Runs, rec.Best)

	top, err := sess.TopScores(5)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Kills", "Ticks")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "-----")
	for i, e := range top {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %d\n", i+1, e.Score, e.Kills, e.Ticks)
	}
	return nil
}
