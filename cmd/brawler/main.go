// brawler is a side-scrolling brawler for the terminal and the desktop.
//
// Usage:
//
//	brawler play             - Play in the terminal
//	brawler window           - Play in a desktop window
//	brawler sim              - Run the simulation headless and print a summary
//	brawler config           - Print or check the configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Where the terminal front end writes its log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagAssets   string
	flagDebug    bool
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brawler",
	Short: "Brawler - fight off waves of enemies",
	Long: `Brawler is a real-time side-scrolling brawler. Walk, jump and swing
at the enemies that keep coming from both sides of the arena. Land on
an enemy to stomp it, swing at it to knock it down, and avoid getting
hit: you only have three lives.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run the simulation headless
  config   - Print or check the configuration

Examples:
  brawler play
  brawler window --debug
  brawler sim --ticks 36000 --seed 7 --autopilot
  brawler config --check ./my-brawler.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a brawler config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the terminal front end (default ~/.brawler/brawler.log)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides the config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the hitbox overlay on")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
