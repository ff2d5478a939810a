package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

var (
	flagCheck    string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the configuration",
	Long: `Print the effective configuration as YAML, or validate a config file.

The configuration is looked up in this order:
  1. --config <path>
  2. ~/.brawler/brawler.yaml
  3. ./configs/brawler.yaml
  4. built-in defaults

A file only needs the values it changes; everything else keeps its default.

Examples:
  brawler config                       # effective config
  brawler config --defaults > my.yaml  # starting point for a custom file
  brawler config --check ./my.yaml     # validate without playing`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate the given config file and exit")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagCheck != "" {
		if _, err := config.LoadFile(flagCheck); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: ok\n", flagCheck)
		return nil
	}

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
