package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetris2048/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the embedded default config, a starting point for --config.

With --resolved the config that a game would actually use is printed,
after the search order and --difficulty are applied.

Examples:
  tetris2048 config > my-tetris2048.yaml
  tetris2048 config --resolved --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadTetris2048(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
