// tetris2048 is a falling-block game for the terminal where stacked tiles of
// equal value merge like in 2048.
//
// Usage:
//
//	tetris2048 play [mode]      - Play a mode (default: tetris2048)
//	tetris2048 menu             - Start menu with modes and high scores
//	tetris2048 list             - List available modes
//	tetris2048 scores [mode]    - Show high scores for a mode
//	tetris2048 serve            - Start SSH server for remote play
//	tetris2048 config           - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris2048/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris2048",
	Short: "Tetris 2048 - falling blocks that merge like 2048",
	Long: `Tetris 2048 drops pieces made of numbered tiles. When a piece lands,
equal tiles stacked in a column merge, full rows clear, and tiles left
floating with no path to the floor are removed. Reach 2048 to win.

Available commands:
  play     - Play a mode directly
  menu     - Interactive start menu
  list     - Show all modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default config

Examples:
  tetris2048 play
  tetris2048 play tetris2048_endless --difficulty hard
  tetris2048 menu
  tetris2048 serve --ssh :2222
  tetris2048 scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and hands the game flags to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris2048",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("invalid --difficulty %q: expected easy, normal, hard or fixed", flagDifficulty)
	}
	tetris2048.SetDifficultyPreset(flagDifficulty)

	tetris2048.SetConfigPath(flagConfig)
	if flagConfig != "" {
		if _, err := config.LoadTetris2048(flagConfig); err != nil {
			logger.Warn("using default game config", "path", flagConfig, "error", err)
		}
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
