package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/platform/tui"
	"github.com/vovakirdan/tetris2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (tetris2048 when omitted).

Controls:
  Left/Right   - Move piece
  Down         - Soft drop
  Space        - Hard drop
  Up/R         - Rotate (R restarts while paused or after the game ends)
  H            - Hold piece
  P            - Pause
  F            - Speed up
  Esc/B        - Leave (while paused or after the game ends)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Keep the starting delay, no per-lock speed-up

Examples:
  tetris2048 play
  tetris2048 play tetris2048_endless
  tetris2048 play --difficulty hard
  tetris2048 play --config ./my-tetris2048.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris2048.ClassicID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Has(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris2048 list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "seed", cfg.Seed)

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
