package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/registry"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the best results for the given mode (tetris2048 when omitted).

Examples:
  tetris2048 scores
  tetris2048 scores tetris2048_endless --limit 20
  tetris2048 scores --clear
  tetris2048 scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagScoresAll {
		return runScoresSummary()
	}

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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s\n", game.Title())
		return nil
	}

	results, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-7s  %s\n", "Rank", "Score", "Max Tile", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-7s  %s\n", "----", "-----", "--------", "-----", "-------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-8d  %-5d  %-7s  %s\n",
			i+1, r.Score, r.MaxTile, r.Level, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "game", gameID, "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Best tile: %d  Played: %d  Won: %d  Average: %.0f\n",
		stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}

func runScoresSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-20s  %-6s  %-4s  %-8s  %-8s  %s\n", "Mode", "Played", "Won", "Best", "Max Tile", "Last Played")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			fmt.Printf("  %-20s  %-6d  %-4d  %-8s  %-8s  %s\n", info.ID, 0, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-20s  %-6d  %-4d  %-8d  %-8d  %s\n",
			info.ID, st.GamesCount, st.Wins, st.HighScore, st.BestTile, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
