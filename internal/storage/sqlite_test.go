package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("tetris2048", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("tetris2048_endless", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("tetris2048", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		assert.Equal(t, want, scores[i].Score, "scores[%d]", i)
		assert.NotEmpty(t, scores[i].RunID, "scores[%d] run id", i)
	}

	endless, err := store.TopScores("tetris2048_endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1)
}

func TestStoreSaveResultFields(t *testing.T) {
	store := openTestStore(t)

	in := RunResult{
		RunID:   "run-1",
		GameID:  "tetris2048",
		Score:   4096,
		MaxTile: 2048,
		Level:   7,
		Locks:   143,
		Outcome: OutcomeWon,
	}
	_, err := store.SaveResult(in)
	require.NoError(t, err)

	got, err := store.ResultByRunID("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.Score, got.Score)
	assert.Equal(t, in.MaxTile, got.MaxTile)
	assert.Equal(t, in.Level, got.Level)
	assert.Equal(t, in.Locks, got.Locks)
	assert.Equal(t, OutcomeWon, got.Outcome)

	missing, err := store.ResultByRunID("nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	r := RunResult{RunID: "same", GameID: "tetris2048", Score: 10}
	_, err := store.SaveResult(r)
	require.NoError(t, err)
	_, err = store.SaveResult(r)
	assert.Error(t, err, "saving the same run twice")
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	got := []int{scores[0].Score, scores[1].Score, scores[2].Score}
	assert.Equal(t, []int{500, 400, 300}, got)
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(RunResult{GameID: "test", Score: 100, MaxTile: 32})
	store.SaveResult(RunResult{GameID: "test", Score: 100, MaxTile: 128})

	scores, err := store.TopScores("test", 10)
	require.NoError(t, err)
	require.NotEmpty(t, scores)
	assert.Equal(t, 128, scores[0].MaxTile, "equal scores rank the larger tile first")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris2048")
	require.NoError(t, err)
	assert.Zero(t, high)

	store.SaveScore("tetris2048", 100)
	store.SaveScore("tetris2048", 300)
	store.SaveScore("tetris2048", 200)

	high, err = store.HighScore("tetris2048")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris2048", 100)
	store.SaveScore("tetris2048", 200)
	store.SaveScore("tetris2048_endless", 300)

	require.NoError(t, store.ClearScores("tetris2048"))

	classic, _ := store.TopScores("tetris2048", 10)
	assert.Empty(t, classic)

	endless, _ := store.TopScores("tetris2048_endless", 10)
	assert.Len(t, endless, 1, "other modes are untouched")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris2048")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveResult(RunResult{GameID: "tetris2048", Score: 100, MaxTile: 64, Outcome: OutcomeLost})
	store.SaveResult(RunResult{GameID: "tetris2048", Score: 300, MaxTile: 2048, Outcome: OutcomeWon})
	store.SaveResult(RunResult{GameID: "tetris2048_endless", Score: 50, MaxTile: 16, Outcome: OutcomeQuit})

	stats, err := store.GetGameStats("tetris2048")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 2048, stats.BestTile)
	assert.InDelta(t, 200, stats.AvgScore, 0.001)
	assert.Equal(t, int64(400), stats.TotalScore)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Contains(t, all, "tetris2048_endless")
	assert.Zero(t, all["tetris2048_endless"].Wins)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}
