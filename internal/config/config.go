// Package config provides YAML-based game configuration loading and
// speed progression for Tetris 2048.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tetris2048Config contains all configuration for the Tetris 2048 game.
type Tetris2048Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Tiles      TileConfig       `yaml:"tiles"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TileConfig defines tile generation and the winning tile.
type TileConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Probability of a 4 instead of a 2
	WinValue          int     `yaml:"win_value"`          // Tile value that wins the classic mode
}

// SpeedConfig defines the automatic fall interval and how it shrinks.
type SpeedConfig struct {
	InitialDelayMS   int     `yaml:"initial_delay_ms"`    // Fall interval at level 1
	LockDecay        float64 `yaml:"lock_decay"`          // Multiplier applied to the interval after each lock
	LockDecayFloorMS int     `yaml:"lock_decay_floor_ms"` // Per-lock decay stops at this interval
	LevelDecay       float64 `yaml:"level_decay"`         // Interval = initial * level_decay^level
	LevelFloorMS     int     `yaml:"level_floor_ms"`      // Shortest interval reachable by levelling up
	MaxLevel         int     `yaml:"max_level"`
	StartLevel       int     `yaml:"start_level"`
}

// DifficultyConfig toggles progression features.
type DifficultyConfig struct {
	LockDecayEnabled bool `yaml:"lock_decay_enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty strings
// return an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartLevelForPreset returns the starting speed level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Tetris2048Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.LockDecayEnabled = false
		cfg.Speed.StartLevel = 1
	default:
		cfg.Difficulty.LockDecayEnabled = true
		cfg.Speed.StartLevel = StartLevelForPreset(preset)
	}
}

// Validate checks that the configuration describes a playable game.
func (c Tetris2048Config) Validate() error {
	switch {
	case c.Grid.Width < 4 || c.Grid.Height < 4:
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Tiles.Spawn4Probability < 0 || c.Tiles.Spawn4Probability > 1:
		return fmt.Errorf("%w: spawn4_probability %v outside [0, 1]", ErrInvalidConfig, c.Tiles.Spawn4Probability)
	case c.Tiles.WinValue < 0:
		return fmt.Errorf("%w: negative win_value %d", ErrInvalidConfig, c.Tiles.WinValue)
	case c.Speed.InitialDelayMS <= 0 || c.Speed.LevelFloorMS <= 0:
		return fmt.Errorf("%w: fall delays must be positive", ErrInvalidConfig)
	case c.Speed.LevelDecay <= 0 || c.Speed.LevelDecay > 1:
		return fmt.Errorf("%w: level_decay %v outside (0, 1]", ErrInvalidConfig, c.Speed.LevelDecay)
	case c.Speed.LockDecay <= 0 || c.Speed.LockDecay > 1:
		return fmt.Errorf("%w: lock_decay %v outside (0, 1]", ErrInvalidConfig, c.Speed.LockDecay)
	case c.Speed.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be at least 1", ErrInvalidConfig)
	}
	return nil
}
