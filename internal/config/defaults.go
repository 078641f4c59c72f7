package config

import (
	_ "embed"
)

//go:embed defaults/tetris2048.yaml
var defaultTetris2048YAML []byte

// DefaultTetris2048Config returns the default Tetris 2048 configuration.
func DefaultTetris2048Config() Tetris2048Config {
	return Tetris2048Config{
		Grid: GridConfig{
			Width:  12,
			Height: 20,
		},
		Tiles: TileConfig{
			Spawn4Probability: 0.10,
			WinValue:          2048,
		},
		Speed: SpeedConfig{
			InitialDelayMS:   500,
			LockDecay:        0.98,
			LockDecayFloorMS: 100,
			LevelDecay:       0.9,
			LevelFloorMS:     50,
			MaxLevel:         15,
			StartLevel:       1,
		},
		Difficulty: DifficultyConfig{
			LockDecayEnabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetris2048YAML
}
