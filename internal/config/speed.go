package config

import (
	"math"
	"time"
)

// SpeedCurve calculates the automatic fall interval from the speed level
// and the number of pieces locked so far.
type SpeedCurve struct {
	cfg       SpeedConfig
	lockDecay bool
}

// NewSpeedCurve creates a speed curve from the game configuration.
func NewSpeedCurve(cfg Tetris2048Config) SpeedCurve {
	return SpeedCurve{
		cfg:       cfg.Speed,
		lockDecay: cfg.Difficulty.LockDecayEnabled,
	}
}

// MaxLevel returns the highest reachable speed level.
func (c SpeedCurve) MaxLevel() int {
	return c.cfg.MaxLevel
}

// StartLevel returns the configured starting level clamped to [1, MaxLevel].
func (c SpeedCurve) StartLevel() int {
	level := c.cfg.StartLevel
	if level < 1 {
		level = 1
	}
	if level > c.cfg.MaxLevel {
		level = c.cfg.MaxLevel
	}
	return level
}

// InitialDelay returns the fall interval for a fresh game at the given level.
// Level 1 always starts at the initial delay.
func (c SpeedCurve) InitialDelay(level int) time.Duration {
	if level <= 1 {
		return ms(float64(c.cfg.InitialDelayMS))
	}
	return c.DelayForLevel(level)
}

// DelayForLevel returns max(floor, initial * decay^level).
func (c SpeedCurve) DelayForLevel(level int) time.Duration {
	d := float64(c.cfg.InitialDelayMS) * math.Pow(c.cfg.LevelDecay, float64(level))
	return ms(math.Max(float64(c.cfg.LevelFloorMS), d))
}

// AfterLock applies the per-lock decay to the current interval.
// The decay only applies while the interval is above the lock decay floor.
func (c SpeedCurve) AfterLock(current time.Duration) time.Duration {
	if !c.lockDecay {
		return current
	}
	if current <= ms(float64(c.cfg.LockDecayFloorMS)) {
		return current
	}
	return time.Duration(math.Round(float64(current) * c.cfg.LockDecay))
}

func ms(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Millisecond)))
}
