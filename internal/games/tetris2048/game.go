package tetris2048

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	ClassicID = "tetris2048"
	EndlessID = "tetris2048_endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	mode     Mode
	session  *Session
	settings Settings
	tick     uint64
	now      func() time.Time

	screenW  int
	screenH  int
	tooSmall bool

	lastLocked bool
}

// New creates a classic game that is won by reaching the win tile.
func New() *Game {
	return &Game{mode: ModeClassic, now: time.Now}
}

// NewEndless creates a game with no win state.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, now: time.Now}
}

func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}

// SetClock replaces the wall clock used for the fall timer.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return ClassicID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tetris 2048 (Endless)"
	}
	return "Tetris 2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris2048(configPath)
	if err != nil {
		gameCfg = config.DefaultTetris2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&gameCfg, difficultyPreset)
	}

	session, err := g.buildSession(gameCfg, cfg.Seed)
	if err != nil {
		session, err = g.buildSession(config.DefaultTetris2048Config(), cfg.Seed)
		if err != nil {
			panic(fmt.Sprintf("tetris2048: default config rejected: %v", err))
		}
	}
	g.session = session
	g.tick = 0
	g.lastLocked = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.session.Start(g.now())
}

// buildSession creates a session for the game's mode from cfg. The game's
// settings change only when the session is created.
func (g *Game) buildSession(cfg config.Tetris2048Config, seed int64) (*Session, error) {
	settings := SettingsFromConfig(cfg)
	if g.mode == ModeEndless {
		settings.WinValue = 0
	}
	session, err := NewSession(settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	g.settings = settings
	return session, nil
}

// Resize records a new terminal size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and panel.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.settings.Dims)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies at most one action, then runs the fall timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	now := g.now()
	g.apply(in.First(), now)
	g.lastLocked = g.session.Advance(now)

	return core.StepResult{State: g.State(), Locked: g.lastLocked}
}

func (g *Game) apply(a core.Action, now time.Time) {
	s := g.session
	switch a {
	case core.ActionPause:
		s.TogglePause(now)
	case core.ActionRestart:
		// R rotates during play and restarts otherwise
		if s.State() == StateFalling {
			s.Rotate()
		} else if s.State() == StatePaused || s.State().Terminal() {
			s.Restart(now)
		}
	case core.ActionRotate, core.ActionUp:
		s.Rotate()
	case core.ActionLeft:
		s.Move(DirLeft)
	case core.ActionRight:
		s.Move(DirRight)
	case core.ActionDown:
		s.Move(DirDown)
	case core.ActionHardDrop:
		s.HardDrop()
	case core.ActionHold:
		s.Hold()
	case core.ActionSpeedUp:
		s.SpeedUp()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     s.Score(),
		GameOver:  s.State().Terminal(),
		Won:       s.State() == StateWin,
		Paused:    s.State() == StatePaused || g.tooSmall,
		Level:     s.Level(),
		FallDelay: s.FallDelay(),
		MaxTile:   s.Grid().MaxTile(),
		Locks:     s.Locks(),
	}
}
