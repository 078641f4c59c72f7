package tetris2048

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris2048/internal/config"
)

// State is a phase of the session state machine.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StatePaused
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}

// Settings are the tunables of a single session.
type Settings struct {
	Dims              Dimensions
	Spawn4Probability float64
	WinValue          int // 0 disables the win state
	Speed             config.SpeedCurve
}

// SettingsFromConfig derives session settings from a loaded config.
func SettingsFromConfig(cfg config.Tetris2048Config) Settings {
	return Settings{
		Dims:              Dimensions{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		Spawn4Probability: cfg.Tiles.Spawn4Probability,
		WinValue:          cfg.Tiles.WinValue,
		Speed:             config.NewSpeedCurve(cfg),
	}
}

// Session drives one run: spawn, timed fall, lock, commit, next piece.
// It is not safe for concurrent use; callers feed it wall-clock times.
type Session struct {
	settings Settings
	rng      *rand.Rand

	grid    *Grid
	current *Piece
	next    *Piece
	held    *Piece
	canHold bool

	state     State
	level     int
	fallDelay time.Duration
	lastFall  time.Time
	pausedAt  time.Time

	locks int
	last  CommitReport
}

// NewSession creates a session in the spawning state. Call Start to drop the first piece.
func NewSession(settings Settings, rng *rand.Rand) (*Session, error) {
	if err := settings.Dims.Validate(); err != nil {
		return nil, fmt.Errorf("tetris2048: new session: %w", err)
	}
	s := &Session{settings: settings, rng: rng}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.grid = NewGrid(s.settings.Dims)
	s.current = nil
	s.held = nil
	s.next = s.randomPiece()
	s.canHold = true
	s.state = StateSpawning
	s.level = s.settings.Speed.StartLevel()
	s.fallDelay = s.settings.Speed.InitialDelay(s.level)
	s.locks = 0
	s.last = CommitReport{}
}

func (s *Session) randomPiece() *Piece {
	shape := Shapes[s.rng.Intn(len(Shapes))]
	p, err := NewPiece(shape, s.settings.Dims, s.rng, s.settings.Spawn4Probability)
	if err != nil {
		// Shapes only holds known shapes and dims were validated.
		panic(err)
	}
	return p
}

// Start spawns the first piece and starts the fall timer.
func (s *Session) Start(now time.Time) {
	if s.state == StateSpawning {
		s.spawn(now)
	}
}

// Restart discards all state and starts a new run.
func (s *Session) Restart(now time.Time) {
	s.reset()
	s.spawn(now)
}

func (s *Session) spawn(now time.Time) {
	s.current = s.next
	s.next = s.randomPiece()
	s.canHold = true
	s.lastFall = now
	s.state = StateFalling
}

// Advance runs the fall timer. When the interval has elapsed the piece
// moves down one row, or locks if it cannot. It reports whether a lock happened.
func (s *Session) Advance(now time.Time) bool {
	switch s.state {
	case StateSpawning:
		s.spawn(now)
		return false
	case StateFalling:
	default:
		return false
	}

	if now.Sub(s.lastFall) < s.fallDelay {
		return false
	}
	s.lastFall = now

	if s.current.Move(DirDown, s.grid) {
		return false
	}
	s.lock(now)
	return true
}

func (s *Session) lock(now time.Time) {
	s.state = StateLocking
	s.last = s.grid.Commit(s.current.Bounded())
	s.current = nil
	s.locks++

	switch {
	case s.settings.WinValue > 0 && s.grid.MaxTile() >= s.settings.WinValue:
		s.state = StateWin
	case s.grid.GameOver():
		s.state = StateGameOver
	default:
		s.fallDelay = s.settings.Speed.AfterLock(s.fallDelay)
		s.state = StateSpawning
		s.spawn(now)
	}
}

// Move shifts the falling piece one cell. Ignored outside the falling state.
func (s *Session) Move(dir Direction) bool {
	if s.state != StateFalling {
		return false
	}
	return s.current.Move(dir, s.grid)
}

// HardDrop moves the falling piece as far down as it goes and returns the
// number of rows travelled. The piece locks on the next timer expiry.
func (s *Session) HardDrop() int {
	if s.state != StateFalling {
		return 0
	}
	rows := 0
	for s.current.Move(DirDown, s.grid) {
		rows++
	}
	return rows
}

// Rotate turns the falling piece clockwise with wall kicks.
func (s *Session) Rotate() bool {
	if s.state != StateFalling {
		return false
	}
	return s.current.Rotate(s.grid)
}

// Hold swaps the falling piece with the held one, or stores it and takes the
// next piece when nothing is held. Allowed once per spawn.
func (s *Session) Hold() bool {
	if s.state != StateFalling || !s.canHold {
		return false
	}

	stored := s.current
	stored.Respawn()
	if s.held == nil {
		s.current = s.next
		s.next = s.randomPiece()
	} else {
		s.current = s.held
	}
	s.held = stored
	s.canHold = false
	return true
}

// TogglePause pauses a falling session or resumes a paused one. The fall
// timer does not advance while paused.
func (s *Session) TogglePause(now time.Time) bool {
	switch s.state {
	case StateFalling:
		s.state = StatePaused
		s.pausedAt = now
		return true
	case StatePaused:
		s.state = StateFalling
		s.lastFall = s.lastFall.Add(now.Sub(s.pausedAt))
		return true
	default:
		return false
	}
}

// SpeedUp raises the level by one, up to the maximum, and shortens the fall
// interval accordingly. Honoured while falling or paused.
func (s *Session) SpeedUp() bool {
	if s.state != StateFalling && s.state != StatePaused {
		return false
	}
	if s.level >= s.settings.Speed.MaxLevel() {
		return false
	}
	s.level++
	s.fallDelay = s.settings.Speed.DelayForLevel(s.level)
	return true
}

// Grid returns the committed board.
func (s *Session) Grid() *Grid { return s.grid }

// Current returns the falling piece, or nil between pieces and after the game ends.
func (s *Session) Current() *Piece { return s.current }

// Ghost returns the landing preview of the falling piece.
func (s *Session) Ghost() (Piece, bool) {
	if s.current == nil {
		return Piece{}, false
	}
	return s.current.Ghost(s.grid), true
}

// Next returns the queued piece.
func (s *Session) Next() *Piece { return s.next }

// Held returns the held piece, or nil.
func (s *Session) Held() *Piece { return s.held }

// CanHold reports whether Hold is available for the current piece.
func (s *Session) CanHold() bool { return s.canHold }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Level returns the speed level.
func (s *Session) Level() int { return s.level }

// FallDelay returns the current automatic fall interval.
func (s *Session) FallDelay() time.Duration { return s.fallDelay }

// Score returns the grid score.
func (s *Session) Score() int { return s.grid.Score() }

// Locks returns how many pieces have been committed this run.
func (s *Session) Locks() int { return s.locks }

// LastReport returns the report of the most recent commit.
func (s *Session) LastReport() CommitReport { return s.last }
