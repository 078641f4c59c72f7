package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/registry"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without restarting the run.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a single game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	palette    *Palette
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	runID       string
	resultSaved bool // Whether the current run has been written to the store

	embedded   bool // Back returns to a parent model instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.Default(),
		palette:    defaultPalette,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithPalette returns a copy of the model that renders with p.
func (m Model) WithPalette(p *Palette) Model {
	if p != nil {
		m.palette = p
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finishRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.finishRun(storage.OutcomeQuit)
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Restarts happen inside the game; a fresh run shows up as a reset counter.
	if m.gameState.Locks < prev.Locks || (prev.GameOver && !m.gameState.GameOver) {
		m.saveResult(prev, storage.OutcomeQuit)
		m.runID = uuid.NewString()
		m.resultSaved = false
	}

	if m.gameState.GameOver {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveResult(m.gameState, outcome)
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun stores the current run if it has not been stored yet.
func (m *Model) finishRun(outcome storage.Outcome) {
	m.saveResult(m.gameState, outcome)
}

// saveResult writes a run once. Runs without any score are skipped.
func (m *Model) saveResult(st core.GameState, outcome storage.Outcome) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true
	if m.store == nil || st.Score <= 0 {
		return
	}

	_, err := m.store.SaveResult(storage.RunResult{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Level:   st.Level,
		Locks:   st.Locks,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Error("could not save result", "game", m.game.ID(), "run", m.runID, "error", err)
		return
	}
	m.logger.Debug("result saved", "game", m.game.ID(), "score", st.Score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("no home directory for screenshots", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not write screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the identifier of the run in progress.
func (m Model) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
