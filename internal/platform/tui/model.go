package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/temple-run/internal/core"
	"github.com/vovakirdan/temple-run/internal/storage"
)

// Game is the simulation the TUI drives.
type Game interface {
	ID() string
	Title() string
	Mode() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	Ticks() uint64
}

// ModelOptions tunes a GameModel.
type ModelOptions struct {
	// Logger receives game events at debug level and storage warnings.
	// Nil discards everything.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes frames.
	// Empty means ~/.temple/screenshots.
	ScreenshotDir string

	// Embedded models leave to the menu without quitting the program.
	Embedded bool
}

// GameModel is the Bubble Tea model for running the game.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	logger     *log.Logger
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	frame      uint64
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over was persisted
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(defaultHoldFirst, defaultHoldRepeat),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is resolution independent, only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Back):
		if m.gameState.Playing && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action, m.frame)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.frame++
	m.holds.Apply(&m.inputFrame, m.frame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) logEvents(events []core.Event) {
	for _, e := range events {
		if e.Kind == core.EventStart {
			m.holds.Reset()
		}
		m.logger.Debug("game event",
			"game", m.game.ID(),
			"mode", m.game.Mode(),
			"kind", e.Kind.String(),
			"tick", e.Tick,
			"value", e.Value,
		)
	}
}

// saveRun persists the finished run. Storage errors never stop the game.
func (m GameModel) saveRun() {
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Mode:   m.game.Mode(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Ticks:  m.game.Ticks(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "score", run.Score, "level", run.Level, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".temple", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the latest game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the game.
// Returns true if the user asked to go back to the menu rather than quit.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
