package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// ModelOptions carries host details that are not part of the game.
type ModelOptions struct {
	Player        string      // Name recorded with each run
	Difficulty    string      // Preset name recorded with each run
	ScreenshotDir string      // Defaults to ~/.runner/screenshots
	Logger        *log.Logger // Defaults to a discarding logger
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	clock      frameClock
	duck       DuckHold
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *ScoreboardModel // Non-nil while the scoreboard is open
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		clock:      newFrameClock(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldHeight leaves the last terminal row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.gameState = m.game.State()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.opts.Player)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.handleBoardKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		board.Highlight(m.lastRunID)
		m.board = &board
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionDuck:
		if m.duck.Press() {
			m.inputFrame.Set(core.ActionDuck)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleBoardKey forwards keys to the open scoreboard.
func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	m.board = &board

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	return m, cmd
}

// handleResize processes window resize events. The game keeps running;
// only the viewport changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width

	if m.board != nil {
		next, _ := m.board.Update(msg)
		if board, ok := next.(ScoreboardModel); ok {
			m.board = &board
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(now)

	// The game is held while the scoreboard covers it.
	if m.board != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.duck.Tick(dt) {
		m.inputFrame.Set(core.ActionDuckRelease)
	}

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the run that just ended. Failures are logged; the game
// continues regardless.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(m.opts.Player, m.opts.Difficulty, m.gameState.Score, m.gameState.RunTime)
	if err != nil {
		m.logger.Warn("could not save run", "score", m.gameState.Score, "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "run_id", id, "score", m.gameState.Score, "duration", m.gameState.RunTime)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".runner", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the state observed at the last tick.
func (m *Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
