package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// DefaultHoldWindow is how long a key press keeps a movement action held.
const DefaultHoldWindow = 200 * time.Millisecond

// Options configures a game model.
type Options struct {
	Store      *storage.Store // Nil disables score saving
	Logger     *log.Logger    // Nil discards output
	HoldWindow time.Duration  // Zero uses DefaultHoldWindow
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = DefaultHoldWindow
	}
	return o
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *core.HoldTracker
	pending   core.InputFrame // Discrete actions since the last frame
	gameState core.GameState
	progress  progress.Model
	help      help.Model

	loaded     bool
	runStart   time.Time
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone play quits the program on back
	runSaved   bool // Whether the current finished run has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()

	_, needsLoad := game.(registry.Loader)
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = min(max(cfg.ScreenW-20, 10), 60)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    opts.Logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      core.NewHoldTracker(opts.HoldWindow),
		pending:   core.NewInputFrame(),
		progress:  bar,
		help:      help.New(),
		loaded:    !needsLoad,
		runStart:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("reset failed", "game", m.game.ID(), "err", err)
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if l, ok := m.game.(registry.Loader); ok {
		cmds = append(cmds, loadCmd(context.Background(), l))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case loadedMsg:
		m.loaded = true
		m.runStart = time.Now()
		m.gameState = m.game.State()
		if msg.err != nil {
			m.logger.Error("level failed to load", "game", m.game.ID(), "err", msg.err)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || !m.loaded {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}

	case IsHeldAction(action):
		m.hold.Press(action, time.Now())

	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world is projected
// onto whatever grid the screen has, so the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.progress.Width = min(max(msg.Width-20, 10), 60)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.loaded {
		return m, tickCmd(m.config.TickRate)
	}

	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart(now)
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.hold.Fill(&frame, now)

	var result core.StepResult
	if f, ok := m.game.(registry.Framed); ok {
		result = f.Frame(now, frame)
	} else {
		result = m.game.Step(frame)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun(now)
		m.runSaved = true
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart starts a new run after game over.
func (m *Model) restart(now time.Time) {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Warn("restart failed, keeping finished run", "game", m.game.ID(), "err", err)
	}
	m.gameState = m.game.State()
	m.runSaved = false
	m.runStart = now
	m.pending.Clear()
	m.hold.Reset()
}

// recordRun logs the finished run and saves it to the store.
func (m *Model) recordRun(now time.Time) {
	st := m.gameState
	duration := now.Sub(m.runStart)
	m.logger.Info("run finished",
		"level", m.game.ID(),
		"score", st.Score,
		"outcome", st.Outcome(),
		"duration", duration.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("could not save score", "err", err)
		}
	}
	runID, err := m.store.SaveRun(storage.Run{
		LevelID:  m.game.ID(),
		Score:    st.Score,
		Outcome:  st.Outcome(),
		Lives:    st.Lives,
		Duration: duration,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.lastRunID = runID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// loadProgress reports how far resource loading has got.
func (m Model) loadProgress() float64 {
	if l, ok := m.game.(registry.Loader); ok {
		return l.Progress()
	}
	return 1
}

var (
	loadingTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	loadingHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// loadingView renders the loading screen with a progress bar.
func (m Model) loadingView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		loadingTitleStyle.Render(m.game.Title()),
		"",
		"Loading sprites...",
		m.progress.ViewAs(m.loadProgress()),
		"",
		loadingHelpStyle.Render(m.help.View(m.keyMapper.Keys)),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return m.loadingView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunModel(game, cfg, opts)
	return err
}

// RunModel plays game until the player quits or goes back, and returns
// the final model so callers can tell the two apart.
func RunModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := finalModel.(Model); ok {
		return m, nil
	}
	return model, nil
}
