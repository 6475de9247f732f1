package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const (
	levelPanelWidth = 22  // Level list beside the table on wide terminals
	wideLayoutMin   = 84  // Narrower terminals show the level as a header
	boardRows       = 100 // Entries loaded per level and view
)

// boardView selects what the table lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewRecentRuns
)

func (v boardView) String() string {
	if v == viewRecentRuns {
		return "Recent runs"
	}
	return "Top scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll    key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	View      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.PrevLevel, k.NextLevel, k.View, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		NextLevel: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next level")),
		PrevLevel: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev level")),
		View:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/runs")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	outcomeStyles     = map[string]lipgloss.Style{
		storage.OutcomeVictory: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		storage.OutcomeFall:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		storage.OutcomeDefeat:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// ScoreboardModel shows the score and run history of every level.
type ScoreboardModel struct {
	store  *storage.Store
	levels []registry.GameInfo
	cursor int
	view   boardView

	scores   []storage.ScoreEntry
	runs     []storage.Run
	stats    *storage.LevelStats
	outcomes map[string]int

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard starting at the first level.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		levels: registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool { return m.width >= wideLayoutMin }

func (m ScoreboardModel) levelID() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// reload fetches the current level's history and rebuilds the table.
// Storage errors leave the affected section empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.runs, m.stats, m.outcomes = nil, nil, nil, nil
	if id := m.levelID(); m.store != nil && id != "" {
		m.scores, _ = m.store.TopScores(id, boardRows)
		m.runs, _ = m.store.RecentRuns(id, boardRows)
		m.stats, _ = m.store.GetLevelStats(id)
		m.outcomes, _ = m.store.OutcomeCounts(id)
	}
	m.table = m.buildTable()
}

// buildTable lays out the columns of the current view in the space left
// by the level panel.
func (m ScoreboardModel) buildTable() table.Model {
	avail := m.width - 6
	if m.wide() {
		avail -= levelPanelWidth + 4
	}

	var cols []table.Column
	var rows []table.Row
	switch m.view {
	case viewRecentRuns:
		cols = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Outcome", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Lives", Width: 5},
			{Title: "Time", Width: max(avail-40, 6)},
		}
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Outcome,
				strconv.Itoa(r.Score),
				strconv.Itoa(r.Lives),
				formatRunTime(r.Duration),
			})
		}
	default:
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: min(max(avail-18, 12), 20)},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func formatRunTime(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			m.moveLevel(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.moveLevel(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = (m.view + 1) % 2
			m.table = m.buildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveLevel steps the level cursor with wrap-around.
func (m *ScoreboardModel) moveLevel(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.levels)) % len(m.levels)
	m.reload()
}

// summary is the one-line digest of the level's runs.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return "No runs yet"
	}
	parts := []string{
		fmt.Sprintf("Best %d", m.stats.HighScore),
		fmt.Sprintf("Runs %d", m.stats.RunsCount),
	}
	for _, o := range []string{storage.OutcomeVictory, storage.OutcomeFall, storage.OutcomeDefeat} {
		parts = append(parts, outcomeStyles[o].Render(fmt.Sprintf("%s %d", o, m.outcomes[o])))
	}
	if m.stats.BestTime > 0 {
		parts = append(parts, "Fastest "+formatRunTime(m.stats.BestTime))
	}
	return strings.Join(parts, "  ")
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SCOREBOARD"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("SCOREBOARD  %s", m.levels[m.cursor].Title)
		if !m.wide() {
			title = fmt.Sprintf("< %s >", m.levels[m.cursor].Title)
		}
	}

	board := boardPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render(m.view.String()),
		m.tableView(),
	))
	if m.wide() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, m.levelPanel(), " ", board)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(boardTitleStyle.Render(title), m.width),
		centerText(m.summary(), m.width),
		"",
		board,
		boardDimStyle.Render(m.help.View(m.keys)),
	)
}

// levelPanel lists every level with a marker on the current one.
func (m ScoreboardModel) levelPanel() string {
	lines := make([]string, 0, len(m.levels)+1)
	lines = append(lines, boardDimStyle.Render("Levels"))
	for i, lvl := range m.levels {
		name := lvl.Title
		if w := levelPanelWidth - 4; len(name) > w {
			name = name[:w-1] + "…"
		}
		if i == m.cursor {
			lines = append(lines, boardCurrentStyle.Render("▸ "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return boardPanelStyle.Width(levelPanelWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) tableView() string {
	empty := len(m.scores) == 0
	if m.view == viewRecentRuns {
		empty = len(m.runs) == 0
	}
	if empty {
		return boardDimStyle.Italic(true).Padding(1, 2).Render("Nothing recorded yet.\nFinish a run to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
