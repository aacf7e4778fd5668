package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

// maxScores caps the rows loaded per view.
const maxScores = 100

// boardMode selects what the scoreboard lists.
type boardMode int

const (
	boardTop    boardMode = iota // best runs of the selected arena
	boardRecent                  // latest runs of every arena
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Mode key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Mode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next arena"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev arena"),
		),
		Mode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int
	mode      boardMode
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	err       error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first arena.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// columns lays out the table for the current mode. The date column takes
// what is left, between 12 and 20 cells.
func (m ScoreboardModel) columns() []table.Column {
	first := table.Column{Title: "Rank", Width: 6}
	if m.mode == boardRecent {
		first = table.Column{Title: "Arena", Width: 12}
	}
	cols := []table.Column{
		first,
		{Title: "Score", Width: 10},
		{Title: "Kills", Width: 6},
		{Title: "Wave", Width: 5},
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	date := min(max(m.width-8-used, 12), 20)
	return append(cols, table.Column{Title: "Date", Width: date})
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// load refreshes the rows for the current mode and arena.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		switch m.mode {
		case boardRecent:
			m.scores, m.err = m.store.RecentRuns(maxScores)
		default:
			if id := m.gameID(); id != "" {
				m.scores, m.err = m.store.TopScores(id, maxScores)
				if m.err == nil {
					m.stats, _ = m.store.GetGameStats(id)
				}
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		first := fmt.Sprintf("#%d", i+1)
		if m.mode == boardRecent {
			first = s.GameID
		}
		rows[i] = table.Row{
			first,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Kills),
			fmt.Sprintf("%d", s.Wave),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	// The first column changes with the mode.
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
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

		case key.Matches(msg, m.keys.Mode):
			m.mode = 1 - m.mode
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			if len(m.games) == 0 || m.mode == boardRecent {
				return m, nil
			}
			step := 1
			if key.Matches(msg, m.keys.Prev) {
				step = len(m.games) - 1
			}
			m.cursor = (m.cursor + step) % len(m.games)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.mode == boardRecent {
		title = "RECENT RUNS"
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	if m.mode == boardTop {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n")
		b.WriteString(m.renderStats())
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardBoxStyle.Render(m.renderBody()), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs lists the arenas, or only the current one when they don't fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.cursor {
			style = boardActiveTab
		}
		tabs[i] = style.Render(mapName(g.Title))
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", mapName(m.games[m.cursor].Title))
	}
	return line
}

// renderStats summarizes every recorded run of the current arena.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Runs %d  Avg %.0f  Kills %d  Best wave %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.TotalKills, m.stats.BestWave)
	return boardStatsStyle.Render(centerText(line, m.width)) + "\n"
}

func (m ScoreboardModel) renderBody() string {
	switch {
	case m.err != nil:
		return boardErrStyle.Render("Could not load scores: " + m.err.Error())
	case m.store == nil:
		return boardNoteStyle.Render("Scores are not being saved.")
	case len(m.scores) == 0:
		return boardNoteStyle.Render("No runs recorded yet.\nSurvive a few waves to set a high score!")
	}
	return m.table.View()
}

// mapName drops the common title prefix so arena names fit the tabs.
func mapName(title string) string {
	return strings.TrimPrefix(title, "Boxhead: ")
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
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
