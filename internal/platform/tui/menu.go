package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

// MenuItem represents a selectable arena in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	Best    int
	Preview string // map text, empty if the game has none
}

// previewer is implemented by games that can show their map.
type previewer interface {
	Preview() string
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPreviewStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Foreground(lipgloss.Color("250"))
)

// MenuModel is the Bubble Tea model for the arena picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem // Set when user selects an arena
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Best scores come from store
// when there is one.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			if p, ok := game.(previewer); ok {
				item.Preview = p.Preview()
			}
		}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  B O X H E A D  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select an arena", m.width))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, item := range m.items {
		if i > 0 {
			list.WriteString("\n")
		}
		if i == m.cursor {
			list.WriteString(menuSelectedStyle.Render(fmt.Sprintf("> %-28s best %6d", item.Title, item.Best)))
		} else {
			list.WriteString(fmt.Sprintf("  %-28s best %6d", item.Title, item.Best))
		}
	}

	body := list.String()
	if len(m.items) > 0 && m.items[m.cursor].Preview != "" {
		// Leave room for the header, the footer and the border.
		maxW := m.width - lipgloss.Width(body) - 8
		maxH := m.height - 10
		if thumb := thumbnail(m.items[m.cursor].Preview, maxW, maxH); len(thumb) > 0 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "    ", menuPreviewStyle.Render(strings.Join(thumb, "\n")))
		}
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(menuFooterStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// thumbnail shrinks map text to fit maxW x maxH cells. Each output cell
// covers a square block of tiles and shows a wall if the block has one,
// the player start if it has that, and floor otherwise.
func thumbnail(text string, maxW, maxH int) []string {
	rows := strings.Split(strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n"), "\n")
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if maxW < 4 || maxH < 3 || cols == 0 {
		return nil
	}
	step := max((cols+maxW-1)/maxW, (len(rows)+maxH-1)/maxH, 1)

	out := make([]string, 0, (len(rows)+step-1)/step)
	for y := 0; y < len(rows); y += step {
		var line strings.Builder
		for x := 0; x < cols; x += step {
			line.WriteRune(blockGlyph(rows, x, y, step))
		}
		out = append(out, line.String())
	}
	return out
}

func blockGlyph(rows []string, x0, y0, step int) rune {
	glyph := ' '
	for y := y0; y < min(y0+step, len(rows)); y++ {
		for x := x0; x < min(x0+step, len(rows[y])); x++ {
			switch rows[y][x] {
			case '#':
				return '█'
			case 'p':
				glyph = '@'
			}
		}
	}
	return glyph
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
