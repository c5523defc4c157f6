package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/registry"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	gameID         string
	presets        []config.DifficultyPreset
	cursor         int
	width          int
	height         int
	best           int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a menu for gameID with the cursor on current.
func NewMenuModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, current string) MenuModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if string(p) == current {
			cursor = i
		}
	}

	best := 0
	if store != nil {
		if hs, err := store.HighScore(gameID); err == nil {
			best = hs
		}
	}

	return MenuModel{
		gameID:    gameID,
		presets:   presets,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.presets))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.presets))

	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit

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
	b.WriteString(centerText(menuTitleStyle.Render(letterSpaced(registry.Title(m.gameID))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your opponent", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p, p.Description())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m MenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return m.presets[m.cursor], true
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

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// letterSpaced turns "Sea Battle" into "S E A   B A T T L E".
func letterSpaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig, current string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(gameID, store, cfg, current), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch preset, chosen := m.Selected(); {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case chosen:
		result.Difficulty = preset
	default:
		result.Quit = true
	}
	return result, nil
}
