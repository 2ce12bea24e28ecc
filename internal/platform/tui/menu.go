package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/openstate/internal/audio"
	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/games/stealth"
	"github.com/vovakirdan/openstate/internal/storage"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuItemPlay MenuItem = iota
	MenuItemSelectLevel
	MenuItemScores
	MenuItemSound
	MenuItemQuit
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	levels         []config.LevelParams
	sink           audio.Sink
	keyMapper      *KeyMapper
	levelSelect    LevelSelectModel
	inLevelSelect  bool
	quitting       bool
	startLevel     int  // Set when the user starts a game
	openScoreboard bool // True if the user asked for the scoreboard
}

// NewMenuModel creates a new menu model. The sound entry is only shown
// when a sink is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, levels []config.LevelParams, sink audio.Sink) MenuModel {
	items := []MenuItem{MenuItemPlay, MenuItemSelectLevel, MenuItemScores}
	if sink != nil {
		items = append(items, MenuItemSound)
	}
	items = append(items, MenuItemQuit)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		levels:    levels,
		sink:      sink,
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
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		m.levelSelect = m.levelSelect.Update(action)
		if lvl := m.levelSelect.Chosen(); lvl > 0 {
			m.startLevel = lvl
			return m, tea.Quit
		}
		if m.levelSelect.WantsBack() {
			m.inLevelSelect = false
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.activate(m.items[m.cursor])

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) activate(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuItemPlay:
		m.startLevel = 1
		return m, tea.Quit
	case MenuItemSelectLevel:
		m.levelSelect = NewLevelSelectModel(m.levels, m.store)
		m.inLevelSelect = true
	case MenuItemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuItemSound:
		m.sink.SetEnabled(!m.sink.Enabled())
	case MenuItemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) label(item MenuItem) string {
	switch item {
	case MenuItemPlay:
		return "Play"
	case MenuItemSelectLevel:
		return "Select Level..."
	case MenuItemScores:
		return "High Scores"
	case MenuItemSound:
		if m.sink.Enabled() {
			return "Sound: On"
		}
		return "Sound: Off"
	case MenuItemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.levelSelect.View(m.width)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  O P E N S T A T E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Steal the scrolls. Stay out of sight.", m.width))
	b.WriteString("\n\n")

	if m.store != nil {
		if high, err := m.store.HighScore(stealth.ID); err == nil && high > 0 {
			b.WriteString(centerText(fmt.Sprintf("Best run: %d stars", high), m.width))
			b.WriteString("\n\n")
		}
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+m.label(item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// StartLevel returns the level the user chose to start on, 0 if none.
func (m MenuModel) StartLevel() int {
	return m.startLevel
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
	StartLevel      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, levels []config.LevelParams, sink audio.Sink) (MenuResult, error) {
	model := NewMenuModel(store, cfg, levels, sink)

	p := tea.NewProgram(model, tea.WithAltScreen())

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
	case m.StartLevel() > 0:
		result.StartLevel = m.StartLevel()
	default:
		result.Quit = true
	}
	return result, nil
}
