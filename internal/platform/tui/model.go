package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/openstate/internal/audio"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/registry"
	"github.com/vovakirdan/openstate/internal/storage"
)

// GameModel runs one game inside Bubble Tea. It is used directly by the
// play command and embedded in menu sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	held       *HeldKeys
	inputFrame core.InputFrame // Edge-triggered actions for the next tick
	gameState  core.GameState
	keyMapper  *KeyMapper
	loop       uint64
	standalone bool // Leaving the game ends the program
	quitting   bool
	backToMenu bool
	scoreID    int64 // Score row of this run, 0 until the first game over
	scoreSaved bool  // Whether the current game over has been recorded
}

// NewGameModel creates a model for the given game. A nil store disables
// persistence; a nil sink leaves the game's own audio untouched.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink audio.Sink) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if ag, ok := game.(registry.AudioGame); ok && sink != nil {
		ag.SetAudio(sink)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		held:       NewHeldKeys(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       nextLoopID(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack:
		m.held.Reset()
		// Esc pauses a running game and leaves a paused or finished one.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case IsHeld(action):
		m.held.Press(action)
	case action == core.ActionPause || action == core.ActionRestart:
		m.held.Reset()
		m.inputFrame.Set(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	m.held.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.held.Tick()

	m.recordEvents(result.Events)
	m.recordScore()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordEvents stores finished level attempts.
func (m *GameModel) recordEvents(events []core.Event) {
	if m.store == nil {
		return
	}
	for _, e := range events {
		run := storage.LevelRun{Level: e.Level, Stars: e.Stars, Ticks: e.Ticks}
		switch e.Kind {
		case core.EventLevelComplete:
			run.Outcome = storage.OutcomeCleared
		case core.EventCaptured:
			run.Outcome = storage.OutcomeCaptured
		default:
			continue
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveLevelRun(run)
	}
}

// recordScore saves the run's score once per game over. A run continued
// with restart updates its existing row.
func (m *GameModel) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	if m.scoreID == 0 {
		if id, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err == nil {
			m.scoreID = id
		}
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.UpdateScore(m.scoreID, m.gameState.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".openstate", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	m.screen.Clear()
	m.game.Render(m.screen)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including the latest terminal size.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays a single game until the user quits or leaves it.
// It reports whether the user asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink audio.Sink) (bool, error) {
	model := NewGameModel(game, store, cfg, sink)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
