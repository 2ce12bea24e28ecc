// Package stealth implements Openstate, a top-down stealth game: sneak
// through a generated maze, pick up scrolls, avoid the guards' vision
// cones and reach the exit.
package stealth

import (
	"math/rand"

	"github.com/vovakirdan/openstate/internal/audio"
	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "stealth"

// CapturedReason is shown when a guard spots the player.
const CapturedReason = "Ninja Captured!"

// Phase is the top-level state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

// Game implements the stealth game.
type Game struct {
	cfg      config.StealthConfig
	fixedCfg bool // Set by NewWithConfig; Reset skips loading from disk
	rng      *rand.Rand
	sink     audio.Sink
	tickRate int
	tick     uint64

	levelNum int
	level    *Level
	player   *Player

	phase      Phase
	paused     bool
	reason     string
	stars      int // Stars from the last completed level
	totalStars int

	levelTicks      int
	transitionTicks int
	footstepTicks   int

	screenW  int
	screenH  int
	tooSmall bool

	startLevel int // Applied by the next Reset, then cleared
}

var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets a custom YAML config file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level the next Reset starts on. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// StartAt makes the next Reset of this game start on the given level.
// Unlike SetStartLevel it only affects this instance.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{sink: audio.NewNop()}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.StealthConfig) *Game {
	cfg.Validate()
	return &Game{cfg: cfg, fixedCfg: true, sink: audio.NewNop()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Openstate"
}

// SetAudio replaces the cue sink. A nil sink silences the game.
func (g *Game) SetAudio(s audio.Sink) {
	if s == nil {
		s = audio.NewNop()
		s.SetEnabled(false)
	}
	g.sink = s
}

// SoundEnabled reports whether cues are currently played.
func (g *Game) SoundEnabled() bool {
	return g.sink.Enabled()
}

// Reset starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadStealth(configPath)
		if err != nil {
			cfg = config.DefaultStealthConfig()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.cfg.World.TickRate
	}
	g.tick = 0
	g.totalStars = 0
	g.stars = 0
	g.paused = false

	g.levelNum = 1
	start := g.startLevel
	if start == 0 {
		start = selectedStartLevel
		selectedStartLevel = 0
	}
	g.startLevel = 0
	if start > 0 && start <= g.cfg.World.MaxLevels {
		g.levelNum = start
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.loadLevel()
}

// loadLevel generates the current level and places the player at its start.
func (g *Game) loadLevel() {
	g.level = NewLevel(g.levelNum, g.cfg, g.rng)
	g.player = newPlayer(g.level.PlayerStart, g.cfg.Player)
	g.phase = PhasePlaying
	g.reason = ""
	g.levelTicks = 0
	g.transitionTicks = 0
	g.footstepTicks = 0
}

// Resize updates the terminal size without touching the world.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.cfg.World.TileSize <= 0 {
		return
	}
	gw, gh := g.cfg.World.GridSize()
	g.tooSmall = w < gw*cellCols || h < gh+hudRows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionToggleSound) {
		g.sink.SetEnabled(!g.sink.Enabled())
	}

	switch g.phase {
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.loadLevel()
		}
		return g.result(nil)

	case PhaseLevelComplete:
		g.transitionTicks--
		if g.transitionTicks <= 0 {
			g.nextLevel()
		}
		return g.result(nil)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result(nil)
	}

	return g.result(g.simulate(in))
}

// simulate runs one Playing tick.
func (g *Game) simulate(in core.InputFrame) []core.Event {
	var events []core.Event
	lvl, p := g.level, g.player
	g.levelTicks++

	p.ApplyInput(in)
	p.Move(lvl)
	p.UpdateHidden(lvl)

	if p.Moving() {
		g.footstepTicks++
		if g.footstepTicks >= g.cfg.Player.FootstepInterval {
			g.footstepTicks = 0
			g.sink.Play(audio.CueFootstep)
		}
	}

	lvl.AdvanceObstacles()
	p.Displace(lvl)
	p.UpdateHidden(lvl)

	for _, guard := range lvl.Guards {
		if guard.Update(lvl, p) {
			g.sink.Play(audio.CueAlert)
			g.sink.Play(audio.CueGameOver)
			g.phase = PhaseGameOver
			g.reason = CapturedReason
			return append(events, g.event(core.EventCaptured))
		}
	}

	pr := p.Rect()
	kept := lvl.Scrolls[:0]
	for _, s := range lvl.Scrolls {
		if s.reachedBy(pr, g.cfg.Scroll.PickupRadius) {
			g.sink.Play(audio.CuePickup)
			events = append(events, g.event(core.EventPickup))
			continue
		}
		kept = append(kept, s)
	}
	lvl.Scrolls = kept

	if pr.Intersects(lvl.Exit) {
		g.stars = 1
		if len(lvl.Scrolls) == 0 {
			g.stars = 3
		}
		g.totalStars += g.stars
		g.sink.Play(audio.CueLevelComplete)
		g.phase = PhaseLevelComplete
		g.transitionTicks = max(1, int(g.cfg.World.TransitionSeconds*float64(g.tickRate)))
		events = append(events, g.event(core.EventLevelComplete))
	}

	return events
}

// nextLevel advances past the current level, wrapping after the last one.
func (g *Game) nextLevel() {
	g.levelNum++
	if g.levelNum > g.cfg.World.MaxLevels {
		g.levelNum = 1
	}
	g.loadLevel()
}

func (g *Game) event(kind core.EventKind) core.Event {
	e := core.Event{Kind: kind, Level: g.levelNum, Ticks: g.levelTicks}
	if kind == core.EventLevelComplete {
		e.Stars = g.stars
	}
	return e
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The score is the star total.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.totalStars,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Level returns the level being played.
func (g *Game) Level() *Level {
	return g.level
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Phase returns the run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Reason returns why the last round ended, empty while playing.
func (g *Game) Reason() string {
	return g.reason
}

// TotalStars returns the stars earned this run.
func (g *Game) TotalStars() int {
	return g.totalStars
}
