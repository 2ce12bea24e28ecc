// Package audio plays the game's short sound cues. The simulation only sees
// the Sink interface; playback is fire-and-forget and never reports failure.
package audio

import (
	"sync"
	"sync/atomic"
)

// Cue names a sound effect.
type Cue string

const (
	CuePickup        Cue = "pickup"
	CueAlert         Cue = "alert"
	CueLevelComplete Cue = "level_complete"
	CueFootstep      Cue = "footstep"
	CueGameOver      Cue = "game_over"
)

// Cues lists every cue the game emits.
var Cues = []Cue{CuePickup, CueAlert, CueLevelComplete, CueFootstep, CueGameOver}

// Sink receives cues from the game.
type Sink interface {
	Play(c Cue)
	SetEnabled(on bool)
	Enabled() bool
}

// Nop discards every cue but remembers the mute toggle so the HUD can show it.
type Nop struct {
	enabled atomic.Bool
}

// NewNop returns a silent sink with sound reported as on.
func NewNop() *Nop {
	n := &Nop{}
	n.enabled.Store(true)
	return n
}

func (n *Nop) Play(Cue) {}

func (n *Nop) SetEnabled(on bool) { n.enabled.Store(on) }

func (n *Nop) Enabled() bool { return n.enabled.Load() }

// Recorder keeps the cues played while enabled. Used by tests and replays.
type Recorder struct {
	mu      sync.Mutex
	played  []Cue
	enabled bool
}

// NewRecorder returns an enabled recorder.
func NewRecorder() *Recorder {
	return &Recorder{enabled: true}
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enabled {
		r.played = append(r.played, c)
	}
}

func (r *Recorder) SetEnabled(on bool) {
	r.mu.Lock()
	r.enabled = on
	r.mu.Unlock()
}

func (r *Recorder) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Played returns a copy of the recorded cues.
func (r *Recorder) Played() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.played...)
}

// Count returns how many times c was recorded.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}
