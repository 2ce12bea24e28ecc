package audio

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

type recipe struct {
	notes  []note
	volume float64 // Linear gain, 1 = unchanged
}

// recipes are the synthesized tones for each cue.
var recipes = map[Cue]recipe{
	CuePickup: {
		notes:  []note{{880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}},
		volume: 0.5,
	},
	CueAlert: {
		notes:  []note{{660, 80 * time.Millisecond}, {440, 80 * time.Millisecond}, {660, 80 * time.Millisecond}},
		volume: 0.6,
	},
	CueLevelComplete: {
		notes:  []note{{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 240 * time.Millisecond}},
		volume: 0.5,
	},
	CueFootstep: {
		notes:  []note{{110, 25 * time.Millisecond}},
		volume: 0.15,
	},
	CueGameOver: {
		notes:  []note{{392, 200 * time.Millisecond}, {329.63, 200 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
		volume: 0.6,
	},
}

// BeepSink synthesizes cues with beep and mixes them onto the speaker.
type BeepSink struct {
	mixer   *beep.Mixer
	enabled atomic.Bool
	logger  *log.Logger
}

// NewBeepSink initializes the speaker. When no audio backend is available it
// logs a warning and returns a silent sink so the game still runs.
func NewBeepSink(logger *log.Logger, enabled bool) Sink {
	s := &BeepSink{mixer: &beep.Mixer{}, logger: logger}
	s.enabled.Store(enabled)

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		n := NewNop()
		n.SetEnabled(enabled)
		return n
	}

	speaker.Play(s.mixer)
	return s
}

// Play queues a cue. Unknown cues and muted sinks are ignored.
func (s *BeepSink) Play(c Cue) {
	if !s.enabled.Load() {
		return
	}
	streamer, err := buildCue(c)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("cannot build cue", "cue", c, "error", err)
		}
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// SetEnabled mutes or unmutes the sink. Muting drops cues already queued.
func (s *BeepSink) SetEnabled(on bool) {
	s.enabled.Store(on)
	if !on {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
}

func (s *BeepSink) Enabled() bool {
	return s.enabled.Load()
}

// buildCue renders the recipe for c as a finite streamer.
func buildCue(c Cue) (beep.Streamer, error) {
	r, ok := recipes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %q", c)
	}

	parts := make([]beep.Streamer, 0, len(r.notes))
	for _, n := range r.notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %q: %w", c, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(r.volume),
	}, nil
}

// cueLength returns the number of samples a cue plays for.
func cueLength(c Cue) int {
	total := 0
	for _, n := range recipes[c].notes {
		total += sampleRate.N(n.dur)
	}
	return total
}
