package tui

import "github.com/vovakirdan/openstate/internal/core"

// holdDuration covers a terminal's initial auto-repeat delay so a key that
// is kept down never drops out between its first press and the repeats.
const holdDurationMillis = 550

// HeldKeys turns terminal key presses into held controls. Terminals only
// report presses (and auto-repeats), never releases, so a press counts as
// held for a fixed number of ticks and each repeat refreshes it.
type HeldKeys struct {
	window    int // Ticks a single press stays held
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker for the given tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	return &HeldKeys{
		window:    max(1, tickRate*holdDurationMillis/1000),
		remaining: make(map[core.Action]int),
	}
}

// Press marks a as held for the full window. Pressing a direction
// releases its opposite.
func (h *HeldKeys) Press(a core.Action) {
	h.remaining[a] = h.window
	if o, ok := opposite[a]; ok {
		delete(h.remaining, o)
	}
}

// Apply sets every held action in f.
func (h *HeldKeys) Apply(f *core.InputFrame) {
	for a := range h.remaining {
		f.Set(a)
	}
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.remaining[a]
	return ok
}

// Tick ages every held action by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}
