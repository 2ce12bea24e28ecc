package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/storage"
)

// maxStars is the best result a single level can award.
const maxStars = 3

// LevelSelectModel lists every level with its difficulty and the best
// result recorded for it. It is driven by the main menu.
type LevelSelectModel struct {
	levels []config.LevelParams
	best   map[int]int
	cursor int
	chosen int // 1-indexed level, 0 while choosing
	back   bool
}

// NewLevelSelectModel creates a level list. Best stars are read from the
// store when one is available.
func NewLevelSelectModel(levels []config.LevelParams, store *storage.Store) LevelSelectModel {
	m := LevelSelectModel{
		levels: levels,
		best:   make(map[int]int),
	}
	if store == nil {
		return m
	}
	stats, err := store.AllLevelStats()
	if err != nil {
		return m
	}
	for _, s := range stats {
		m.best[s.Level] = s.BestStars
	}
	return m
}

// Update applies a menu action.
func (m LevelSelectModel) Update(action MenuAction) LevelSelectModel {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.chosen = m.levels[m.cursor].Level
		}
	case MenuActionBack:
		m.back = true
	}
	return m
}

// View renders the level list centered in width columns.
func (m LevelSelectModel) View(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", width))
	b.WriteString("\n\n")

	for i, lp := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d.  guards %d  scrolls %d  walls %d  %s",
			cursor, lp.Level, lp.Guards, lp.Scrolls, lp.MovingWalls, starBar(m.best[lp.Level]))
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", width))

	return b.String()
}

// Chosen returns the selected level, or 0 while still choosing.
func (m LevelSelectModel) Chosen() int {
	return m.chosen
}

// WantsBack returns true if the user left the list.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// starBar draws earned stars as filled and the rest as hollow.
func starBar(stars int) string {
	stars = max(0, min(stars, maxStars))
	return strings.Repeat("★", stars) + strings.Repeat("☆", maxStars-stars)
}
