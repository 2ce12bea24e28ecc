package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/openstate/internal/audio"
	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/storage"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func testLevels() []config.LevelParams {
	return config.DefaultStealthConfig().Progression.Table(5)
}

func press(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update() returned %T, expected MenuModel", next)
		}
	}
	return m
}

func menuCfg() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func TestMenuPlay(t *testing.T) {
	m := press(t, NewMenuModel(nil, menuCfg(), testLevels(), nil), keyEnter)
	if m.StartLevel() != 1 {
		t.Errorf("StartLevel() = %d, expected 1", m.StartLevel())
	}
}

func TestMenuSelectLevel(t *testing.T) {
	m := NewMenuModel(nil, menuCfg(), testLevels(), nil)
	m = press(t, m, keyDown, keyEnter)
	if !strings.Contains(m.View(), "SELECT LEVEL") {
		t.Fatal("level list not shown")
	}

	m = press(t, m, keyDown, keyDown, keyEnter)
	if m.StartLevel() != 3 {
		t.Errorf("StartLevel() = %d, expected 3", m.StartLevel())
	}
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := NewMenuModel(nil, menuCfg(), testLevels(), nil)
	m = press(t, m, keyDown, keyEnter, keyEsc)
	if strings.Contains(m.View(), "SELECT LEVEL") {
		t.Error("Esc should return to the main menu")
	}
	if m.StartLevel() != 0 {
		t.Errorf("StartLevel() = %d, expected 0", m.StartLevel())
	}
}

func TestMenuSoundToggle(t *testing.T) {
	sink := audio.NewNop()
	m := NewMenuModel(nil, menuCfg(), testLevels(), sink)
	if !strings.Contains(m.View(), "Sound: On") {
		t.Fatal("sound entry missing")
	}

	m = press(t, m, keyDown, keyDown, keyDown, keyEnter)
	if sink.Enabled() {
		t.Error("sound still enabled after toggle")
	}
	if !strings.Contains(m.View(), "Sound: Off") {
		t.Error("menu does not show the new sound state")
	}
}

func TestMenuWithoutSinkHidesSound(t *testing.T) {
	m := NewMenuModel(nil, menuCfg(), testLevels(), nil)
	if strings.Contains(m.View(), "Sound") {
		t.Error("sound entry shown without a sink")
	}
	m = press(t, m, keyDown, keyDown, keyDown, keyEnter)
	if !m.IsQuitting() {
		t.Error("fourth entry should be Quit without a sink")
	}
}

func TestMenuScoreboardShortcut(t *testing.T) {
	m := press(t, NewMenuModel(nil, menuCfg(), testLevels(), nil), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}
}

func TestLevelSelectShowsBestStars(t *testing.T) {
	store := openModelStore(t)
	store.SaveLevelRun(storage.LevelRun{Level: 2, Outcome: storage.OutcomeCleared, Stars: 3}) //nolint:errcheck
	store.SaveLevelRun(storage.LevelRun{Level: 1, Outcome: storage.OutcomeCleared, Stars: 1}) //nolint:errcheck

	view := NewLevelSelectModel(testLevels(), store).View(120)
	lines := strings.Split(view, "\n")

	expected := map[string]string{" 1.": "★☆☆", " 2.": "★★★", " 3.": "☆☆☆"}
	for prefix, stars := range expected {
		found := false
		for _, l := range lines {
			if strings.Contains(l, prefix) {
				found = true
				if !strings.Contains(l, stars) {
					t.Errorf("level line %q does not show %s", strings.TrimSpace(l), stars)
				}
			}
		}
		if !found {
			t.Errorf("no line for level %s", prefix)
		}
	}
}

func TestStarBar(t *testing.T) {
	tests := []struct {
		stars    int
		expected string
	}{
		{0, "☆☆☆"},
		{1, "★☆☆"},
		{3, "★★★"},
		{7, "★★★"},
		{-1, "☆☆☆"},
	}
	for _, tt := range tests {
		if got := starBar(tt.stars); got != tt.expected {
			t.Errorf("starBar(%d) = %q, expected %q", tt.stars, got, tt.expected)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("★★", 6); got != "  ★★" {
		t.Errorf("centerText() = %q, expected %q", got, "  ★★")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected the text unchanged", got)
	}
}
