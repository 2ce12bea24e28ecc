package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	got := EmbeddedStealth()
	want := DefaultStealthConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults diverge from DefaultStealthConfig():\n got %+v\nwant %+v", got, want)
	}
}

func TestGridSize(t *testing.T) {
	w, h := DefaultStealthConfig().World.GridSize()
	if w != 25 || h != 18 {
		t.Errorf("GridSize() = (%d, %d), expected (25, 18)", w, h)
	}
}

func TestLoadStealthCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("world:\n  max_levels: 3\nguard:\n  vision_range: 140\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadStealth(path)
	if err != nil {
		t.Fatalf("LoadStealth() failed: %v", err)
	}

	if cfg.World.MaxLevels != 3 {
		t.Errorf("MaxLevels = %d, expected 3", cfg.World.MaxLevels)
	}
	if cfg.Guard.VisionRange != 140 {
		t.Errorf("VisionRange = %f, expected 140", cfg.Guard.VisionRange)
	}
	// Unset fields come from defaults
	if cfg.World.TileSize != 32 || cfg.Player.Speed != 2 || cfg.Guard.PursuitTicks != 180 {
		t.Errorf("missing fields were not defaulted: %+v", cfg)
	}
}

func TestLoadStealthErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadStealth(tc.path); err == nil {
				t.Errorf("LoadStealth(%q) expected error", tc.path)
			}
		})
	}
}

func TestValidateClampsEntitySizes(t *testing.T) {
	cfg := StealthConfig{
		World:  WorldConfig{TileSize: 16},
		Player: PlayerConfig{Size: 24},
		Guard:  GuardConfig{VisionAngle: 400},
	}
	cfg.Validate()

	if cfg.Player.Size != 16 {
		t.Errorf("Player.Size = %d, expected clamp to tile size 16", cfg.Player.Size)
	}
	if cfg.Guard.Size != 16 || cfg.Scroll.Size != 16 {
		t.Errorf("Guard.Size = %d, Scroll.Size = %d, expected 16", cfg.Guard.Size, cfg.Scroll.Size)
	}
	if cfg.Guard.VisionAngle != 360 {
		t.Errorf("VisionAngle = %f, expected 360", cfg.Guard.VisionAngle)
	}
}

func TestProgressionParams(t *testing.T) {
	p := DefaultStealthConfig().Progression

	tests := []struct {
		level   int
		scrolls int
		guards  int
		walls   int
		speed   float64
	}{
		{1, 3, 1, 1, 1.03},
		{2, 3, 1, 2, 1.06},
		{3, 4, 2, 3, 1.09},
		{5, 4, 2, 5, 1.15},
		{6, 5, 3, 5, 1.18},
		{10, 5, 3, 5, 1.3},
		{20, 5, 3, 5, 1.3},
	}

	for _, tc := range tests {
		got := p.Params(tc.level)
		if got.Scrolls != tc.scrolls || got.Guards != tc.guards || got.MovingWalls != tc.walls {
			t.Errorf("Params(%d) = %+v, expected scrolls=%d guards=%d walls=%d",
				tc.level, got, tc.scrolls, tc.guards, tc.walls)
		}
		if diff := got.GuardSpeedFactor - tc.speed; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Params(%d).GuardSpeedFactor = %f, expected %f", tc.level, got.GuardSpeedFactor, tc.speed)
		}
	}

	if table := p.Table(10); len(table) != 10 || table[9].Level != 10 {
		t.Errorf("Table(10) returned %d rows", len(table))
	}
}
