package stealth

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/games/stealth/maze"
)

// layoutLevel builds a level from rows of '#' wall, '.' empty, '%' hiding
// spot and 'E' exit, with nothing placed on it.
func layoutLevel(cfg config.StealthConfig, rows ...string) *Level {
	g := maze.NewGrid(len(rows[0]), len(rows))
	l := &Level{
		Number: 1,
		Grid:   g,
		Tile:   cfg.World.TileSize,
		Width:  g.W * cfg.World.TileSize,
		Height: g.H * cfg.World.TileSize,
		Exit:   core.NewRect(-1000, -1000, 1, 1),
	}
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '.':
				g.Set(x, y, maze.Empty)
			case '%':
				g.Set(x, y, maze.HideSpot)
			case 'E':
				g.Set(x, y, maze.Exit)
				l.ExitCell = maze.Point{X: x, Y: y}
				l.Exit = l.cellRect(l.ExitCell)
			}
		}
	}
	l.indexCells()
	return l
}

func defaultCfg() config.StealthConfig {
	return config.DefaultStealthConfig()
}

func TestNewLevelDeterministic(t *testing.T) {
	cfg := defaultCfg()
	a := NewLevel(4, cfg, rand.New(rand.NewSource(99)))
	b := NewLevel(4, cfg, rand.New(rand.NewSource(99)))

	if a.Grid.String() != b.Grid.String() {
		t.Fatal("same seed produced different grids")
	}
	if !reflect.DeepEqual(a.Scrolls, b.Scrolls) {
		t.Error("same seed produced different scrolls")
	}
	if len(a.Guards) != len(b.Guards) {
		t.Fatalf("guard count %d vs %d", len(a.Guards), len(b.Guards))
	}
	for i := range a.Guards {
		if !reflect.DeepEqual(a.Guards[i].Route(), b.Guards[i].Route()) {
			t.Errorf("guard %d routes differ", i)
		}
	}
	if a.PlayerStart != b.PlayerStart || a.ExitCell != b.ExitCell {
		t.Error("same seed produced different start or exit")
	}
}

func TestNewLevelCounts(t *testing.T) {
	cfg := defaultCfg()
	for _, n := range []int{1, 3, 6, 10} {
		params := cfg.Progression.Params(n)
		for seed := int64(1); seed <= 5; seed++ {
			l := NewLevel(n, cfg, rand.New(rand.NewSource(seed)))

			if len(l.Scrolls) != params.Scrolls {
				t.Errorf("level %d seed %d: %d scrolls, expected %d", n, seed, len(l.Scrolls), params.Scrolls)
			}
			if len(l.Guards) != params.Guards {
				t.Errorf("level %d seed %d: %d guards, expected %d", n, seed, len(l.Guards), params.Guards)
			}
			if len(l.Moving) > params.MovingWalls {
				t.Errorf("level %d seed %d: %d moving walls, max %d", n, seed, len(l.Moving), params.MovingWalls)
			}
			for i, g := range l.Guards {
				want := cfg.Guard.BaseSpeed * params.GuardSpeedFactor
				if g.Speed() != want {
					t.Errorf("guard %d speed = %v, expected %v", i, g.Speed(), want)
				}
			}
		}
	}
}

func TestNewLevelLayout(t *testing.T) {
	cfg := defaultCfg()
	gw, gh := cfg.World.GridSize()

	for seed := int64(1); seed <= 20; seed++ {
		l := NewLevel(1, cfg, rand.New(rand.NewSource(seed)))

		if l.Grid.W != gw || l.Grid.H != gh {
			t.Fatalf("grid = %dx%d, expected %dx%d", l.Grid.W, l.Grid.H, gw, gh)
		}
		if l.Width != gw*cfg.World.TileSize || l.Height != gh*cfg.World.TileSize {
			t.Errorf("pixel size = %dx%d", l.Width, l.Height)
		}
		if got := l.Grid.Count(maze.Exit); got != 1 {
			t.Errorf("seed %d: %d exit cells, expected 1", seed, got)
		}
		if l.ExitCell.X < gw-4 || l.ExitCell.Y < gh-4 {
			t.Errorf("seed %d: exit %v outside bottom-right region", seed, l.ExitCell)
		}
		if l.StartCell.X < 1 || l.StartCell.X > 3 || l.StartCell.Y < 1 || l.StartCell.Y > 3 {
			t.Errorf("seed %d: start %v outside top-left region", seed, l.StartCell)
		}

		off := float64((cfg.World.TileSize - cfg.Player.Size) / 2)
		want := core.Vec{
			X: float64(l.StartCell.X*cfg.World.TileSize) + off,
			Y: float64(l.StartCell.Y*cfg.World.TileSize) + off,
		}
		if l.PlayerStart != want {
			t.Errorf("PlayerStart = %v, expected %v", l.PlayerStart, want)
		}

		for w := range l.Walls() {
			if w.Intersects(l.Exit) && !containsMoving(l, w) {
				t.Errorf("seed %d: static wall %v covers the exit", seed, w)
			}
		}
		if len(l.walls) != l.Grid.Count(maze.Wall) {
			t.Errorf("static walls = %d, expected %d", len(l.walls), l.Grid.Count(maze.Wall))
		}
		if l.WallCount() != l.Grid.Count(maze.Wall)+len(l.Moving) {
			t.Errorf("WallCount() = %d, expected %d", l.WallCount(), l.Grid.Count(maze.Wall)+len(l.Moving))
		}
		if got := l.Cell(l.ExitCell.X, l.ExitCell.Y); got != maze.Exit {
			t.Errorf("Cell(exit) = %v, expected %v", got, maze.Exit)
		}
		if len(l.HideSpots()) != l.Grid.Count(maze.HideSpot) {
			t.Errorf("HideSpots() = %d, expected %d", len(l.HideSpots()), l.Grid.Count(maze.HideSpot))
		}
	}
}

func containsMoving(l *Level, r core.Rect) bool {
	for _, m := range l.Moving {
		if m.Rect() == r {
			return true
		}
	}
	return false
}

func TestGuardRoutes(t *testing.T) {
	cfg := defaultCfg()
	for seed := int64(1); seed <= 20; seed++ {
		l := NewLevel(10, cfg, rand.New(rand.NewSource(seed)))
		for i, g := range l.Guards {
			if len(g.Route()) < 2 {
				t.Errorf("seed %d guard %d: route has %d waypoints", seed, i, len(g.Route()))
			}
			if g.Pos != g.Route()[0] {
				t.Errorf("seed %d guard %d: spawned at %v, route starts at %v", seed, i, g.Pos, g.Route()[0])
			}
		}
	}
}

func TestMovingWallPaths(t *testing.T) {
	cfg := defaultCfg()
	tile := float64(cfg.World.TileSize)

	for seed := int64(1); seed <= 20; seed++ {
		l := NewLevel(10, cfg, rand.New(rand.NewSource(seed)))
		for i, m := range l.Moving {
			dx := (m.To.X - m.From.X) / tile
			dy := (m.To.Y - m.From.Y) / tile
			if dx != 0 && dy != 0 {
				t.Errorf("seed %d wall %d: diagonal path %v -> %v", seed, i, m.From, m.To)
				continue
			}
			dist := int(max(dx, -dx, dy, -dy))
			if dist < 3 || dist > 5 {
				t.Errorf("seed %d wall %d: path length %d", seed, i, dist)
			}

			ax, ay := int(m.From.X/tile), int(m.From.Y/tile)
			sx, sy := int(dx)/dist, int(dy)/dist
			for k := 1; k <= dist; k++ {
				if l.Grid.At(ax+sx*k, ay+sy*k) != maze.Empty {
					t.Errorf("seed %d wall %d: path cell %d not empty", seed, i, k)
				}
			}

			lo := cfg.Progression.MovingWallMinSpeed
			hi := lo + cfg.Progression.MovingWallSpeedRange
			if m.Speed < lo || m.Speed >= hi {
				t.Errorf("seed %d wall %d: speed %v outside [%v, %v)", seed, i, m.Speed, lo, hi)
			}
		}
	}
}

func TestFindEmptyFallback(t *testing.T) {
	cfg := defaultCfg()
	l := layoutLevel(cfg,
		"#####",
		"#####",
		"#####",
	)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name                   string
		minX, minY, maxX, maxY int
		expected               maze.Point
	}{
		{"inside", 1, 1, 3, 2, maze.Point{X: 1, Y: 1}},
		{"clipped", -3, -3, 10, 10, maze.Point{X: 0, Y: 0}},
		{"inverted", 4, 2, 1, 1, maze.Point{X: 4, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.findEmpty(rng, tt.minX, tt.minY, tt.maxX, tt.maxY)
			if got != tt.expected {
				t.Errorf("findEmpty() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFindEmptyHitsOnlyEmpty(t *testing.T) {
	cfg := defaultCfg()
	l := layoutLevel(cfg,
		"#####",
		"#%.%#",
		"#####",
	)
	rng := rand.New(rand.NewSource(3))
	for range 50 {
		if got := l.findEmpty(rng, 1, 1, 3, 1); got != (maze.Point{X: 2, Y: 1}) {
			t.Fatalf("findEmpty() = %v, expected (2,1)", got)
		}
	}
}

func TestPatrolRouteFallback(t *testing.T) {
	cfg := defaultCfg()
	rng := rand.New(rand.NewSource(5))

	t.Run("two cells away", func(t *testing.T) {
		l := layoutLevel(cfg,
			"#####",
			"#...#",
			"#####",
		)
		route := l.patrolRoute(rng, maze.Point{X: 1, Y: 1}, cfg.Guard.Size)
		expected := []core.Vec{
			l.cellPos(maze.Point{X: 1, Y: 1}, cfg.Guard.Size),
			l.cellPos(maze.Point{X: 3, Y: 1}, cfg.Guard.Size),
		}
		if !reflect.DeepEqual(route, expected) {
			t.Errorf("patrolRoute() = %v, expected %v", route, expected)
		}
	})

	t.Run("enclosed", func(t *testing.T) {
		l := layoutLevel(cfg,
			"###",
			"#.#",
			"###",
		)
		route := l.patrolRoute(rng, maze.Point{X: 1, Y: 1}, cfg.Guard.Size)
		if len(route) != 2 || route[0] != route[1] {
			t.Errorf("patrolRoute() = %v, expected spawn point twice", route)
		}
	})
}

func TestPatrolRouteLegs(t *testing.T) {
	cfg := defaultCfg()
	l := layoutLevel(cfg,
		"###########",
		"#.........#",
		"#.........#",
		"#.........#",
		"###########",
	)
	start := maze.Point{X: 5, Y: 2}
	tile := float64(cfg.World.TileSize)

	for seed := int64(1); seed <= 20; seed++ {
		route := l.patrolRoute(rand.New(rand.NewSource(seed)), start, cfg.Guard.Size)
		if len(route) < 2 || len(route) > 3 {
			t.Fatalf("seed %d: route has %d waypoints", seed, len(route))
		}
		for i := 1; i < len(route); i++ {
			dx := (route[i].X - route[i-1].X) / tile
			dy := (route[i].Y - route[i-1].Y) / tile
			if dx != 0 && dy != 0 {
				t.Errorf("seed %d: leg %d is diagonal", seed, i)
			}
			if n := max(dx, -dx, dy, -dy); n < 2 || n > 4 {
				t.Errorf("seed %d: leg %d spans %v cells", seed, i, n)
			}
		}
	}
}

func TestBlockedAtMatchesWalls(t *testing.T) {
	cfg := defaultCfg()
	l := NewLevel(10, cfg, rand.New(rand.NewSource(7)))
	for range 40 {
		l.AdvanceObstacles()
	}

	for y := 0; y < l.Height; y += 5 {
		for x := 0; x < l.Width; x += 7 {
			expected := false
			for w := range l.Walls() {
				if w.Contains(x, y) {
					expected = true
					break
				}
			}
			if got := l.BlockedAt(x, y); got != expected {
				t.Fatalf("BlockedAt(%d, %d) = %v, expected %v", x, y, got, expected)
			}
		}
	}

	if l.BlockedAt(-1, -1) {
		t.Error("points outside the level should not be blocked")
	}
}

func TestWallsOrder(t *testing.T) {
	cfg := defaultCfg()
	l := layoutLevel(cfg,
		"###",
		"#.#",
		"###",
	)
	l.Moving = []*MovingWall{newMovingWall(core.Vec{X: 32, Y: 32}, core.Vec{X: 32, Y: 32}, 1, 32)}

	var walls []core.Rect
	for w := range l.Walls() {
		walls = append(walls, w)
	}
	if len(walls) != 9 {
		t.Fatalf("Walls() yielded %d rects, expected 9", len(walls))
	}
	if walls[8] != core.NewRect(32, 32, 32, 32) {
		t.Errorf("last wall = %v, expected the moving wall", walls[8])
	}
}

func TestMovingWallAdvance(t *testing.T) {
	w := newMovingWall(core.Vec{X: 0, Y: 0}, core.Vec{X: 64, Y: 0}, 0.5, 32)

	for range 127 {
		w.Advance()
	}
	if w.Pos.X != 63.5 {
		t.Fatalf("Pos.X = %v after 127 ticks, expected 63.5", w.Pos.X)
	}

	w.Advance()
	if w.Pos.X != 63.5 {
		t.Errorf("arrival tick should only flip direction, Pos.X = %v", w.Pos.X)
	}

	w.Advance()
	if w.Pos.X != 63 {
		t.Errorf("Pos.X = %v after reversing, expected 63", w.Pos.X)
	}
	if w.Rect() != core.NewRect(63, 0, 32, 32) {
		t.Errorf("Rect() = %v", w.Rect())
	}
}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       [][2]int
	}{
		{"single", 3, 3, 3, 3, [][2]int{{3, 3}}},
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 1, 2, 1, 0, [][2]int{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reverse diagonal", 3, 0, 0, 3, [][2]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for x, y := range linePoints(tt.x0, tt.y0, tt.x1, tt.y1) {
				got = append(got, [2]int{x, y})
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("linePoints() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestLinePointsShallow(t *testing.T) {
	var last [2]int
	n := 0
	for x, y := range linePoints(0, 0, 10, 3) {
		last = [2]int{x, y}
		n++
	}
	if last != [2]int{10, 3} {
		t.Errorf("line ended at %v, expected (10,3)", last)
	}
	if n != 11 {
		t.Errorf("line has %d points, expected 11", n)
	}
}
