package stealth

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/games/stealth/maze"
)

const (
	placementAttempts = 100
	spawnAttempts     = 50
	routeAttempts     = 20
	safeZoneRadius    = 5 // Manhattan cells between player start and guard spawn
)

var cardinals = [4]maze.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Level is one generated stage: the maze plus everything placed on it.
type Level struct {
	Number int
	Grid   *maze.Grid
	Tile   int
	Width  int // Pixels
	Height int

	walls     []core.Rect // Static walls only
	hideSpots []core.Rect
	Moving    []*MovingWall
	Scrolls   []Scroll
	Guards    []*Guard

	Exit        core.Rect
	ExitCell    maze.Point
	PlayerStart core.Vec
	StartCell   maze.Point
}

// NewLevel generates level number n. It always succeeds: every sampling
// loop is bounded and falls back to a fixed cell.
func NewLevel(n int, cfg config.StealthConfig, rng *rand.Rand) *Level {
	tile := cfg.World.TileSize
	gw, gh := cfg.World.GridSize()
	grid := maze.Generate(gw, gh, rng)

	l := &Level{
		Number: n,
		Grid:   grid,
		Tile:   tile,
		Width:  grid.W * tile,
		Height: grid.H * tile,
	}

	// Player start in the top-left corner region
	l.StartCell = l.findEmpty(rng, 1, 1, 3, 3)
	l.PlayerStart = l.cellPos(l.StartCell, cfg.Player.Size)

	// Exit in the bottom-right corner region
	l.ExitCell = l.findEmpty(rng, grid.W-4, grid.H-4, grid.W-1, grid.H-1)
	grid.Set(l.ExitCell.X, l.ExitCell.Y, maze.Exit)
	l.Exit = l.cellRect(l.ExitCell)

	// Rect lists are built after exit tagging so the exit never becomes a wall.
	l.indexCells()

	params := cfg.Progression.Params(n)

	for range params.Scrolls {
		c := l.findEmpty(rng, 2, 2, grid.W-3, grid.H-3)
		p := l.cellPos(c, cfg.Scroll.Size)
		l.Scrolls = append(l.Scrolls, Scroll{
			rect: core.NewRect(int(p.X), int(p.Y), cfg.Scroll.Size, cfg.Scroll.Size),
		})
	}

	l.placeMovingWalls(rng, params.MovingWalls, cfg.Progression)
	l.placeGuards(rng, params, cfg)

	return l
}

// indexCells rebuilds the wall and hiding-spot rectangles from the grid.
func (l *Level) indexCells() {
	l.walls, l.hideSpots = l.walls[:0], l.hideSpots[:0]
	for y := range l.Grid.H {
		for x := range l.Grid.W {
			switch l.Grid.At(x, y) {
			case maze.Wall:
				l.walls = append(l.walls, l.cellRect(maze.Point{X: x, Y: y}))
			case maze.HideSpot:
				l.hideSpots = append(l.hideSpots, l.cellRect(maze.Point{X: x, Y: y}))
			}
		}
	}
}

// placeMovingWalls anchors each wall on an empty cell and slides it 3-5
// cells along the first shuffled direction whose path is all empty.
// Anchors with no valid direction are skipped.
func (l *Level) placeMovingWalls(rng *rand.Rand, count int, prog config.ProgressionConfig) {
	g := l.Grid
	for range count {
		anchor := l.findEmpty(rng, 4, 4, g.W-5, g.H-5)

		dirs := cardinals
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		end, ok := maze.Point{}, false
	search:
		for _, d := range dirs {
			for dist := 3; dist <= 5; dist++ {
				t := maze.Point{X: anchor.X + d.X*dist, Y: anchor.Y + d.Y*dist}
				if !g.InBounds(t.X, t.Y) || g.At(t.X, t.Y) != maze.Empty {
					continue
				}
				if l.runIs(anchor, d, 1, dist, maze.Empty) {
					end, ok = t, true
					break search
				}
			}
		}
		if !ok {
			continue
		}

		speed := prog.MovingWallMinSpeed + rng.Float64()*prog.MovingWallSpeedRange
		l.Moving = append(l.Moving, newMovingWall(l.cellPos(anchor, l.Tile), l.cellPos(end, l.Tile), speed, l.Tile))
	}
}

// placeGuards spawns guards away from the player start and gives each a
// patrol route.
func (l *Level) placeGuards(rng *rand.Rand, params config.LevelParams, cfg config.StealthConfig) {
	g := l.Grid
	speed := cfg.Guard.BaseSpeed * params.GuardSpeedFactor

	for range params.Guards {
		var spawn maze.Point
		for range spawnAttempts {
			spawn = l.findEmpty(rng, 2, 2, g.W-3, g.H-3)
			if core.Abs(spawn.X-l.StartCell.X)+core.Abs(spawn.Y-l.StartCell.Y) > safeZoneRadius {
				break
			}
		}

		route := l.patrolRoute(rng, spawn, cfg.Guard.Size)
		l.Guards = append(l.Guards, newGuard(route, speed, cfg.Guard))
	}
}

// patrolRoute random-walks 1-2 legs of 3-4 cells from start. Each leg must
// end on an empty cell and cross only empty or hiding cells. The route
// always has at least two waypoints; a guard with nowhere to go gets its
// spawn point twice and stands watch.
func (l *Level) patrolRoute(rng *rand.Rand, start maze.Point, size int) []core.Vec {
	g := l.Grid
	route := []core.Vec{l.cellPos(start, size)}

	cur := start
	legs := randBetween(rng, 2, 3) - 1
	for range legs {
		for range routeAttempts {
			d := cardinals[rng.Intn(len(cardinals))]
			dist := randBetween(rng, 3, 4)
			next := maze.Point{X: cur.X + d.X*dist, Y: cur.Y + d.Y*dist}

			if !g.InBounds(next.X, next.Y) || g.At(next.X, next.Y) != maze.Empty {
				continue
			}
			if !l.runIs(cur, d, 0, dist, maze.Empty, maze.HideSpot) {
				continue
			}

			route = append(route, l.cellPos(next, size))
			cur = next
			break
		}
	}

	if len(route) < 2 {
		for _, d := range cardinals {
			next := maze.Point{X: start.X + d.X*2, Y: start.Y + d.Y*2}
			if g.InBounds(next.X, next.Y) && g.At(next.X, next.Y) == maze.Empty {
				route = append(route, l.cellPos(next, size))
				break
			}
		}
	}
	if len(route) < 2 {
		route = append(route, route[0])
	}
	return route
}

// runIs reports whether the cells from+d*i for i in [lo, hi) all hold one
// of the given kinds.
func (l *Level) runIs(from, d maze.Point, lo, hi int, kinds ...maze.Kind) bool {
	for i := lo; i < hi; i++ {
		k := l.Grid.At(from.X+d.X*i, from.Y+d.Y*i)
		ok := false
		for _, want := range kinds {
			if k == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// findEmpty samples cells in the inclusive region until one is Empty.
// The region is clipped to the grid. After placementAttempts misses the
// region's top-left corner is returned, whatever it holds.
func (l *Level) findEmpty(rng *rand.Rand, minX, minY, maxX, maxY int) maze.Point {
	g := l.Grid
	minX, minY = core.Clamp(minX, 0, g.W-1), core.Clamp(minY, 0, g.H-1)
	maxX, maxY = core.Clamp(maxX, 0, g.W-1), core.Clamp(maxY, 0, g.H-1)
	fallback := maze.Point{X: minX, Y: minY}
	if minX > maxX || minY > maxY {
		return fallback
	}

	for range placementAttempts {
		x := randBetween(rng, minX, maxX)
		y := randBetween(rng, minY, maxY)
		if g.At(x, y) == maze.Empty {
			return maze.Point{X: x, Y: y}
		}
	}
	return fallback
}

// cellRect returns the pixel box of a whole cell.
func (l *Level) cellRect(c maze.Point) core.Rect {
	return core.NewRect(c.X*l.Tile, c.Y*l.Tile, l.Tile, l.Tile)
}

// cellPos returns the top-left pixel that centers an entity of the given
// size inside cell c.
func (l *Level) cellPos(c maze.Point, size int) core.Vec {
	off := (l.Tile - size) / 2
	return core.Vec{X: float64(c.X*l.Tile + off), Y: float64(c.Y*l.Tile + off)}
}

// Walls yields every solid rectangle: static walls, then moving walls at
// their current positions.
func (l *Level) Walls() iter.Seq[core.Rect] {
	return func(yield func(core.Rect) bool) {
		for _, w := range l.walls {
			if !yield(w) {
				return
			}
		}
		for _, m := range l.Moving {
			if !yield(m.Rect()) {
				return
			}
		}
	}
}

// WallCount returns the number of rectangles Walls yields.
func (l *Level) WallCount() int {
	return len(l.walls) + len(l.Moving)
}

// Cell returns the kind of grid cell (x, y); out-of-range cells are walls.
func (l *Level) Cell(x, y int) maze.Kind {
	return l.Grid.At(x, y)
}

// HideSpots returns the hiding-spot rectangles.
func (l *Level) HideSpots() []core.Rect {
	return l.hideSpots
}

// BlockedAt reports whether pixel (x, y) is inside a static or moving wall.
// Static walls are looked up through the grid; points outside the level
// are never blocked.
func (l *Level) BlockedAt(x, y int) bool {
	if x >= 0 && y >= 0 && x < l.Width && y < l.Height {
		if l.Grid.At(x/l.Tile, y/l.Tile) == maze.Wall {
			return true
		}
	}
	for _, m := range l.Moving {
		if m.Rect().Contains(x, y) {
			return true
		}
	}
	return false
}

// fits reports whether r lies inside the level without touching a wall.
func (l *Level) fits(r core.Rect) bool {
	if r.X < 0 || r.Y < 0 || r.Right() > l.Width || r.Bottom() > l.Height {
		return false
	}
	for w := range l.Walls() {
		if r.Intersects(w) {
			return false
		}
	}
	return true
}

// AdvanceObstacles moves every moving wall one tick.
func (l *Level) AdvanceObstacles() {
	for _, m := range l.Moving {
		m.Advance()
	}
}

// randBetween returns a uniform int in [lo, hi]. The caller guarantees lo <= hi.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
