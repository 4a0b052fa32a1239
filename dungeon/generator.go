package dungeon

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/lixenwraith/gridcrawl/core"
	"github.com/lixenwraith/gridcrawl/parameter"
)

type Config struct {
	// RoomAttempts is the number of random room placements tried after the starting room
	RoomAttempts int

	// Extent bounds room centers to [-Extent, Extent] on both axes
	Extent int

	// Room half-size bounds, max exclusive
	RadiusMin, RadiusMax int

	// StartingRadius is the half-size of the room centered on the origin
	StartingRadius int

	// Required gap between rooms is drawn per pair from [GapMin, GapMax)
	GapMin, GapMax int

	Seed int64 // Optional (0 = Random)
}

// DefaultConfig returns the standard floor parameters
func DefaultConfig() Config {
	return Config{
		RoomAttempts:   parameter.RoomPlacementAttempts,
		Extent:         parameter.DungeonExtent,
		RadiusMin:      parameter.RoomRadiusMin,
		RadiusMax:      parameter.RoomRadiusMax,
		StartingRadius: parameter.StartingRoomRadius,
		GapMin:         parameter.RoomGapMin,
		GapMax:         parameter.RoomGapMax,
	}
}

// Room is an axis-aligned floor area, Radius is the half-size excluding walls
type Room struct {
	Center core.Point
	Radius core.Point
}

// Contains reports whether p lies inside the room or its wall ring
func (r Room) Contains(p core.Point) bool {
	return p.X >= r.Center.X-r.Radius.X-1 && p.X <= r.Center.X+r.Radius.X+1 &&
		p.Y >= r.Center.Y-r.Radius.Y-1 && p.Y <= r.Center.Y+r.Radius.Y+1
}

// WallCell is a wall position, Cap marks a wall with no wall directly below
type WallCell struct {
	core.Point
	Cap bool
}

// Layout is a generated floor, cells are sorted bottom-to-top then left-to-right
type Layout struct {
	Rooms  []Room
	Walls  []WallCell
	Floors []core.Point
}

type generator struct {
	cfg    Config
	rng    *rand.Rand
	rooms  []Room
	floors map[core.Point]struct{}
	walls  map[core.Point]struct{}
}

// Generate creates a room-and-corridor floor
// The starting room is always centered on the origin
func Generate(cfg Config) Layout {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.RadiusMax <= cfg.RadiusMin {
		cfg.RadiusMax = cfg.RadiusMin + 1
	}
	if cfg.GapMax <= cfg.GapMin {
		cfg.GapMax = cfg.GapMin + 1
	}

	g := &generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		floors: make(map[core.Point]struct{}),
		walls:  make(map[core.Point]struct{}),
	}

	g.planRooms()
	g.planCorridors()
	g.planWalls()
	g.fillRooms()

	return g.layout()
}

func (g *generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo)
}

func (g *generator) planRooms() {
	r := g.cfg.StartingRadius
	g.rooms = append(g.rooms, Room{Radius: core.Point{X: r, Y: r}})

placing:
	for i := 0; i < g.cfg.RoomAttempts; i++ {
		room := Room{
			Center: core.Point{
				X: g.between(-g.cfg.Extent, g.cfg.Extent+1),
				Y: g.between(-g.cfg.Extent, g.cfg.Extent+1),
			},
			Radius: core.Point{
				X: g.between(g.cfg.RadiusMin, g.cfg.RadiusMax),
				Y: g.between(g.cfg.RadiusMin, g.cfg.RadiusMax),
			},
		}
		for _, other := range g.rooms {
			required := g.between(g.cfg.GapMin, g.cfg.GapMax)
			xGap := abs(room.Center.X-other.Center.X) - room.Radius.X - other.Radius.X - 3
			yGap := abs(room.Center.Y-other.Center.Y) - room.Radius.Y - other.Radius.Y - 3
			// -1 means the wall rings touch exactly, which is allowed
			if gap := max(xGap, yGap); gap < required && gap != -1 {
				continue placing
			}
		}
		g.rooms = append(g.rooms, room)
	}
}

// planCorridors joins every room to one other random room with an L-shaped passage
func (g *generator) planCorridors() {
	if len(g.rooms) < 2 {
		return
	}
	for i, start := range g.rooms {
		j := g.rng.Intn(len(g.rooms))
		for j == i {
			j = g.rng.Intn(len(g.rooms))
		}
		end := g.rooms[j]

		sx := g.between(start.Center.X-start.Radius.X, start.Center.X+start.Radius.X+1)
		sy := g.between(start.Center.Y-start.Radius.Y, start.Center.Y+start.Radius.Y+1)
		ex := g.between(end.Center.X-end.Radius.X, end.Center.X+end.Radius.X+1)
		ey := g.between(end.Center.Y-end.Radius.Y, end.Center.Y+end.Radius.Y+1)

		for x := min(sx, ex); x < max(sx, ex); x++ {
			g.floors[core.Point{X: x, Y: sy}] = struct{}{}
		}
		for y := min(sy, ey); y <= max(sy, ey); y++ {
			g.floors[core.Point{X: ex, Y: y}] = struct{}{}
		}
	}
}

func (g *generator) planWalls() {
	for _, room := range g.rooms {
		for x := -(room.Radius.X + 1); x <= room.Radius.X+1; x++ {
			g.walls[core.Point{X: room.Center.X + x, Y: room.Center.Y + room.Radius.Y + 1}] = struct{}{}
			g.walls[core.Point{X: room.Center.X + x, Y: room.Center.Y - room.Radius.Y - 1}] = struct{}{}
		}
		for y := -room.Radius.Y; y <= room.Radius.Y; y++ {
			g.walls[core.Point{X: room.Center.X + room.Radius.X + 1, Y: room.Center.Y + y}] = struct{}{}
			g.walls[core.Point{X: room.Center.X - room.Radius.X - 1, Y: room.Center.Y + y}] = struct{}{}
		}
	}

	// Line corridors with walls wherever they run outside a room
	for p := range g.floors {
	neighbors:
		for _, n := range p.Neighbors() {
			for _, room := range g.rooms {
				if room.Contains(n) {
					continue neighbors
				}
			}
			g.walls[n] = struct{}{}
		}
	}

	for p := range g.floors {
		delete(g.walls, p)
	}
}

func (g *generator) fillRooms() {
	for _, room := range g.rooms {
		for x := -room.Radius.X; x <= room.Radius.X; x++ {
			for y := -room.Radius.Y; y <= room.Radius.Y; y++ {
				g.floors[core.Point{X: room.Center.X + x, Y: room.Center.Y + y}] = struct{}{}
			}
		}
	}
}

func (g *generator) layout() Layout {
	out := Layout{
		Rooms:  g.rooms,
		Walls:  make([]WallCell, 0, len(g.walls)),
		Floors: make([]core.Point, 0, len(g.floors)),
	}
	for p := range g.walls {
		_, below := g.walls[p.Sub(core.Point{Y: 1})]
		out.Walls = append(out.Walls, WallCell{Point: p, Cap: !below})
	}
	for p := range g.floors {
		out.Floors = append(out.Floors, p)
	}
	slices.SortFunc(out.Walls, func(a, b WallCell) int { return comparePoints(a.Point, b.Point) })
	slices.SortFunc(out.Floors, comparePoints)
	return out
}

func comparePoints(a, b core.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
