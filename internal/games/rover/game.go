// Package rover implements Rover, a turn-based exploration game played by
// typing commands: drive across a grid, look around and collect crystals
// before the fuel runs out.
package rover

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/text-arcade/internal/config"
	"github.com/vovakirdan/text-arcade/internal/core"
	"github.com/vovakirdan/text-arcade/internal/registry"
)

var (
	ErrOutOfBounds = errors.New("target is outside the map")
	ErrBlocked     = errors.New("target cell is blocked by a rock")
	ErrNoFuel      = errors.New("not enough fuel")
	ErrNothingHere = errors.New("there is no crystal here")
	ErrGameOver    = errors.New("the game is over, type 'new' to play again")
)

// Object is what occupies a map cell.
type Object int

const (
	ObjNone Object = iota
	ObjCrystal
	ObjRock
)

// String returns the name used in game messages.
func (o Object) String() string {
	switch o {
	case ObjCrystal:
		return "crystal"
	case ObjRock:
		return "rock"
	default:
		return "nothing"
	}
}

// Sighting is one object reported by Look.
type Sighting struct {
	Object   Object
	At       core.Point
	Distance int
}

// Game implements the Rover game.
type Game struct {
	cfg  config.RoverConfig
	rng  *rand.Rand
	seed int64

	bounds  core.Rect
	objects map[core.Point]Object
	pos     core.Point

	fuel         int
	score        int
	turn         int
	crystalsLeft int
	gameOver     bool
}

func init() {
	registry.Register("rover", "Rover", func(rc core.RuntimeConfig) (registry.Game, error) {
		cfg, err := config.LoadRover(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(rc.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyRoverPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		g := New(cfg)
		g.Reset(rc.Seed)
		return g, nil
	})
}

// New creates a Rover game. Call Reset before playing.
func New(cfg config.RoverConfig) *Game {
	return &Game{
		cfg:    cfg,
		bounds: core.NewRect(0, 0, cfg.World.Width, cfg.World.Height),
	}
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return "rover"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rover"
}

// Reset generates a new world. A zero seed picks one from the clock.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))

	g.pos = core.Pt(g.cfg.World.Width/2, g.cfg.World.Height/2)
	g.fuel = g.cfg.Rover.Fuel
	g.score = 0
	g.turn = 0
	g.gameOver = false

	// Every cell but the start is a candidate; shuffle and deal.
	cells := make([]core.Point, 0, g.bounds.Area())
	for y := 0; y < g.bounds.H; y++ {
		for x := 0; x < g.bounds.W; x++ {
			if p := core.Pt(x, y); p != g.pos {
				cells = append(cells, p)
			}
		}
	}
	g.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	g.objects = make(map[core.Point]Object)
	n := 0
	for i := 0; i < g.cfg.World.Crystals && n < len(cells); i++ {
		g.objects[cells[n]] = ObjCrystal
		n++
	}
	for i := 0; i < g.cfg.World.Rocks && n < len(cells); i++ {
		g.objects[cells[n]] = ObjRock
		n++
	}
	g.crystalsLeft = g.count(ObjCrystal)
}

// Seed returns the seed the current world was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Turn:     g.turn,
		GameOver: g.gameOver,
	}
}

// Position returns the rover's cell.
func (g *Game) Position() core.Point {
	return g.pos
}

// Fuel returns the fuel left.
func (g *Game) Fuel() int {
	return g.fuel
}

// CrystalsLeft returns how many crystals are still on the map.
func (g *Game) CrystalsLeft() int {
	return g.crystalsLeft
}

// ObjectAt returns the object on the given cell.
func (g *Game) ObjectAt(p core.Point) Object {
	return g.objects[p]
}

// Move drives the rover to the target cell, spending one fuel per step of
// Manhattan distance. Moving to the current cell is free and takes no turn.
func (g *Game) Move(to core.Point) error {
	if g.gameOver {
		return ErrGameOver
	}
	if !g.bounds.Contains(to) {
		return ErrOutOfBounds
	}
	if g.objects[to] == ObjRock {
		return ErrBlocked
	}

	cost := g.pos.Manhattan(to)
	if cost == 0 {
		return nil
	}
	if cost > g.fuel {
		return ErrNoFuel
	}

	g.pos = to
	g.fuel -= cost
	g.turn++
	g.checkEnd()
	return nil
}

// Look lists objects within the look radius, nearest first.
// Ties are ordered by row, then column.
func (g *Game) Look() []Sighting {
	var seen []Sighting
	for p, obj := range g.objects {
		if d := g.pos.Manhattan(p); d <= g.cfg.Rover.LookRadius {
			seen = append(seen, Sighting{Object: obj, At: p, Distance: d})
		}
	}

	sort.Slice(seen, func(i, j int) bool {
		if seen[i].Distance != seen[j].Distance {
			return seen[i].Distance < seen[j].Distance
		}
		return seen[i].At.Less(seen[j].At)
	})
	return seen
}

// Take picks up the crystal under the rover and returns the points gained.
func (g *Game) Take() (int, error) {
	if g.gameOver {
		return 0, ErrGameOver
	}
	if g.objects[g.pos] != ObjCrystal {
		return 0, ErrNothingHere
	}

	delete(g.objects, g.pos)
	g.crystalsLeft--
	g.score += g.cfg.Scoring.CrystalValue
	g.turn++
	g.checkEnd()
	return g.cfg.Scoring.CrystalValue, nil
}

// checkEnd ends the game when every crystal is collected or the tank is dry.
// Clearing the map pays a bonus for the fuel left.
func (g *Game) checkEnd() {
	switch {
	case g.crystalsLeft == 0:
		g.score += g.cfg.Scoring.FuelBonus * g.fuel
		g.gameOver = true
	case g.fuel == 0:
		g.gameOver = true
	}
}

func (g *Game) count(obj Object) int {
	n := 0
	for _, o := range g.objects {
		if o == obj {
			n++
		}
	}
	return n
}
