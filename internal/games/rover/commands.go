package rover

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/core"
)

// ErrBadCoord is returned when a coordinate argument is not a number.
var ErrBadCoord = errors.New("coordinates must be numbers")

// Commands returns the Rover command table. Single letter aliases are
// hidden from help.
func (g *Game) Commands() []cmdline.Command {
	return []cmdline.Command{
		{Name: "go", Param: "<x> <y>", Help: "Move to (x,y).\nCosts one fuel per step.", MinArgs: 2, MaxArgs: 2, Handle: g.cmdGo},
		{Name: "look", Help: "Look around.\nShows nearby objects.", Handle: g.cmdLook},
		{Name: "take", Help: "Pick up the crystal under the rover.", Handle: g.cmdTake},
		{Name: "map", Help: "Draw the world map.", Handle: g.cmdMap},
		{Name: "status", Help: "Show fuel, score and turn.", Handle: g.cmdStatus},
		{Name: "g", Param: "<x> <y>", MinArgs: 2, MaxArgs: 2, Handle: g.cmdGo},
		{Name: "l", Handle: g.cmdLook},
	}
}

func (g *Game) cmdGo(ctx *cmdline.Context, args []cmdline.Token) error {
	if !args[0].IsNum || !args[1].IsNum {
		return fmt.Errorf("go: %w: %q %q", ErrBadCoord, args[0].Str, args[1].Str)
	}
	to := core.Pt(args[0].Num, args[1].Num)

	if err := g.Move(to); err != nil {
		return fmt.Errorf("go: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Rover at (%d,%d). Fuel left: %d.\n", g.pos.X, g.pos.Y, g.fuel)
	if obj := g.objects[g.pos]; obj == ObjCrystal {
		fmt.Fprintln(ctx.Out, "There is a crystal here.")
	}
	return nil
}

func (g *Game) cmdLook(ctx *cmdline.Context, _ []cmdline.Token) error {
	seen := g.Look()
	if len(seen) == 0 {
		fmt.Fprintln(ctx.Out, "You see nothing of interest.")
		return nil
	}

	fmt.Fprintf(ctx.Out, "Around (%d,%d):\n", g.pos.X, g.pos.Y)
	for _, s := range seen {
		if s.Distance == 0 {
			fmt.Fprintf(ctx.Out, "  %s right here\n", s.Object)
			continue
		}
		fmt.Fprintf(ctx.Out, "  %s at (%d,%d), %d steps away\n", s.Object, s.At.X, s.At.Y, s.Distance)
	}
	return nil
}

func (g *Game) cmdTake(ctx *cmdline.Context, _ []cmdline.Token) error {
	points, err := g.Take()
	if err != nil {
		return fmt.Errorf("take: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Picked up a crystal (+%d). %d left.\n", points, g.crystalsLeft)
	return nil
}

func (g *Game) cmdMap(ctx *cmdline.Context, _ []cmdline.Token) error {
	screen := core.NewScreen(max(g.bounds.W+2, len(mapLegend)), g.bounds.H+3)
	g.Render(screen)
	screen.DrawText(0, g.bounds.H+2, mapLegend)
	fmt.Fprintln(ctx.Out, screen.String())
	return nil
}

func (g *Game) cmdStatus(ctx *cmdline.Context, _ []cmdline.Token) error {
	fmt.Fprintf(ctx.Out, "Position (%d,%d)  Fuel %d  Score %d  Turn %d  Crystals left %d\n",
		g.pos.X, g.pos.Y, g.fuel, g.score, g.turn, g.crystalsLeft)
	return nil
}
