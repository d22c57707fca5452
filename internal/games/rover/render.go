package rover

import (
	"github.com/vovakirdan/text-arcade/internal/core"
)

// Map glyphs.
const (
	glyphEmpty   = '.'
	glyphCrystal = '*'
	glyphRock    = '#'
	glyphRover   = '@'
)

const mapLegend = "@ rover  * crystal  # rock"

// Render draws the world inside a one-cell border at the top-left of dst.
// Cell (x,y) lands on screen position (x+1, y+1).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, g.bounds.W+2, g.bounds.H+2))

	for y := 0; y < g.bounds.H; y++ {
		for x := 0; x < g.bounds.W; x++ {
			glyph := rune(glyphEmpty)
			switch g.objects[core.Pt(x, y)] {
			case ObjCrystal:
				glyph = glyphCrystal
			case ObjRock:
				glyph = glyphRock
			}
			dst.Set(x+1, y+1, glyph)
		}
	}
	dst.Set(g.pos.X+1, g.pos.Y+1, glyphRover)
}
