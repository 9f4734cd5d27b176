package grid

import (
	"io"
	"strings"

	"github.com/samber/lo"
)

// Bounds returns the smallest rectangle holding every white cell, inclusive.
// ok is false when nothing is white.
func (c *Controller) Bounds() (low, high Point, ok bool) {
	whites := lo.Keys(lo.PickBy(c.Panels, func(_ Point, color Color) bool {
		return color == White
	}))
	if len(whites) == 0 {
		return
	}
	low, high = whites[0], whites[0]
	for _, p := range whites[1:] {
		low = Point{min(low.X, p.X), min(low.Y, p.Y)}
		high = Point{max(high.X, p.X), max(high.Y, p.Y)}
	}
	return low, high, true
}

// Render writes the white cells as rows of glyphs, top row first.
func (c *Controller) Render(w io.Writer, blank, filled string) error {
	low, high, ok := c.Bounds()
	if !ok {
		return nil
	}
	buf := new(strings.Builder)
	for y := high.Y; y >= low.Y; y-- {
		for x := low.X; x <= high.X; x++ {
			if c.Color(Point{x, y}) == White {
				buf.WriteString(filled)
			} else {
				buf.WriteString(blank)
			}
		}
		buf.WriteString("\n")
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
