// Package hexcoord implements cube coordinates for a flat-topped hexagon
// grid. See https://www.redblobgames.com/grids/hexagons/#conversions (the
// "flat" layout, not "pointy").
package hexcoord

import "fmt"

// Coord is a cube coordinate satisfying q+r+s=0. S is not stored; it is
// always derived as -(q+r).
type Coord struct {
	Q, R int16
}

// New builds a Coord from all three cube components, panicking if they don't
// satisfy q+r+s=0. Passing s explicitly (rather than deriving it) catches
// transcription mistakes at the call site, matching the original's
// constructor contract.
func New(q, r, s int) Coord {
	if q+r+s != 0 {
		panic(fmt.Sprintf("hexcoord: invalid coordinate q=%d r=%d s=%d (q+r+s != 0)", q, r, s))
	}
	return Coord{Q: int16(q), R: int16(r)}
}

// S returns the derived third cube component.
func (c Coord) S() int {
	return -(int(c.Q) + int(c.R))
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return New(int(c.Q)+int(o.Q), int(c.R)+int(o.R), c.S()+o.S())
}

// Sub returns the componentwise difference of two coordinates.
func (c Coord) Sub(o Coord) Coord {
	return New(int(c.Q)-int(o.Q), int(c.R)-int(o.R), c.S()-o.S())
}

// Less gives the total order used throughout the solver (lexicographic on
// q, then r) so that maps/sets keyed by Coord iterate deterministically.
func (c Coord) Less(o Coord) bool {
	if c.Q != o.Q {
		return c.Q < o.Q
	}
	return c.R < o.R
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S())
}

// Neighbors6 returns the six unit-distance neighbors in a fixed clockwise
// order starting from top: top, top-right, bottom-right, bottom,
// bottom-left, top-left.
func (c Coord) Neighbors6() [6]Coord {
	q, r, s := int(c.Q), int(c.R), c.S()
	return [6]Coord{
		New(q+0, r-1, s+1), // top
		New(q+1, r-1, s+0), // top-right
		New(q+1, r+0, s-1), // bottom-right
		New(q+0, r+1, s-1), // bottom
		New(q-1, r+1, s+0), // bottom-left
		New(q-1, r+0, s+1), // top-left
	}
}

// Neighbors18 returns the 18 coordinates at hex-distance 1 or 2, in no
// specified order.
func (c Coord) Neighbors18() [18]Coord {
	q, r, s := int(c.Q), int(c.R), c.S()
	return [18]Coord{
		New(q+0, r-1, s+1),
		New(q+1, r-1, s+0),
		New(q+1, r+0, s-1),
		New(q+0, r+1, s-1),
		New(q-1, r+1, s+0),
		New(q-1, r+0, s+1),
		New(q+0, r-2, s+2),
		New(q+1, r-2, s+1),
		New(q+2, r-2, s+0),
		New(q+2, r-1, s-1),
		New(q+2, r+0, s-2),
		New(q+1, r+1, s-2),
		New(q+0, r+2, s-2),
		New(q-1, r+2, s-1),
		New(q-2, r+2, s+0),
		New(q-2, r+1, s+1),
		New(q-2, r+0, s+2),
		New(q-1, r-1, s+2),
	}
}
