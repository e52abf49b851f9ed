// Package defn holds the puzzle definition: the read-only map from hex
// coordinates to cells that the solver core consumes. Building this map from
// the textual input format (see reader.go) is external-collaborator
// territory per the solver's design, but the types below are shared with the
// core packages (multiverse, constraint, progress, registry).
package defn

import (
	"fmt"

	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// Color is one of the two colors a hex cell can take.
type Color int

const (
	ColorBlue Color = iota
	ColorBlack
)

func (c Color) String() string {
	if c == ColorBlue {
		return "blue"
	}
	return "black"
}

// ModKind distinguishes how a clue's count constrains the blues in its scope.
type ModKind int

const (
	// ModExact requires exactly Count blues, with no ordering constraint.
	ModExact ModKind = iota
	// ModConsecutive requires exactly Count blues forming one contiguous run.
	ModConsecutive
	// ModNonConsecutive requires exactly Count blues NOT forming a single
	// contiguous run (i.e. split across at least two runs).
	ModNonConsecutive
)

// Modifier is the clue payload shared by Line and Zone6 cells: a target blue
// count plus an optional contiguity constraint.
type Modifier struct {
	Kind  ModKind
	Count int
}

func (m Modifier) String() string {
	switch m.Kind {
	case ModConsecutive:
		return fmt.Sprintf("%d-consecutive", m.Count)
	case ModNonConsecutive:
		return fmt.Sprintf("%d-non-consecutive", m.Count)
	default:
		return fmt.Sprintf("%d", m.Count)
	}
}

// Direction is one of the three hex line axes a Line clue can project along.
// Each axis is symmetric: a line extends both ways from its cell.
type Direction int

const (
	DirVertical Direction = iota // top/bottom axis
	DirDiagUp                    // top-right/bottom-left axis
	DirDiagDown                  // bottom-right/top-left axis
)

// Step returns the canonical unit vector for this axis. The opposite
// direction along the same line is simply its negation.
func (d Direction) Step() hexcoord.Coord {
	switch d {
	case DirVertical:
		return hexcoord.New(0, -1, 1)
	case DirDiagUp:
		return hexcoord.New(1, -1, 0)
	case DirDiagDown:
		return hexcoord.New(1, 0, -1)
	default:
		panic("defn: invalid Direction")
	}
}

// Kind discriminates the cell variants of the data model.
type Kind int

const (
	KindEmpty Kind = iota
	KindLine
	KindZone0
	KindZone6
	KindZone18
)

// Cell is a tagged union over the five cell variants. Only the fields
// relevant to Kind are meaningful; see the constructors below.
type Cell struct {
	Kind     Kind
	Revealed bool     // Zone0, Zone6, Zone18
	Color    Color    // Zone0 (ground truth); Zone6 is always black, Zone18 always blue
	Dir      Direction // Line
	Mod      Modifier  // Line, Zone6
	Count    int       // Zone18
}

// Empty returns an off-grid / no-content cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// LineClue returns a line-clue cell projecting along dir with modifier mod.
// Line cells are always given from the start; they carry no color of their
// own and never participate as a colorable member of another clue's scope.
func LineClue(dir Direction, mod Modifier) Cell {
	return Cell{Kind: KindLine, Dir: dir, Mod: mod}
}

// Zone0 returns a plain colored cell with no clue of its own.
func Zone0(revealed bool, color Color) Cell {
	return Cell{Kind: KindZone0, Revealed: revealed, Color: color}
}

// Zone6 returns a 6-neighborhood clue cell. Zone6 cells are always black by
// convention (the game draws ring clues on black hexes).
func Zone6(revealed bool, mod Modifier) Cell {
	return Cell{Kind: KindZone6, Revealed: revealed, Mod: mod, Color: ColorBlack}
}

// Zone18 returns an 18-neighborhood (two-ring) clue cell. Zone18 cells are
// always blue by convention (the game draws remote-count clues on blue
// hexes).
func Zone18(revealed bool, count int) Cell {
	return Cell{Kind: KindZone18, Revealed: revealed, Count: count, Color: ColorBlue}
}

// Colorable reports whether this cell variant takes a color and can
// therefore appear in the scope of another cell's clue. Empty and Line cells
// are never colorable.
func (c Cell) Colorable() bool {
	return c.Kind == KindZone0 || c.Kind == KindZone6 || c.Kind == KindZone18
}

// GroundTruthColor returns the cell's true color and true if it is
// colorable, regardless of whether it has been revealed yet. The solver
// reads it only for cells that are KnownAtStart, to seed progress and to
// narrow freshly built constraints.
func (c Cell) GroundTruthColor() (Color, bool) {
	if !c.Colorable() {
		return 0, false
	}
	return c.Color, true
}

// KnownAtStart reports whether this cell's color is known before the solver
// runs its first round (i.e. it is revealed).
func (c Cell) KnownAtStart() bool {
	return c.Colorable() && c.Revealed
}
