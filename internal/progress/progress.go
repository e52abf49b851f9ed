// Package progress tracks which coordinates the solver already knows the
// color of, partitioned by color, plus the coordinates still unknown.
package progress

import (
	"sort"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/set"
)

// Progress is the solver's running picture of the board: every coordinate
// is in exactly one of blues, blacks, or unknowns at any time.
type Progress struct {
	blues    *set.Set[hexcoord.Coord]
	blacks   *set.Set[hexcoord.Coord]
	unknowns *set.Set[hexcoord.Coord]
}

// OfDefn partitions d's colorable cells by their starting state: revealed
// cells go to blues/blacks by ground truth color, everything else starts
// unknown.
func OfDefn(d *defn.Defn) *Progress {
	p := &Progress{
		blues:    set.NewSet[hexcoord.Coord](),
		blacks:   set.NewSet[hexcoord.Coord](),
		unknowns: set.NewSet[hexcoord.Coord](),
	}
	for _, e := range d.All() {
		if !e.Cell.Colorable() {
			continue
		}
		if !e.Cell.KnownAtStart() {
			p.unknowns.Add(e.Coord)
			continue
		}
		color, _ := e.Cell.GroundTruthColor()
		if color == defn.ColorBlue {
			p.blues.Add(e.Coord)
		} else {
			p.blacks.Add(e.Coord)
		}
	}
	return p
}

// IsSolved reports whether every colorable cell's color is now known.
func (p *Progress) IsSolved() bool {
	return p.unknowns.Size() == 0
}

// Update records newly-deduced findings, moving each coordinate out of
// unknowns and into blues or blacks.
func (p *Progress) Update(findings map[hexcoord.Coord]defn.Color) {
	for coord, color := range findings {
		p.unknowns.Remove(coord)
		if color == defn.ColorBlue {
			p.blues.Add(coord)
		} else {
			p.blacks.Add(coord)
		}
	}
}

// VisibleCells returns every coordinate whose color is currently known
// (the union of blues and blacks), sorted for determinism.
func (p *Progress) VisibleCells() []hexcoord.Coord {
	known := set.Union(p.blues, p.blacks)
	out := known.Values()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// NumUnknowns reports how many coordinates remain unresolved.
func (p *Progress) NumUnknowns() int {
	return p.unknowns.Size()
}

// ColorOf reports the known color of coord, if any.
func (p *Progress) ColorOf(coord hexcoord.Coord) (defn.Color, bool) {
	if p.blues.Contains(coord) {
		return defn.ColorBlue, true
	}
	if p.blacks.Contains(coord) {
		return defn.ColorBlack, true
	}
	return 0, false
}
