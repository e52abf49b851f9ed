// Package constraint builds a Multiverse for each clue-bearing cell in a
// puzzle definition: a line run, a 6-neighborhood ring, an 18-neighborhood
// zone, or the whole-board blue count. Each builder already learns away any
// scope coordinate that is revealed at construction time.
package constraint

import (
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// learnKnown narrows mv by every scope coordinate already revealed at
// construction time, so a fresh constraint never carries uncertainty the
// definition itself resolved up front.
func learnKnown(d *defn.Defn, mv multiverse.Multiverse) multiverse.Multiverse {
	for _, c := range mv.Scope() {
		cell, ok := d.Cell(c)
		if !ok {
			continue
		}
		if cell.KnownAtStart() {
			color, _ := cell.GroundTruthColor()
			mv = mv.Learn(c, color)
		}
	}
	return mv
}

func colorableScope(d *defn.Defn, coords []hexcoord.Coord) []hexcoord.Coord {
	out := make([]hexcoord.Coord, 0, len(coords))
	for _, c := range coords {
		if d.Colorable(c) {
			out = append(out, c)
		}
	}
	return out
}
