package constraint

import (
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// Zone6 builds the Multiverse for a 6-neighborhood ring clue at at: the
// scope is at's colorable direct neighbors, and the modifier's contiguity
// check (when present) is evaluated around the full ring, with filtered-out
// neighbor slots treated as permanently black.
func Zone6(d *defn.Defn, at hexcoord.Coord, mod defn.Modifier) multiverse.Multiverse {
	ring := at.Neighbors6()
	var scope []hexcoord.Coord
	slotOf := make(map[hexcoord.Coord]int)
	for i, c := range ring {
		if d.Colorable(c) {
			scope = append(scope, c)
			slotOf[c] = i
		}
	}

	var mv multiverse.Multiverse
	switch mod.Kind {
	case defn.ModExact:
		mv = multiverse.FromPredicateWithBlueCount(scope, mod.Count, nil)
	case defn.ModConsecutive:
		mv = multiverse.FromPredicateWithBlueCount(scope, mod.Count, func(col multiverse.Coloring) bool {
			return isSingleArc(ringOf(scope, slotOf, col))
		})
	case defn.ModNonConsecutive:
		mv = multiverse.FromPredicateWithBlueCount(scope, mod.Count, func(col multiverse.Coloring) bool {
			return !isSingleArc(ringOf(scope, slotOf, col))
		})
	default:
		panic("constraint: unknown modifier kind")
	}
	return learnKnown(d, mv)
}

func ringOf(scope []hexcoord.Coord, slotOf map[hexcoord.Coord]int, col multiverse.Coloring) [6]bool {
	var ring [6]bool
	for i, c := range scope {
		if col.ColorAt(i) == defn.ColorBlue {
			ring[slotOf[c]] = true
		}
	}
	return ring
}

// isSingleArc reports whether the set slots of a 6-slot circular ring form
// one contiguous run, counting wrap-around as contiguous. Zero or six set
// slots are trivially a single run.
func isSingleArc(ring [6]bool) bool {
	total := 0
	for _, b := range ring {
		if b {
			total++
		}
	}
	if total == 0 || total == len(ring) {
		return true
	}
	risingEdges := 0
	for i := range ring {
		prev := (i + len(ring) - 1) % len(ring)
		if ring[i] && !ring[prev] {
			risingEdges++
		}
	}
	return risingEdges == 1
}
