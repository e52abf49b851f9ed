package constraint

import (
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// Line builds the Multiverse for a line-clue cell at at: the scope is the
// contiguous run of colorable cells reachable from at by walking Dir.Step()
// forward and its negation backward, stopping at the first coordinate that
// is absent from the definition or not colorable.
func Line(d *defn.Defn, at hexcoord.Coord, dir defn.Direction, mod defn.Modifier) multiverse.Multiverse {
	scope := lineScope(d, at, dir)
	mv := buildByModifier(scope, mod)
	return learnKnown(d, mv)
}

func lineScope(d *defn.Defn, at hexcoord.Coord, dir defn.Direction) []hexcoord.Coord {
	step := dir.Step()
	var forward, backward []hexcoord.Coord

	cur := at.Add(step)
	for walkColorable(d, cur) {
		forward = append(forward, cur)
		cur = cur.Add(step)
	}

	neg := hexcoord.New(0, 0, 0).Sub(step)
	cur = at.Add(neg)
	for walkColorable(d, cur) {
		backward = append(backward, cur)
		cur = cur.Add(neg)
	}

	out := make([]hexcoord.Coord, 0, len(forward)+len(backward))
	for i := len(backward) - 1; i >= 0; i-- {
		out = append(out, backward[i])
	}
	out = append(out, forward...)
	return out
}

func walkColorable(d *defn.Defn, c hexcoord.Coord) bool {
	cell, ok := d.Cell(c)
	if !ok {
		return false
	}
	return cell.Colorable()
}

// buildByModifier enumerates scope against the modifier's count and, for
// the consecutive/non-consecutive kinds, an additional contiguity predicate
// evaluated in scope order.
func buildByModifier(scope []hexcoord.Coord, mod defn.Modifier) multiverse.Multiverse {
	switch mod.Kind {
	case defn.ModExact:
		return multiverse.FromPredicateWithBlueCount(scope, mod.Count, nil)
	case defn.ModConsecutive:
		return multiverse.FromPredicateWithBlueCount(scope, mod.Count, func(c multiverse.Coloring) bool {
			return isContiguousRun(scope, c)
		})
	case defn.ModNonConsecutive:
		return multiverse.FromPredicateWithBlueCount(scope, mod.Count, func(c multiverse.Coloring) bool {
			return !isContiguousRun(scope, c)
		})
	default:
		panic("constraint: unknown modifier kind")
	}
}

// isContiguousRun reports whether the blue positions in c form a single
// unbroken run along scope's linear order (an empty or all-black coloring
// counts as contiguous; it simply has no run to break).
func isContiguousRun(scope []hexcoord.Coord, c multiverse.Coloring) bool {
	n := len(scope)
	runs := 0
	inRun := false
	for i := 0; i < n; i++ {
		if c.ColorAt(i) == defn.ColorBlue {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return runs <= 1
}
