// Package multiverse implements the solver's core uncertainty
// representation: for a scope (set of coordinates) constrained by one or
// more clues, the multiverse is the set of colorings of that scope
// consistent with the clues. Narrowing (Learn) and combining (Merge) two
// multiverses are the two operations the rest of the solver builds on.
package multiverse

import (
	"sort"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// State classifies a multiverse's progress toward being solved.
type State int

const (
	// Running: the scope is non-empty and at least one world remains.
	Running State = iota
	// Stuck: no worlds remain (a contradiction). Never occurs on a valid
	// puzzle; gc() treats this as a fatal assertion.
	Stuck
	// Empty: the scope is empty (every coordinate has been learned away).
	Empty
)

// Multiverse is an immutable value: the set of colorings of Scope()
// consistent with some clue (or conjunction of clues). Learn and Merge
// return new values; nothing mutates an existing Multiverse.
type Multiverse struct {
	scope  []hexcoord.Coord // sorted ascending; bit i of each world is scope[i]
	worlds map[string]world
}

// empty returns the zero multiverse over an empty scope with one (trivial)
// world, representing "no uncertainty left to resolve", the identity for
// Merge.
func empty() Multiverse {
	w := newWorld(0)
	return Multiverse{scope: nil, worlds: map[string]world{w.key(): w}}
}

// Identity is the public constructor for the Merge identity value, used to
// seed folds (see registry's GlobalInvariants).
func Identity() Multiverse { return empty() }

func newCanonicalScope(coords []hexcoord.Coord) []hexcoord.Coord {
	out := make([]hexcoord.Coord, len(coords))
	copy(out, coords)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func fromWorlds(scope []hexcoord.Coord, worlds map[string]world) Multiverse {
	return Multiverse{scope: scope, worlds: worlds}
}

// Scope returns the coordinates this multiverse constrains, in canonical
// (sorted) order.
func (m Multiverse) Scope() []hexcoord.Coord {
	out := make([]hexcoord.Coord, len(m.scope))
	copy(out, m.scope)
	return out
}

// NumWorlds reports how many distinct colorings remain. Exposed mainly for
// tests and diagnostics.
func (m Multiverse) NumWorlds() int {
	return len(m.worlds)
}

// State classifies the multiverse per the rules in the type doc.
func (m Multiverse) State() State {
	switch {
	case len(m.scope) == 0:
		return Empty
	case len(m.worlds) == 0:
		return Stuck
	default:
		return Running
	}
}

func (m Multiverse) indexOf(c hexcoord.Coord) (int, bool) {
	i := sort.Search(len(m.scope), func(i int) bool { return !m.scope[i].Less(c) })
	if i < len(m.scope) && m.scope[i] == c {
		return i, true
	}
	return 0, false
}

// Invariants returns every (coord, color) pair whose color is the same in
// every remaining world.
func (m Multiverse) Invariants() map[hexcoord.Coord]defn.Color {
	out := make(map[hexcoord.Coord]defn.Color)
	if len(m.worlds) == 0 || len(m.scope) == 0 {
		return out
	}
	for i, c := range m.scope {
		var sawBlue, sawBlack bool
		for _, w := range m.worlds {
			if w.get(i) {
				sawBlue = true
			} else {
				sawBlack = true
			}
			if sawBlue && sawBlack {
				break
			}
		}
		switch {
		case sawBlue && !sawBlack:
			out[c] = defn.ColorBlue
		case sawBlack && !sawBlue:
			out[c] = defn.ColorBlack
		}
	}
	return out
}

// Learn returns a multiverse whose scope drops coord (if present), keeping
// only the worlds in which coord had color. If coord is not in scope, Learn
// returns m unchanged. If no remaining world agrees with color, the result
// has no worlds: its State is Stuck, or Empty when coord was the last
// coordinate in scope.
func (m Multiverse) Learn(coord hexcoord.Coord, color defn.Color) Multiverse {
	idx, ok := m.indexOf(coord)
	if !ok {
		return m
	}
	newScope := make([]hexcoord.Coord, 0, len(m.scope)-1)
	newScope = append(newScope, m.scope[:idx]...)
	newScope = append(newScope, m.scope[idx+1:]...)

	wantBlue := color == defn.ColorBlue
	newWorlds := make(map[string]world)
	for _, w := range m.worlds {
		if w.get(idx) != wantBlue {
			continue
		}
		nw := w.removeIndex(idx, len(m.scope))
		newWorlds[nw.key()] = nw
	}
	return fromWorlds(newScope, newWorlds)
}
