// Package registry tracks every constraint (per-cell clue plus the global
// blue-count constraint) across its hidden/visible/exhausted lifecycle, and
// implements the trivial, compound, and global invariant-extraction tiers
// the solver loop escalates through.
package registry

import (
	"sort"

	"github.com/kpitt/hexcells-solver/internal/constraint"
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
	"github.com/kpitt/hexcells-solver/internal/progress"
	"github.com/kpitt/hexcells-solver/internal/set"
)

// Registry is the solver's constraint bookkeeping: hidden constraints wait
// for their cell to be revealed, visible ones are narrowed every round, and
// exhausted ones have been narrowed down to an empty scope.
type Registry struct {
	hidden    map[Key]multiverse.Multiverse
	visible   map[Key]multiverse.Multiverse
	exhausted map[Key]struct{}
}

// OfDefn builds the initial registry: line clues and the global blue-count
// constraint start visible (they carry no hidden dependency), ring and
// remote clues start hidden until their own cell is revealed.
func OfDefn(d *defn.Defn) *Registry {
	r := &Registry{
		hidden:    make(map[Key]multiverse.Multiverse),
		visible:   make(map[Key]multiverse.Multiverse),
		exhausted: make(map[Key]struct{}),
	}
	for _, e := range d.All() {
		switch e.Cell.Kind {
		case defn.KindLine:
			r.visible[Key{Kind: KeyClue, Coord: e.Coord}] = constraint.Line(d, e.Coord, e.Cell.Dir, e.Cell.Mod)
		case defn.KindZone6:
			r.hidden[Key{Kind: KeyClue, Coord: e.Coord}] = constraint.Zone6(d, e.Coord, e.Cell.Mod)
		case defn.KindZone18:
			r.hidden[Key{Kind: KeyClue, Coord: e.Coord}] = constraint.Zone18(d, e.Coord, e.Cell.Count)
		}
	}
	r.visible[Key{Kind: KeyGlobal}] = constraint.GlobalBlueCount(d)
	return r
}

// Reveal moves any hidden constraint whose own cell is now visible into the
// visible set.
func (r *Registry) Reveal(visible []hexcoord.Coord) {
	visibleSet := set.FromSlice(visible)
	for k, mv := range r.hidden {
		if k.Kind != KeyClue {
			continue
		}
		if visibleSet.Contains(k.Coord) {
			r.visible[k] = mv
			delete(r.hidden, k)
		}
	}
}

// Narrow learns every newly-known color in p into each visible constraint
// whose scope intersects the set of visible cells.
func (r *Registry) Narrow(visible []hexcoord.Coord, p *progress.Progress) {
	visibleSet := set.FromSlice(visible)
	for k, mv := range r.visible {
		touched := false
		for _, c := range set.Intersect(set.FromSlice(mv.Scope()), visibleSet).Values() {
			color, known := p.ColorOf(c)
			if !known {
				continue
			}
			mv = mv.Learn(c, color)
			touched = true
		}
		if touched {
			r.visible[k] = mv
		}
	}
}

// GC moves every visible constraint whose scope has been fully narrowed
// away into the exhausted set. A visible constraint with no remaining
// worlds means the puzzle definition is contradictory, which should never
// happen for a well-formed puzzle.
func (r *Registry) GC() {
	for k, mv := range r.visible {
		switch mv.State() {
		case multiverse.Running:
			continue
		case multiverse.Stuck:
			panic("registry: constraint " + k.String() + " has no remaining worlds, puzzle is contradictory")
		case multiverse.Empty:
			delete(r.visible, k)
			r.exhausted[k] = struct{}{}
		}
	}
}

// IsSolved reports whether every constraint has been exhausted.
func (r *Registry) IsSolved() bool {
	return len(r.visible) == 0 && len(r.hidden) == 0
}

// NumVisible reports the number of currently active constraints, used as
// the Global(k) difficulty level when global invariant extraction finally
// resolves something.
func (r *Registry) NumVisible() int {
	return len(r.visible)
}

func sortedVisibleKeys(r *Registry) []Key {
	keys := make([]Key, 0, len(r.visible))
	for k := range r.visible {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Coord.Less(keys[j].Coord)
	})
	return keys
}
