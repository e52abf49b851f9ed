package constraint

import (
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// GlobalBlueCount builds the Multiverse for the whole-board blue-count
// clue. Its scope is every colorable cell not yet revealed at construction
// time; its target is the declared total blue count minus the blues already
// revealed, which is cheaper than scoping over every colorable cell and
// learning the revealed ones away afterward.
func GlobalBlueCount(d *defn.Defn) multiverse.Multiverse {
	var scope []hexcoord.Coord
	revealedBlue := 0
	for _, e := range d.All() {
		if !e.Cell.Colorable() {
			continue
		}
		if e.Cell.Revealed {
			if e.Cell.Color == defn.ColorBlue {
				revealedBlue++
			}
			continue
		}
		scope = append(scope, e.Coord)
	}

	target := d.TotalBlueCount() - revealedBlue
	return multiverse.FromPredicateWithBlueCount(scope, target, nil)
}
