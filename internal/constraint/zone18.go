package constraint

import (
	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// Zone18 builds the Multiverse for a two-ring (18-neighborhood) remote clue
// at at: the scope is at's colorable neighbors at distance 1 or 2, with an
// exact blue count and no ordering constraint.
func Zone18(d *defn.Defn, at hexcoord.Coord, count int) multiverse.Multiverse {
	ring := at.Neighbors18()
	scope := colorableScope(d, ring[:])
	mv := multiverse.FromPredicateWithBlueCount(scope, count, nil)
	return learnKnown(d, mv)
}
