package registry

import "github.com/kpitt/hexcells-solver/internal/hexcoord"

// KeyKind discriminates a registry key's origin: a per-cell clue, or the
// single whole-board blue-count constraint.
type KeyKind int

const (
	KeyClue KeyKind = iota
	KeyGlobal
)

// Key identifies one constraint. Clue constraints are keyed by the
// coordinate of the cell that carries the clue; the global constraint uses
// the zero Coord and is distinguished purely by Kind, replacing the
// original solver's synthetic off-grid sentinel coordinate.
type Key struct {
	Kind  KeyKind
	Coord hexcoord.Coord
}

func (k Key) String() string {
	if k.Kind == KeyGlobal {
		return "global"
	}
	return k.Coord.String()
}
