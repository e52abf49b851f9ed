package multiverse

import (
	"fmt"
	"math/bits"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// Coloring is a single candidate assignment of colors to a scope, passed to
// predicates during construction. It is a thin view over a bitmask; Color
// looks a coordinate up by linear scan, which is fine since scopes are small.
type Coloring struct {
	scope []hexcoord.Coord
	bits  world
}

// Color returns the color Coloring assigns to at. Panics if at is not part
// of the scope the Coloring was built over; predicates should only ever
// query coordinates they were handed.
func (c Coloring) Color(at hexcoord.Coord) defn.Color {
	for i, s := range c.scope {
		if s == at {
			if c.bits.get(i) {
				return defn.ColorBlue
			}
			return defn.ColorBlack
		}
	}
	panic(fmt.Sprintf("multiverse: Color queried for %v, not in scope", at))
}

// ColorAt returns the color at scope index i directly, for predicates that
// already track positions instead of coordinates (e.g. ring/line order).
func (c Coloring) ColorAt(i int) defn.Color {
	if c.bits.get(i) {
		return defn.ColorBlue
	}
	return defn.ColorBlack
}

// BlueCount returns the number of blue coordinates in this coloring.
func (c Coloring) BlueCount() int {
	return c.bits.popcount()
}

// Predicate decides whether a candidate coloring of a scope satisfies a
// clue.
type Predicate func(Coloring) bool

// FromPredicate enumerates every one of the 2^|scope| colorings of scope and
// keeps those satisfying pred. Used when a clue does not fix a blue count
// (or the scope is small enough that the naive enumeration is cheap).
func FromPredicate(scope []hexcoord.Coord, pred Predicate) Multiverse {
	canon := newCanonicalScope(scope)
	n := len(canon)
	if n > 30 {
		panic(fmt.Sprintf("multiverse: FromPredicate scope of %d coordinates is too large to enumerate", n))
	}
	worlds := make(map[string]world)
	total := uint64(1) << uint(n)
	for bitset := uint64(0); bitset < total; bitset++ {
		w := newWorld(n)
		for i := 0; i < n; i++ {
			if bitset&(1<<uint(i)) != 0 {
				w.set(i)
			}
		}
		if pred(Coloring{scope: canon, bits: w}) {
			worlds[w.key()] = w
		}
	}
	return fromWorlds(canon, worlds)
}

// FromPredicateWithBlueCount enumerates only the C(n, count) colorings with
// exactly `count` blues among scope, keeping those additionally satisfying
// pred (e.g. a contiguity check). This is the combinatorial-pruning path
// spec'd for clues whose modifier fixes an exact blue count, avoiding the
// full 2^n enumeration.
func FromPredicateWithBlueCount(scope []hexcoord.Coord, count int, pred Predicate) Multiverse {
	canon := newCanonicalScope(scope)
	n := len(canon)
	if count < 0 || count > n {
		return Multiverse{scope: canon, worlds: map[string]world{}}
	}
	if _, overflowed := NChooseK(uint64(n), uint64(count)); overflowed {
		panic(fmt.Sprintf("multiverse: C(%d,%d) overflows, scope too large to enumerate", n, count))
	}

	worlds := make(map[string]world)
	combinations(n, count, func(positions []int) {
		w := newWorld(n)
		for _, p := range positions {
			w.set(p)
		}
		if pred == nil || pred(Coloring{scope: canon, bits: w}) {
			worlds[w.key()] = w
		}
	})
	return fromWorlds(canon, worlds)
}

// combinations calls emit once for every k-element increasing subset of
// {0,...,n-1}.
func combinations(n, k int, emit func(positions []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		emit(nil)
		return
	}
	chosen := make([]int, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			out := make([]int, k)
			copy(out, chosen)
			emit(out)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			chosen[depth] = i
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}

// NChooseK returns n-choose-k, with a bool set to true if computing it would
// overflow a uint64. Ported from the original solver's binomial helper
// (testable property: must match Pascal's triangle for small n,k).
func NChooseK(n, k uint64) (uint64, bool) {
	if k > n {
		panic("multiverse: NChooseK called with k > n")
	}
	if k > n-k {
		k = n - k
	}
	var result uint64 = 1
	for i := uint64(0); i < k; i++ {
		fact := n - i
		quot := i + 1
		hi, lo := bits.Mul64(result, fact)
		if hi != 0 {
			return 0, true
		}
		result = lo / quot
	}
	return result, false
}
