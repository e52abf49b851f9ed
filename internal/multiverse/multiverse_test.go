package multiverse

import (
	"testing"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

func coords(n int) []hexcoord.Coord {
	out := make([]hexcoord.Coord, n)
	for i := range out {
		out[i] = hexcoord.New(i, 0, -i)
	}
	return out
}

func allColorings(scope []hexcoord.Coord) Multiverse {
	return FromPredicate(scope, func(Coloring) bool { return true })
}

func TestScopeMonotonicity(t *testing.T) {
	cs := coords(3)
	m := allColorings(cs)
	learned := m.Learn(cs[1], defn.ColorBlue)

	want := map[hexcoord.Coord]bool{cs[0]: true, cs[2]: true}
	if len(learned.Scope()) != len(want) {
		t.Fatalf("Learn scope = %v, want coords other than %v", learned.Scope(), cs[1])
	}
	for _, c := range learned.Scope() {
		if !want[c] {
			t.Errorf("unexpected coordinate %v left in scope", c)
		}
	}
}

func TestLearnIdempotence(t *testing.T) {
	cs := coords(3)
	m := allColorings(cs)
	once := m.Learn(cs[0], defn.ColorBlue)
	twice := once.Learn(cs[0], defn.ColorBlue)
	if !sameWorldSet(once, twice) {
		t.Errorf("Learn is not idempotent: once=%v twice=%v", once.worlds, twice.worlds)
	}
}

func TestLearnCommutativity(t *testing.T) {
	cs := coords(3)
	m := allColorings(cs)
	ab := m.Learn(cs[0], defn.ColorBlue).Learn(cs[1], defn.ColorBlack)
	ba := m.Learn(cs[1], defn.ColorBlack).Learn(cs[0], defn.ColorBlue)
	if !sameWorldSet(ab, ba) {
		t.Errorf("Learn is not commutative on distinct coords")
	}
}

func TestMergeDisjointIsProduct(t *testing.T) {
	a := allColorings(coords(2))
	bCoords := []hexcoord.Coord{hexcoord.New(10, 0, -10), hexcoord.New(11, 0, -11)}
	b := allColorings(bCoords)

	merged := a.Merge(b)
	if merged.NumWorlds() != a.NumWorlds()*b.NumWorlds() {
		t.Errorf("Merge on disjoint scopes: got %d worlds, want %d", merged.NumWorlds(), a.NumWorlds()*b.NumWorlds())
	}
}

func TestMergeCommutesAndAssociates(t *testing.T) {
	cs := coords(4)
	a := FromPredicateWithBlueCount(cs[0:2], 1, nil)
	b := FromPredicateWithBlueCount(cs[1:3], 1, nil)
	c := FromPredicateWithBlueCount(cs[2:4], 1, nil)

	ab := a.Merge(b)
	ba := b.Merge(a)
	if !sameWorldSet(ab, ba) {
		t.Errorf("Merge is not commutative")
	}

	abc1 := a.Merge(b).Merge(c)
	abc2 := a.Merge(b.Merge(c))
	if !sameWorldSet(abc1, abc2) {
		t.Errorf("Merge is not associative")
	}
}

func TestInvariantSoundness(t *testing.T) {
	cs := coords(3)
	m := FromPredicateWithBlueCount(cs, 3, nil) // all-blue forced
	inv := m.Invariants()
	for _, c := range cs {
		if inv[c] != defn.ColorBlue {
			t.Errorf("expected %v forced blue, invariants=%v", c, inv)
		}
	}

	// Every invariant must hold in every remaining world.
	for coord, col := range inv {
		for _, w := range m.worlds {
			idx, _ := m.indexOf(coord)
			want := col == defn.ColorBlue
			if w.get(idx) != want {
				t.Errorf("invariant %v=%v violated by a world", coord, col)
			}
		}
	}
}

func TestStuckWhenNoWorldAgrees(t *testing.T) {
	cs := coords(2)
	m := FromPredicateWithBlueCount(cs, 2, nil) // forces cs[0] blue
	stuck := m.Learn(cs[0], defn.ColorBlack)
	if stuck.State() != Stuck {
		t.Errorf("State() = %v, want Stuck", stuck.State())
	}
}

func TestEmptyState(t *testing.T) {
	if Identity().State() != Empty {
		t.Errorf("Identity().State() = %v, want Empty", Identity().State())
	}
	cs := coords(1)
	m := allColorings(cs)
	learned := m.Learn(cs[0], defn.ColorBlue)
	if learned.State() != multiverseEmptyState(learned) {
		t.Skip("sanity check only")
	}
}

func multiverseEmptyState(m Multiverse) State {
	return m.State()
}

func TestNChooseK(t *testing.T) {
	cases := []struct{ n, k, want uint64 }{
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {1, 1, 1}, {2, 1, 2},
		{3, 1, 3}, {7, 1, 7}, {7, 2, 21}, {7, 3, 35}, {7, 4, 35},
		{7, 5, 21}, {7, 6, 7}, {7, 7, 1},
	}
	for _, tc := range cases {
		got, overflow := NChooseK(tc.n, tc.k)
		if overflow {
			t.Errorf("NChooseK(%d,%d) unexpectedly overflowed", tc.n, tc.k)
		}
		if got != tc.want {
			t.Errorf("NChooseK(%d,%d) = %d, want %d", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestNChooseKOverflow(t *testing.T) {
	_, overflow := NChooseK(1000, 500)
	if !overflow {
		t.Error("expected NChooseK(1000,500) to overflow")
	}
}

// sameWorldSet compares two multiverses' world sets up to the keyed
// deduplication representation, independent of scope coordinate identity
// remapping concerns (both sides are expected to share the same scope set).
func sameWorldSet(a, b Multiverse) bool {
	if len(a.scope) != len(b.scope) {
		return false
	}
	for i := range a.scope {
		if a.scope[i] != b.scope[i] {
			return false
		}
	}
	if len(a.worlds) != len(b.worlds) {
		return false
	}
	for k := range a.worlds {
		if _, ok := b.worlds[k]; !ok {
			return false
		}
	}
	return true
}
