package constraint

import (
	"testing"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

func TestLineExactCount(t *testing.T) {
	at := hexcoord.New(0, 0, 0)
	cells := map[hexcoord.Coord]defn.Cell{
		at:                          defn.LineClue(defn.DirVertical, defn.Modifier{Kind: defn.ModExact, Count: 1}),
		at.Add(defn.DirVertical.Step()):                     defn.Zone0(false, defn.ColorBlack),
		at.Add(defn.DirVertical.Step()).Add(defn.DirVertical.Step()): defn.Zone0(false, defn.ColorBlack),
	}
	d := defn.New(cells, 0)

	mv := Line(d, at, defn.DirVertical, defn.Modifier{Kind: defn.ModExact, Count: 1})
	if len(mv.Scope()) != 2 {
		t.Fatalf("scope = %v, want 2 cells", mv.Scope())
	}
	if mv.NumWorlds() != 2 {
		t.Fatalf("NumWorlds() = %d, want 2 (either cell blue, not both)", mv.NumWorlds())
	}
}

func TestZone6ExactCountFiltersOffGrid(t *testing.T) {
	at := hexcoord.New(0, 0, 0)
	cells := map[hexcoord.Coord]defn.Cell{
		at: defn.Zone6(false, defn.Modifier{Kind: defn.ModExact, Count: 2}),
	}
	ring := at.Neighbors6()
	for i := 0; i < 3; i++ {
		cells[ring[i]] = defn.Zone0(false, defn.ColorBlack)
	}
	d := defn.New(cells, 0)

	mv := Zone6(d, at, defn.Modifier{Kind: defn.ModExact, Count: 2})
	if len(mv.Scope()) != 3 {
		t.Fatalf("scope = %v, want 3 on-grid neighbors", mv.Scope())
	}
}

func TestZone18ScopeIsTwoRingColorableCells(t *testing.T) {
	at := hexcoord.New(0, 0, 0)
	cells := map[hexcoord.Coord]defn.Cell{
		at: defn.Zone18(false, 1),
	}
	ring := at.Neighbors18()
	for i := 0; i < 5; i++ {
		cells[ring[i]] = defn.Zone0(false, defn.ColorBlack)
	}
	d := defn.New(cells, 0)

	mv := Zone18(d, at, 1)
	if len(mv.Scope()) != 5 {
		t.Fatalf("scope = %v, want 5 colorable two-ring cells", mv.Scope())
	}
}

func TestGlobalBlueCountExcludesRevealedAndSubtractsThem(t *testing.T) {
	a := hexcoord.New(0, 0, 0)
	b := hexcoord.New(1, 0, -1)
	c := hexcoord.New(2, 0, -2)
	cells := map[hexcoord.Coord]defn.Cell{
		a: defn.Zone0(true, defn.ColorBlue),
		b: defn.Zone0(false, defn.ColorBlue),
		c: defn.Zone0(false, defn.ColorBlack),
	}
	d := defn.New(cells, 2)

	mv := GlobalBlueCount(d)
	if len(mv.Scope()) != 2 {
		t.Fatalf("scope = %v, want the 2 unrevealed cells", mv.Scope())
	}
	for _, scopeCoord := range mv.Scope() {
		if scopeCoord == a {
			t.Error("revealed cell a should not appear in the global scope")
		}
	}
}

func TestIsSingleArc(t *testing.T) {
	cases := []struct {
		ring [6]bool
		want bool
	}{
		{[6]bool{false, false, false, false, false, false}, true},
		{[6]bool{true, true, true, true, true, true}, true},
		{[6]bool{true, true, false, false, false, false}, true},
		{[6]bool{true, false, false, false, false, true}, true}, // wraps
		{[6]bool{true, false, true, false, false, false}, false},
		{[6]bool{true, false, false, true, false, false}, false},
	}
	for _, tc := range cases {
		if got := isSingleArc(tc.ring); got != tc.want {
			t.Errorf("isSingleArc(%v) = %v, want %v", tc.ring, got, tc.want)
		}
	}
}
