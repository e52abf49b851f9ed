package hexcoord

import "testing"

func TestNewRejectsBadCoordinate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected New to panic on q+r+s != 0")
		}
	}()
	New(1, 1, 1)
}

func TestSDerivation(t *testing.T) {
	c := New(2, -3, 1)
	if got := c.S(); got != 1 {
		t.Errorf("S() = %d, want 1", got)
	}
}

func TestAddSub(t *testing.T) {
	a := New(1, -1, 0)
	b := New(2, 0, -2)

	sum := a.Add(b)
	if sum != (New(3, -1, -2)) {
		t.Errorf("Add = %v, want (3,-1,-2)", sum)
	}

	diff := sum.Sub(b)
	if diff != a {
		t.Errorf("Sub did not invert Add: got %v, want %v", diff, a)
	}
}

func TestNeighbors6Order(t *testing.T) {
	center := New(0, 0, 0)
	want := [6]Coord{
		New(0, -1, 1),
		New(1, -1, 0),
		New(1, 0, -1),
		New(0, 1, -1),
		New(-1, 1, 0),
		New(-1, 0, 1),
	}
	got := center.Neighbors6()
	if got != want {
		t.Errorf("Neighbors6() = %v, want %v", got, want)
	}
}

func TestNeighbors18ContainsRingsOneAndTwo(t *testing.T) {
	center := New(0, 0, 0)
	ring1 := center.Neighbors6()
	all := center.Neighbors18()

	seen := make(map[Coord]bool, len(all))
	for _, c := range all {
		if c == center {
			t.Errorf("Neighbors18 must exclude the center itself")
		}
		if seen[c] {
			t.Errorf("Neighbors18 returned duplicate coordinate %v", c)
		}
		seen[c] = true
	}
	if len(all) != 18 {
		t.Fatalf("Neighbors18() returned %d coords, want 18", len(all))
	}
	for _, c := range ring1 {
		if !seen[c] {
			t.Errorf("Neighbors18() missing ring-1 neighbor %v", c)
		}
	}
}

func TestLessTotalOrder(t *testing.T) {
	a := New(0, 0, 0)
	b := New(0, 1, -1)
	c := New(1, -1, 0)

	if !a.Less(b) {
		t.Error("expected (0,0,0) < (0,1,-1)")
	}
	if !b.Less(c) {
		t.Error("expected (0,1,-1) < (1,-1,0)")
	}
	if a.Less(a) {
		t.Error("Less must be irreflexive")
	}
}
