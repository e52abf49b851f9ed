package multiverse

import (
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// Merge returns a multiverse over the union of both scopes, keeping exactly
// the world pairs that agree on the shared sub-scope. Correctness is never
// sacrificed for speed, but the join itself is a hash-join on the shared
// sub-scope's projection (per the performance contract): m's worlds are
// grouped by their projection onto the shared coordinates, then other's
// worlds probe that grouping instead of a nested loop over every pair.
func (m Multiverse) Merge(other Multiverse) Multiverse {
	union, fromM, fromO := unionScope(m.scope, other.scope)
	shared, sharedInM, sharedInO := sharedIndices(m.scope, other.scope)

	if len(shared) == 0 {
		return m.mergeDisjoint(other, union, fromM, fromO)
	}

	// Build a hash index of m's worlds keyed by their projection onto the
	// shared sub-scope.
	index := make(map[string][]world)
	for _, w := range m.worlds {
		key := projectKey(w, sharedInM)
		index[key] = append(index[key], w)
	}

	newWorlds := make(map[string]world)
	for _, wo := range other.worlds {
		key := projectKey(wo, sharedInO)
		for _, wm := range index[key] {
			combined := combine(wm, wo, fromM, fromO, len(union))
			newWorlds[combined.key()] = combined
		}
	}
	return fromWorlds(union, newWorlds)
}

func (m Multiverse) mergeDisjoint(other Multiverse, union []hexcoord.Coord, fromM, fromO []int) Multiverse {
	newWorlds := make(map[string]world, len(m.worlds)*len(other.worlds))
	for _, wm := range m.worlds {
		for _, wo := range other.worlds {
			combined := combine(wm, wo, fromM, fromO, len(union))
			newWorlds[combined.key()] = combined
		}
	}
	return fromWorlds(union, newWorlds)
}

// unionScope returns the sorted union of a and b, plus for each union
// position the source index within a (or -1) and within b (or -1).
func unionScope(a, b []hexcoord.Coord) (union []hexcoord.Coord, fromA, fromB []int) {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].Less(b[j])):
			union = append(union, a[i])
			fromA = append(fromA, i)
			fromB = append(fromB, -1)
			i++
		case i >= len(a) || b[j].Less(a[i]):
			union = append(union, b[j])
			fromA = append(fromA, -1)
			fromB = append(fromB, j)
			j++
		default: // equal
			union = append(union, a[i])
			fromA = append(fromA, i)
			fromB = append(fromB, j)
			i++
			j++
		}
	}
	return union, fromA, fromB
}

// sharedIndices returns the coordinates common to a and b (sorted), plus
// their positions within a and within b respectively.
func sharedIndices(a, b []hexcoord.Coord) (shared []hexcoord.Coord, inA, inB []int) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Less(b[j]):
			i++
		case b[j].Less(a[i]):
			j++
		default:
			shared = append(shared, a[i])
			inA = append(inA, i)
			inB = append(inB, j)
			i++
			j++
		}
	}
	return shared, inA, inB
}

func projectKey(w world, indices []int) string {
	buf := make([]byte, (len(indices)+7)/8)
	for j, idx := range indices {
		if w.get(idx) {
			buf[j/8] |= 1 << uint(j%8)
		}
	}
	return string(buf)
}

func combine(wm, wo world, fromM, fromO []int, unionLen int) world {
	out := newWorld(unionLen)
	for pos := 0; pos < unionLen; pos++ {
		switch {
		case fromM[pos] >= 0:
			if wm.get(fromM[pos]) {
				out.set(pos)
			}
		case fromO[pos] >= 0:
			if wo.get(fromO[pos]) {
				out.set(pos)
			}
		}
	}
	return out
}
