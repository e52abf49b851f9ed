package registry

import (
	"context"
	"errors"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/env"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/multiverse"
)

// TrivialInvariants looks for cells whose color is fixed in every world of a
// single visible constraint, taken in isolation. This is the cheapest and
// first-tried invariant source (Local(1) difficulty).
func (r *Registry) TrivialInvariants() map[hexcoord.Coord]defn.Color {
	invariants := make(map[hexcoord.Coord]defn.Color)
	for _, mv := range r.visible {
		for coord, color := range mv.Invariants() {
			invariants[coord] = color
		}
	}
	return invariants
}

// group is a set of constraint keys merged into one multiverse, tracked
// during compound-invariant search under a canonical key-set string so
// already-tried combinations aren't rebuilt.
type group struct {
	keys []Key
	mv   multiverse.Multiverse
}

func groupID(keys []Key) string {
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = k.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, "|")
}

// CompoundInvariants iteratively merges connected visible constraints
// (excluding the global one, which is handled separately to avoid
// combinatorial blowup) into ever-larger groups until some group's merged
// multiverse yields an invariant. Each iteration's merges run in a bounded
// worker pool since merging a group is independent of every other group's
// merge that round. Returns the invariants found plus the Local(n)
// difficulty level at which they were found (n starts at 2: Local(1) is
// TrivialInvariants's exclusive territory).
func (r *Registry) CompoundInvariants(e *env.Env) (map[hexcoord.Coord]defn.Color, int, error) {
	connections := r.buildConnections()

	groups := make(map[string]group)
	for k, mv := range r.visible {
		if k.Kind == KeyGlobal {
			continue
		}
		groups[groupID([]Key{k})] = group{keys: []Key{k}, mv: mv}
	}

	invariants := make(map[hexcoord.Coord]defn.Color)
	difficulty := 2
	if len(groups) == 0 {
		return invariants, difficulty, nil
	}

	const maxIterations = 1000
	for iteration := 0; iteration < maxIterations; iteration++ {
		if err := e.CheckTimeout(); err != nil {
			return nil, 0, err
		}

		snapshot := make(map[string]group, len(groups))
		snapshotList := make([]group, 0, len(groups))
		for id, g := range groups {
			snapshot[id] = g
			snapshotList = append(snapshotList, g)
		}

		// Each group's expansion is independent of every other group's, so
		// the merges run concurrently; perGroup[i] holds group i's results,
		// collected (not shared) to avoid a channel deadlock against the
		// bounded worker pool. The errgroup shares e's cancellation context,
		// so a deadline firing mid-round stops the remaining goroutines
		// instead of letting them run to completion.
		perGroup := make([][]expansionResult, len(snapshotList))
		eg, egCtx := errgroup.WithContext(e.Context())
		eg.SetLimit(8)
		for i, g := range snapshotList {
			i, g := i, g
			eg.Go(func() error {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				default:
				}
				perGroup[i] = neighborsOf(g, connections, r.visible, snapshot)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, 0, env.ErrTimeout
			}
			return nil, 0, err
		}

		for id := range snapshot {
			delete(groups, id)
		}
		for _, expansions := range perGroup {
			for _, exp := range expansions {
				if _, already := groups[exp.id]; !already {
					groups[exp.id] = exp.g
				}
			}
		}

		for _, g := range groups {
			for coord, color := range g.mv.Invariants() {
				invariants[coord] = color
			}
		}
		if len(invariants) > 0 {
			return invariants, difficulty, nil
		}
		if len(groups) == 0 {
			return invariants, difficulty, nil
		}
		difficulty++
	}
	return invariants, difficulty, nil
}

type expansionResult struct {
	id string
	g  group
}

func neighborsOf(g group, connections map[Key]map[Key]struct{}, visible map[Key]multiverse.Multiverse, snapshot map[string]group) []expansionResult {
	inGroup := make(map[Key]struct{}, len(g.keys))
	for _, k := range g.keys {
		inGroup[k] = struct{}{}
	}

	neighborSet := make(map[Key]struct{})
	for _, k := range g.keys {
		for n := range connections[k] {
			if _, ok := inGroup[n]; !ok {
				neighborSet[n] = struct{}{}
			}
		}
	}

	var out []expansionResult
	for n := range neighborSet {
		newKeys := append(append([]Key{}, g.keys...), n)
		id := groupID(newKeys)
		if _, exists := snapshot[id]; exists {
			continue
		}
		merged := g.mv.Merge(visible[n])
		out = append(out, expansionResult{id: id, g: group{keys: newKeys, mv: merged}})
	}
	return out
}

// buildConnections inverts each non-global visible constraint's scope into a
// coordinate->keys index, then turns that into a key->key adjacency: two
// constraints are connected when their scopes share a coordinate.
func (r *Registry) buildConnections() map[Key]map[Key]struct{} {
	byCoord := make(map[hexcoord.Coord][]Key)
	for k, mv := range r.visible {
		if k.Kind == KeyGlobal {
			continue
		}
		for _, c := range mv.Scope() {
			byCoord[c] = append(byCoord[c], k)
		}
	}

	connections := make(map[Key]map[Key]struct{})
	for k := range r.visible {
		if k.Kind == KeyGlobal {
			continue
		}
		connections[k] = make(map[Key]struct{})
	}
	for _, keys := range byCoord {
		for _, a := range keys {
			for _, b := range keys {
				if a != b {
					connections[a][b] = struct{}{}
				}
			}
		}
	}
	return connections
}

// GlobalInvariants merges every visible constraint (global one first, a
// cheap reordering trick that keeps intermediate multiverses small, since
// the global constraint already rules out most colorings) and extracts
// whatever invariants the fully-merged multiverse yields.
func (r *Registry) GlobalInvariants(e *env.Env) (map[hexcoord.Coord]defn.Color, error) {
	keys := sortedVisibleKeys(r)
	mv := multiverse.Identity()
	for i := len(keys) - 1; i >= 0; i-- {
		if err := e.CheckTimeout(); err != nil {
			return nil, err
		}
		mv = mv.Merge(r.visible[keys[i]])
	}

	invariants := make(map[hexcoord.Coord]defn.Color)
	for coord, color := range mv.Invariants() {
		invariants[coord] = color
	}
	return invariants, nil
}
