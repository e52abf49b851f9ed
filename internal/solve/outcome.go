package solve

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// Findings is one solver step: the difficulty it took to find it, and the
// coordinates it resolved.
type Findings struct {
	Difficulty Difficulty       `json:"difficulty"`
	Cells      []hexcoord.Coord `json:"cells"`
}

// MarshalJSON serializes Cells in canonical coordinate order rather than
// whatever order they happened to be appended in (Solve builds them from a
// map, whose iteration order is randomized), so identical puzzles produce
// byte-identical histories run to run.
func (f Findings) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Difficulty Difficulty       `json:"difficulty"`
		Cells      []hexcoord.Coord `json:"cells"`
	}{
		Difficulty: f.Difficulty,
		Cells:      f.SortedCells(),
	})
}

// OutcomeKind discriminates the three ways a solve attempt can end.
type OutcomeKind int

const (
	OutcomeSolved OutcomeKind = iota
	OutcomeUnsolvable
	OutcomeTimeout
)

// Outcome is the result of running the solver to completion, to a dead end,
// or to its deadline.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	History []Findings  `json:"history,omitempty"`
}

func Solved(history []Findings) Outcome { return Outcome{Kind: OutcomeSolved, History: history} }
func Unsolvable() Outcome               { return Outcome{Kind: OutcomeUnsolvable} }
func TimedOut() Outcome                 { return Outcome{Kind: OutcomeTimeout} }

// maxDifficulty reports the highest Local and Global levels reached across
// history, mirroring the original's (Option<u32>, Option<u32>) summary pair.
func (o Outcome) maxDifficulty() (maxLocal, maxGlobal *int) {
	for _, f := range o.History {
		lvl := f.Difficulty.Level
		switch f.Difficulty.Kind {
		case DifficultyLocal:
			if maxLocal == nil || lvl > *maxLocal {
				maxLocal = &lvl
			}
		case DifficultyGlobal:
			if maxGlobal == nil || lvl > *maxGlobal {
				maxGlobal = &lvl
			}
		}
	}
	return maxLocal, maxGlobal
}

func optionString(v *int) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", *v)
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeUnsolvable:
		return "Requires additional rules"
	case OutcomeTimeout:
		return "Timeout"
	default:
		maxLocal, maxGlobal := o.maxDifficulty()
		return fmt.Sprintf(
			"Solved steps:%d max-local-difficulty:%s max-global-difficulty:%s",
			len(o.History), optionString(maxLocal), optionString(maxGlobal),
		)
	}
}

// SortedCells returns f.Cells in canonical coordinate order, for
// deterministic printing/serialization.
func (f Findings) SortedCells() []hexcoord.Coord {
	out := make([]hexcoord.Coord, len(f.Cells))
	copy(out, f.Cells)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
