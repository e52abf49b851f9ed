package solve

import (
	"context"
	"testing"
	"time"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/env"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

func TestSolveTinyLinePuzzle(t *testing.T) {
	clue := hexcoord.New(0, 0, 0)
	a := clue.Add(defn.DirVertical.Step())
	b := a.Add(defn.DirVertical.Step())
	cells := map[hexcoord.Coord]defn.Cell{
		clue: defn.LineClue(defn.DirVertical, defn.Modifier{Kind: defn.ModExact, Count: 2}),
		a:    defn.Zone0(false, defn.ColorBlue),
		b:    defn.Zone0(false, defn.ColorBlue),
	}
	d := defn.New(cells, 2)
	e := env.New(context.Background(), time.Second)
	defer e.Close()

	outcome := Solve(e, d, false)
	if outcome.Kind != OutcomeSolved {
		t.Fatalf("outcome.Kind = %v, want OutcomeSolved (outcome=%s)", outcome.Kind, outcome)
	}
	if len(outcome.History) == 0 {
		t.Fatal("expected at least one solver step")
	}
}

func TestSolveAlreadySolvedPuzzle(t *testing.T) {
	a := hexcoord.New(0, 0, 0)
	cells := map[hexcoord.Coord]defn.Cell{
		a: defn.Zone0(true, defn.ColorBlue),
	}
	d := defn.New(cells, 1)
	e := env.New(context.Background(), time.Second)
	defer e.Close()

	outcome := Solve(e, d, false)
	if outcome.Kind != OutcomeSolved {
		t.Fatalf("outcome.Kind = %v, want OutcomeSolved", outcome.Kind)
	}
	if len(outcome.History) != 0 {
		t.Errorf("expected zero steps for an already-fully-revealed puzzle, got %d", len(outcome.History))
	}
}

func TestOutcomeStringFormats(t *testing.T) {
	if got := Unsolvable().String(); got != "Requires additional rules" {
		t.Errorf("Unsolvable().String() = %q", got)
	}
	if got := TimedOut().String(); got != "Timeout" {
		t.Errorf("TimedOut().String() = %q", got)
	}
	solved := Solved([]Findings{
		{Difficulty: Local(1), Cells: []hexcoord.Coord{hexcoord.New(0, 0, 0)}},
		{Difficulty: Global(3), Cells: []hexcoord.Coord{hexcoord.New(1, 0, -1)}},
	})
	want := "Solved steps:2 max-local-difficulty:Some(1) max-global-difficulty:Some(3)"
	if got := solved.String(); got != want {
		t.Errorf("Solved(...).String() = %q, want %q", got, want)
	}
}
