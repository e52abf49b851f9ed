// Package solve drives the deduction loop: reveal newly-known cells to
// their constraints, narrow and garbage-collect them, then escalate from
// trivial through compound to global invariant extraction until the board
// is fully colored, stuck, or out of time.
package solve

import (
	"errors"

	"github.com/fatih/color"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/env"
	"github.com/kpitt/hexcells-solver/internal/hexcoord"
	"github.com/kpitt/hexcells-solver/internal/progress"
	"github.com/kpitt/hexcells-solver/internal/registry"
)

// Solve runs the deduction loop against d until it is Solved, found
// Unsolvable, or hit e's deadline (Timeout). verbose prints per-round
// progress.
func Solve(e *env.Env, d *defn.Defn, verbose bool) Outcome {
	p := progress.OfDefn(d)
	reg := registry.OfDefn(d)
	var history []Findings

	for {
		visible := p.VisibleCells()
		if verbose {
			printRound(len(visible), p.NumUnknowns())
		}

		reg.Reveal(visible)
		reg.Narrow(visible, p)
		reg.GC()

		if p.IsSolved() {
			if !reg.IsSolved() {
				panic("solve: progress reports solved but constraints remain")
			}
			break
		}

		invariants := reg.TrivialInvariants()
		difficulty := Local(1)

		if len(invariants) == 0 {
			e.ResetTimer()
			compound, level, err := reg.CompoundInvariants(e)
			if err != nil {
				if errors.Is(err, env.ErrTimeout) {
					return TimedOut()
				}
				panic("solve: compound invariant search failed: " + err.Error())
			}
			invariants = compound
			difficulty = Local(level)
		}

		if len(invariants) == 0 {
			difficulty = Global(reg.NumVisible())
			global, err := reg.GlobalInvariants(e)
			if err != nil {
				if errors.Is(err, env.ErrTimeout) {
					return TimedOut()
				}
				panic("solve: global invariant search failed: " + err.Error())
			}
			invariants = global
			if len(invariants) == 0 {
				return Unsolvable()
			}
		}

		cells := make([]hexcoord.Coord, 0, len(invariants))
		for c := range invariants {
			cells = append(cells, c)
		}
		history = append(history, Findings{Difficulty: difficulty, Cells: cells})
		if verbose {
			printFound(difficulty, len(cells))
		}

		p.Update(invariants)
	}
	return Solved(history)
}

func printRound(numVisible, numUnknown int) {
	color.Yellow("Solver round with visible:%d unknown:%d", numVisible, numUnknown)
}

func printFound(d Difficulty, n int) {
	color.HiGreen("Found %d cell(s) at difficulty %s", n, d)
}
