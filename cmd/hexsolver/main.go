// Command hexsolver reads a Hexcells-style puzzle definition from stdin and
// reports whether the deductive solver can fully color it, printing both a
// human-readable summary and the step-by-step history as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/hexcells-solver/internal/defn"
	"github.com/kpitt/hexcells-solver/internal/env"
	"github.com/kpitt/hexcells-solver/internal/solve"
)

func main() {
	timeoutSeconds := flag.Int("timeout", 30, "solver deadline in seconds (0 disables the deadline)")
	verbose := flag.Bool("verbose", false, "print per-round solver progress")
	flag.Parse()

	if args := flag.Args(); len(args) != 1 || args[0] != "-" {
		color.HiRed("usage: hexsolver [-timeout seconds] [-verbose] -")
		os.Exit(1)
	}

	if isStdinTTY() {
		fmt.Println("Enter a 38-line puzzle definition (1 header line + 37 grid rows).")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	d, err := defn.Parse(os.Stdin)
	if err != nil {
		color.HiRed("Could not parse puzzle definition: %v", err)
		os.Exit(1)
	}

	budget := time.Duration(*timeoutSeconds) * time.Second
	e := env.New(context.Background(), budget)
	defer e.Close()

	outcome := solve.Solve(e, d, *verbose)

	switch outcome.Kind {
	case solve.OutcomeSolved:
		color.HiGreen("\n%s", outcome)
	case solve.OutcomeUnsolvable:
		color.HiRed("\n%s", outcome)
	case solve.OutcomeTimeout:
		color.HiYellow("\n%s", outcome)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		color.HiRed("Could not encode history: %v", err)
		os.Exit(1)
	}

	if outcome.Kind != solve.OutcomeSolved {
		os.Exit(1)
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
