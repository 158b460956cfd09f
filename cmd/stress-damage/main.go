// Command stress-damage solves the stress-hormone life-history model for
// one parameter set and writes the strategy, trajectory and (optionally)
// forward-projection artifacts as flat tab-delimited text files whose
// names encode the parameter values.
//
// Usage:
//
//	stress-damage [-forward] pLeave pArrive pAttack alpha kmort kfec
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/favchett/stress-damage/forward"
	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/policy"
	"github.com/favchett/stress-damage/simulate"
)

func main() {
	runForward := flag.Bool("forward", false, "also compute and write the forward population projection")
	flag.Usage = usage
	flag.Parse()

	p, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	if err := run(p, *runForward); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stress-damage [-forward] pLeave pArrive pAttack alpha kmort kfec")
	fmt.Fprintln(os.Stderr, "  pLeave, pArrive, pAttack: probabilities in [0,1)")
	fmt.Fprintln(os.Stderr, "  alpha, kmort, kfec: non-negative curve coefficients")
}

// parseArgs maps the six positional arguments onto the model parameters,
// failing fast with the argument name and expected range on bad input.
func parseArgs(args []string) (model.Params, error) {
	names := []string{"pLeave", "pArrive", "pAttack", "alpha", "kmort", "kfec"}
	if len(args) != len(names) {
		return model.Params{}, fmt.Errorf("stress-damage: want %d positional arguments, got %d", len(names), len(args))
	}

	vals := make([]float64, len(names))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return model.Params{}, fmt.Errorf("stress-damage: argument %s: %q is not a number", names[i], a)
		}
		vals[i] = v
	}

	p := model.DefaultParams()
	p.PLeave = vals[0]
	p.PArrive = vals[1]
	p.PAttack = vals[2]
	p.Alpha = vals[3]
	p.KMort = vals[4]
	p.KFec = vals[5]

	// Validate here so range errors surface before any file is created.
	if err := p.Validate(); err != nil {
		return model.Params{}, err
	}

	return p, nil
}

func run(p model.Params, runForward bool) error {
	tab, err := model.New(p)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()

	// Drive the solver iteration by iteration so progress is visible on
	// long runs.
	solver, err := policy.NewSolver(tab)
	if err != nil {
		return err
	}
	fmt.Println("i\ttotfitdiff")

	res := policy.Result{Policy: solver.Policy()}
	for i := 1; i <= policy.DefaultMaxIter; i++ {
		diff := solver.Step()
		fmt.Printf("%d\t%g\n", i, diff)
		res.Iterations = i
		res.FinalDiff = diff
		if diff < policy.DefaultTolerance {
			res.Converged = true
			break
		}
	}

	if err := writeStrategy(p, res, seed); err != nil {
		return err
	}

	if runForward {
		proj, err := forward.Project(tab, res.Policy, forward.DefaultOptions())
		if err != nil {
			return err
		}
		if err := writeForward(p, proj); err != nil {
			return err
		}
	}

	trace, err := simulate.Run(tab, res.Policy, simulate.Options{
		Seed:        seed,
		AttackStart: simulate.DefaultAttackStart,
		AttackEnd:   simulate.DefaultAttackEnd,
	})
	if err != nil {
		return err
	}

	return writeTrajectory(p, trace)
}
