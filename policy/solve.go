package policy

import "github.com/favchett/stress-damage/model"

// Solve runs the value iteration to convergence or to the iteration cap
// and returns the converged strategy.
//
// Contracts:
//   - tab must be non-nil (ErrNilTables).
//   - opts.MaxIter and opts.Tolerance must be non-negative; zero selects
//     the defaults (ErrBadOptions otherwise).
//
// A capped, non-converged run is not an error: Result.Converged is false
// and Result.FinalDiff reports how far the values still moved, so callers
// can surface a warning in their artifacts.
//
// Complexity: O(iterations · MaxTs·MaxT·MaxD·(log MaxH + MaxH)).
func Solve(tab *model.Tables, opts Options) (Result, error) {
	if opts.MaxIter < 0 || opts.Tolerance < 0 {
		return Result{}, ErrBadOptions
	}
	maxIter := opts.MaxIter
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	tol := opts.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	s, err := NewSolver(tab)
	if err != nil {
		return Result{}, err
	}

	var diff float64
	for i := 1; i <= maxIter; i++ {
		diff = s.Step()
		if diff < tol {
			return Result{
				Policy:     s.Policy(),
				Iterations: i,
				Converged:  true,
				FinalDiff:  diff,
			}, nil
		}
	}

	return Result{
		Policy:     s.Policy(),
		Iterations: maxIter,
		Converged:  false,
		FinalDiff:  diff,
	}, nil
}
