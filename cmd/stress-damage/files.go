package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/favchett/stress-damage/forward"
	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/policy"
	"github.com/favchett/stress-damage/simulate"
)

// artifactName encodes the varied parameters into the file name, in
// fixed-point format: <prefix>L<pLeave>A<pArrive>Kmort<kmort>Kfec<kfec>.txt.
func artifactName(prefix string, p model.Params) string {
	return fmt.Sprintf("%sL%fA%fKmort%fKfec%f.txt", prefix, p.PLeave, p.PArrive, p.KMort, p.KFec)
}

// writeStrategy writes the converged strategy artifact: seed line,
// per-state hormone rows, iteration count (with a warning when the run
// hit the iteration cap), and the full parameter dump.
func writeStrategy(p model.Params, res policy.Result, seed int64) error {
	f, err := os.Create(artifactName("stress", p))
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "Random seed: %d\n\n", seed)

	fmt.Fprintln(w, "t\td\tts\thormone")
	for t := 0; t <= p.MaxT; t++ {
		for ts := 0; ts < p.MaxTs; ts++ {
			for d := 0; d <= p.MaxD; d++ {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", t, d, ts, res.Policy.At(t, ts, d))
			}
		}
	}

	fmt.Fprintf(w, "\nnIterations\t%d\n", res.Iterations)
	if !res.Converged {
		fmt.Fprintf(w, "*** DID NOT CONVERGE WITHIN %d ITERATIONS (diff %g) ***\n",
			res.Iterations, res.FinalDiff)
	}

	fmt.Fprintf(w, "\nPARAMETER VALUES\n")
	fmt.Fprintf(w, "pLeave: \t%g\n", p.PLeave)
	fmt.Fprintf(w, "pArrive: \t%g\n", p.PArrive)
	fmt.Fprintf(w, "pAttack: \t%g\n", p.PAttack)
	fmt.Fprintf(w, "alpha: \t%g\n", p.Alpha)
	fmt.Fprintf(w, "mu0: \t%g\n", p.Mu0)
	fmt.Fprintf(w, "Kmort: \t%g\n", p.KMort)
	fmt.Fprintf(w, "Kfec: \t%g\n", p.KFec)
	fmt.Fprintf(w, "maxI: \t%d\n", policy.DefaultMaxIter)
	fmt.Fprintf(w, "maxT: \t%d\n", p.MaxT)
	fmt.Fprintf(w, "maxTs: \t%d\n", p.MaxTs)
	fmt.Fprintf(w, "maxD: \t%d\n", p.MaxD)
	fmt.Fprintf(w, "maxH: \t%d\n", p.MaxH)
	fmt.Fprintf(w, "hmin: \t%g\n", p.HMin)
	fmt.Fprintf(w, "hslope: \t%g\n", p.HSlope)
	fmt.Fprintf(w, "repair: \t%g\n", p.Repair)

	return w.Flush()
}

// writeForward writes the forward-projection artifact: the death-rate
// summary, then one frequency row per (t, ts, damage, hormone) state.
func writeForward(p model.Params, proj forward.Result) error {
	f, err := os.Create(artifactName("fwdCalc", p))
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "SUMMARY STATS")
	fmt.Fprintf(w, "predDeaths: \t%g\n", proj.PredationDeaths)
	fmt.Fprintf(w, "damageDeaths: \t%g\n", proj.DamageDeaths)
	fmt.Fprintf(w, "bkgrndDeaths: \t%g\n", proj.BackgroundDeaths)
	fmt.Fprintf(w, "nCycles: \t%d\n", proj.Cycles)
	if !proj.Converged {
		fmt.Fprintf(w, "*** DID NOT REACH STATIONARITY WITHIN %d CYCLES (max change %g) ***\n",
			proj.Cycles, proj.MaxChange)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\tt\tts\tdamage\thormone\tfreq")
	for t := 1; t <= p.MaxT; t++ {
		for ts := 0; ts <= p.MaxTs; ts++ {
			for d := 0; d <= p.MaxD; d++ {
				for h := 0; h <= p.MaxH; h++ {
					fmt.Fprintf(w, "\t%d\t%d\t%d\t%d\t%.4g\n", t, ts, d, h, proj.Freq.At(t, ts, d, h))
				}
			}
		}
	}

	return w.Flush()
}

// writeTrajectory writes the simulated-attack artifact: one row per step.
func writeTrajectory(p model.Params, trace []simulate.Step) error {
	f, err := os.Create(artifactName("simAttacks", p))
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "time\tt\tts\tdamage\thormone\tattack\treproduce")
	for _, st := range trace {
		attack := 0
		if st.Attack {
			attack = 1
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			st.Time, st.T, st.Ts, st.Damage, st.Hormone, attack, st.Phase)
	}

	return w.Flush()
}
