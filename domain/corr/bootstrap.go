package corr

import (
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	apperrors "corrci/internal/errors"
)

// DefaultReplicates is the number of bootstrap resamples when none is set.
const DefaultReplicates = 5000

// CoefficientFunc computes a correlation coefficient over one resample.
// It must be total: a degenerate resample (for example all-identical values)
// is reported as NaN, and NaN replicates are excluded from quantile
// extraction.
type CoefficientFunc func(x, y []float64) float64

// BootstrapConfig tunes the bootstrap estimator. The zero value means
// DefaultReplicates sequential resamples.
type BootstrapConfig struct {
	// Replicates is the number of resamples B. Values >= 1000 are
	// recommended; 0 means DefaultReplicates.
	Replicates int
	// Workers > 1 generates replicates in parallel. Each worker owns a
	// generator seeded from the base generator, so a (seed, workers) pair is
	// reproducible, but changing the worker count changes which replicate
	// sequence is drawn.
	Workers int
}

// BootstrapCI builds a two-sided (1-alpha) percentile confidence interval by
// resampling pairs with replacement and recomputing the coefficient on each
// resample. One index draw is shared by both sequences, which preserves the
// pairing of x and y. Quantiles are extracted with linear interpolation
// between order statistics.
//
// All randomness comes from rng; the package never touches shared random
// state, so repeated calls with an identically seeded generator return
// bit-identical intervals.
func BootstrapCI(x, y []float64, fn CoefficientFunc, alpha float64, cfg BootstrapConfig, rng *rand.Rand) (lower, upper float64, err error) {
	if fn == nil {
		return 0, 0, apperrors.Validation("coefficient function is required")
	}
	if rng == nil {
		return 0, 0, apperrors.Validation("random generator is required")
	}
	if len(x) != len(y) {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "sequence lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "need at least 2 pairs to resample, got %d", len(x))
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "alpha must be in (0,1), got %g", alpha)
	}
	replicates := cfg.Replicates
	if replicates == 0 {
		replicates = DefaultReplicates
	}
	if replicates < 1 {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "replicates must be >= 1, got %d", replicates)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > replicates {
		workers = replicates
	}

	var reps []float64
	if workers == 1 {
		reps = resample(x, y, fn, replicates, rng)
	} else {
		reps = make([]float64, replicates)
		// Seeds are drawn from the base generator up front so each worker
		// gets an independent stream. Replicate order within the slice does
		// not affect the sorted quantiles.
		seeds := make([]int64, workers)
		for i := range seeds {
			seeds[i] = rng.Int63()
		}
		var g errgroup.Group
		chunk := replicates / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if w == workers-1 {
				hi = replicates
			}
			seed := seeds[w]
			g.Go(func() error {
				copy(reps[lo:hi], resample(x, y, fn, hi-lo, rand.New(rand.NewSource(seed))))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, 0, err
		}
	}

	kept := make([]float64, 0, len(reps))
	for _, r := range reps {
		if !math.IsNaN(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return 0, 0, apperrors.DegenerateResample("every bootstrap replicate was NaN")
	}
	sort.Float64s(kept)
	lower = stat.Quantile(alpha/2, stat.LinInterp, kept, nil)
	upper = stat.Quantile(1-alpha/2, stat.LinInterp, kept, nil)
	return lower, upper, nil
}

// resample draws count paired resamples and evaluates fn on each. The scratch
// buffers are reused across replicates; fn must not retain its arguments.
func resample(x, y []float64, fn CoefficientFunc, count int, rng *rand.Rand) []float64 {
	n := len(x)
	xs := make([]float64, n)
	ys := make([]float64, n)
	out := make([]float64, count)
	for i := range out {
		for j := 0; j < n; j++ {
			k := rng.Intn(n)
			xs[j] = x[k]
			ys[j] = y[k]
		}
		out[i] = fn(xs, ys)
	}
	return out
}
