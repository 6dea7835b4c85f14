// Package corrci computes confidence intervals for correlation coefficients
// between two paired numeric sequences, either parametrically through the
// Fisher z normal approximation or non-parametrically through a paired
// percentile bootstrap.
//
// The one-call surface mirrors the usual workflow:
//
//	res, err := corrci.Compute(x, y, corr.Spearman)
//	// res.Coefficient, res.Lower, res.Upper, res.PValue
//
// Options select the interval strategy, significance level, bootstrap budget
// and seed, and allow injecting a custom correlation measure or variance
// model.
package corrci

import (
	"math"
	"math/rand"
	"time"

	"corrci/adapters/gonumstats"
	"corrci/domain/corr"
	apperrors "corrci/internal/errors"
	"corrci/ports"
)

// DefaultAlpha is the significance level used when none is set.
const DefaultAlpha = 0.05

// Compute estimates the correlation between x and y and a confidence
// interval around it, returning the coefficient, the interval bounds and the
// two-sided p-value.
//
// The sequences must be the same non-zero length. The default configuration
// is the parametric interval at alpha = 0.05 over the gonum-backed
// coefficient provider; see the With* options for everything else. An exact
// |r| = 1 coefficient short-circuits to the collapsed interval (r, r) since
// neither estimator is defined there.
func Compute(x, y []float64, method corr.Method, opts ...Option) (corr.Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(x, y, o.Alpha); err != nil {
		return corr.Result{}, err
	}
	if !method.Known() {
		return corr.Result{}, apperrors.Newf(apperrors.CodeUnsupportedMethod, "unknown method %q", method)
	}

	provider := o.Provider
	if provider == nil {
		if method == corr.Custom {
			return corr.Result{}, apperrors.UnsupportedMethod("custom method requires WithCoefficientFunc or WithProvider")
		}
		provider = gonumstats.New()
	}

	coefficient, pValue, err := provider.Correlate(x, y, method)
	if err != nil {
		return corr.Result{}, apperrors.Wrap(err, "coefficient provider failed")
	}

	result := corr.Result{Coefficient: coefficient, PValue: pValue}
	if o.SkipInterval {
		result.Lower, result.Upper = math.NaN(), math.NaN()
		return result, nil
	}
	if math.Abs(coefficient) == 1 {
		result.Lower, result.Upper = coefficient, coefficient
		return result, nil
	}

	interval := o.Interval
	if interval == IntervalAuto {
		if math.Abs(coefficient) < method.ParametricThreshold() {
			interval = IntervalParametric
		} else {
			interval = IntervalBootstrap
		}
	}

	switch interval {
	case IntervalParametric:
		result.Lower, result.Upper, err = parametric(coefficient, len(x), method, &o)
	case IntervalBootstrap:
		result.Lower, result.Upper, err = bootstrap(x, y, method, provider, &o)
	default:
		err = apperrors.Newf(apperrors.CodeUnsupportedMethod, "unknown interval method %q", o.Interval)
	}
	if err != nil {
		return corr.Result{}, err
	}
	return result, nil
}

func validate(x, y []float64, alpha float64) error {
	if len(x) == 0 || len(y) == 0 {
		return apperrors.Validation("input sequences must be non-empty")
	}
	if len(x) != len(y) {
		return apperrors.Newf(apperrors.CodeValidation, "sequence lengths differ: %d vs %d", len(x), len(y))
	}
	if alpha <= 0 || alpha >= 1 {
		return apperrors.Newf(apperrors.CodeValidation, "alpha must be in (0,1), got %g", alpha)
	}
	return nil
}

func parametric(coefficient float64, n int, method corr.Method, o *Options) (float64, float64, error) {
	if method == corr.Custom {
		if o.VarianceModel == nil {
			return 0, 0, apperrors.UnsupportedMethod("custom method requires WithVarianceModel for the parametric interval")
		}
		return corr.CustomParametricCI(coefficient, n, o.VarianceModel, o.Alpha)
	}
	return corr.ParametricCI(coefficient, n, method, o.Alpha)
}

func bootstrap(x, y []float64, method corr.Method, provider ports.CoefficientProvider, o *Options) (float64, float64, error) {
	rng := o.Rand
	if rng == nil {
		seed := o.Seed
		if !o.seeded {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	fn := func(xs, ys []float64) float64 {
		c, _, err := provider.Correlate(xs, ys, method)
		if err != nil {
			return math.NaN()
		}
		return c
	}
	cfg := corr.BootstrapConfig{Replicates: o.Replicates, Workers: o.Workers}
	return corr.BootstrapCI(x, y, fn, o.Alpha, cfg, rng)
}
