package corrci

import (
	"math/rand"

	"corrci/domain/corr"
	"corrci/ports"
)

// IntervalMethod selects how the confidence interval is constructed.
type IntervalMethod string

const (
	// IntervalParametric uses the normal approximation in Fisher z space.
	IntervalParametric IntervalMethod = "parametric"
	// IntervalBootstrap resamples pairs with replacement and takes
	// empirical quantiles.
	IntervalBootstrap IntervalMethod = "bootstrap"
	// IntervalAuto uses the parametric path while |r| is below the method's
	// calibrated threshold and falls back to bootstrap beyond it.
	IntervalAuto IntervalMethod = "auto"
)

// Options holds the configuration of one estimation call.
type Options struct {
	Alpha         float64
	Interval      IntervalMethod
	Replicates    int
	Workers       int
	Seed          int64
	Rand          *rand.Rand
	Provider      ports.CoefficientProvider
	VarianceModel corr.VarianceModel
	SkipInterval  bool

	seeded bool
}

// Option applies one configuration setting.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Alpha:      DefaultAlpha,
		Interval:   IntervalParametric,
		Replicates: corr.DefaultReplicates,
		Workers:    1,
	}
}

// WithAlpha sets the significance level alpha (two-sided), exclusive in (0,1).
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithConfidenceLevel sets alpha from a confidence level, e.g. 0.95 sets
// alpha = 0.05. The later of WithAlpha and WithConfidenceLevel wins.
func WithConfidenceLevel(level float64) Option {
	return func(o *Options) {
		o.Alpha = 1 - level
	}
}

// WithIntervalMethod selects the interval construction strategy.
func WithIntervalMethod(m IntervalMethod) Option {
	return func(o *Options) {
		o.Interval = m
	}
}

// WithBootstrap selects the bootstrap path with the given number of
// replicates; 0 keeps the default of corr.DefaultReplicates.
func WithBootstrap(replicates int) Option {
	return func(o *Options) {
		o.Interval = IntervalBootstrap
		if replicates != 0 {
			o.Replicates = replicates
		}
	}
}

// WithReplicates sets the number of bootstrap resamples.
func WithReplicates(replicates int) Option {
	return func(o *Options) {
		o.Replicates = replicates
	}
}

// WithWorkers generates bootstrap replicates on the given number of parallel
// workers. Results stay reproducible for a fixed (seed, workers) pair.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithSeed seeds the bootstrap generator for reproducible intervals.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithRand supplies the bootstrap generator directly. Takes precedence over
// WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// WithProvider replaces the default gonum-backed coefficient provider. A
// provider is required when the method is corr.Custom.
func WithProvider(p ports.CoefficientProvider) Option {
	return func(o *Options) {
		o.Provider = p
	}
}

// WithCoefficientFunc supplies a custom correlation measure returning the
// coefficient and its two-sided p-value. Shorthand for WithProvider over a
// method-agnostic function.
func WithCoefficientFunc(fn func(x, y []float64) (coefficient, pValue float64)) Option {
	return func(o *Options) {
		o.Provider = ports.ProviderFunc(func(x, y []float64, _ corr.Method) (float64, float64, error) {
			c, p := fn(x, y)
			return c, p, nil
		})
	}
}

// WithVarianceModel injects the Fisher z variance model used by the
// parametric path for custom methods.
func WithVarianceModel(model corr.VarianceModel) Option {
	return func(o *Options) {
		o.VarianceModel = model
	}
}

// WithoutInterval skips interval construction entirely: the result carries
// the coefficient and p-value with NaN bounds.
func WithoutInterval() Option {
	return func(o *Options) {
		o.SkipInterval = true
	}
}
