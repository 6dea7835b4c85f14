// Package corr holds the estimation core: the correlation method variants
// with their variance models and applicability limits, the Fisher
// variance-stabilizing transform, and the parametric and bootstrap
// confidence-interval estimators. Everything here is pure computation;
// randomness enters only through an explicitly injected generator.
package corr

// Method identifies which correlation measure is being estimated.
type Method string

const (
	Pearson  Method = "pearson_r"
	Kendall  Method = "kendall_tau"
	Spearman Method = "spearman_rho"
	Custom   Method = "custom"
)

// methodTraits carries the per-method formula and validity data. Each built-in
// method is a variant in this table rather than a type hierarchy: the variance
// model, the smallest n that keeps its denominator positive, and the |r|
// threshold below which the normal approximation is considered accurate.
type methodTraits struct {
	variance      VarianceModel
	minSamples    int
	parametricMax float64
}

var traits = map[Method]methodTraits{
	Pearson:  {variance: PearsonVariance, minSamples: 4, parametricMax: 1.0},
	Kendall:  {variance: KendallVariance, minSamples: 5, parametricMax: 0.8},
	Spearman: {variance: SpearmanVariance, minSamples: 4, parametricMax: 0.95},
	Custom:   {minSamples: 4, parametricMax: 0},
}

// Known reports whether m is one of the supported method tags.
func (m Method) Known() bool {
	_, ok := traits[m]
	return ok
}

// MinSamples returns the smallest sample size for which the method's
// parametric variance denominator stays positive.
func (m Method) MinSamples() int {
	return traits[m].minSamples
}

// ParametricThreshold returns the |r| bound below which the normal
// approximation is well calibrated for this method. Above it the parametric
// path still returns a numeric interval, with documented loss of accuracy;
// automatic strategy selection switches to bootstrap instead. Custom methods
// have threshold 0 and therefore always bootstrap under automatic selection.
func (m Method) ParametricThreshold() float64 {
	return traits[m].parametricMax
}
