package corr

// VarianceModel maps a coefficient estimate and sample size to the variance
// of the Fisher z statistic. The built-in models below follow Bonett & Wright
// (2000); callers estimating a custom correlation measure may inject their
// own model instead.
type VarianceModel func(r float64, n int) float64

// PearsonVariance is the classic 1/(n-3) variance of Fisher's z.
func PearsonVariance(r float64, n int) float64 {
	return 1 / float64(n-3)
}

// KendallVariance is the 0.437/(n-4) variance for Kendall's tau.
func KendallVariance(r float64, n int) float64 {
	return 0.437 / float64(n-4)
}

// SpearmanVariance is the (1+r²/2)/(n-3) variance for Spearman's rho.
func SpearmanVariance(r float64, n int) float64 {
	return (1 + r*r/2) / float64(n-3)
}
