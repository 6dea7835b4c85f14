// Package ports defines the contracts between the estimation core and its
// collaborators.
package ports

import "corrci/domain/corr"

// CoefficientProvider computes a correlation coefficient and its two-sided
// p-value for the given method over paired samples. Implementations must be
// deterministic given identical inputs, and must surface undefined
// correlations (for example constant input) as NaN rather than a silent
// wrong value.
type CoefficientProvider interface {
	Correlate(x, y []float64, method corr.Method) (coefficient, pValue float64, err error)
}

// ProviderFunc adapts a bare function to the CoefficientProvider contract,
// typically for caller-supplied (custom) correlation measures.
type ProviderFunc func(x, y []float64, method corr.Method) (float64, float64, error)

func (f ProviderFunc) Correlate(x, y []float64, method corr.Method) (float64, float64, error) {
	return f(x, y, method)
}
