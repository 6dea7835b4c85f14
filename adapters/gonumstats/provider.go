// Package gonumstats implements the coefficient provider on top of gonum:
// Pearson's r via stat.Correlation, Spearman's rho via tie-averaged ranks,
// and Kendall's tau-b, with p-values from the Student's t and normal
// approximations in distuv.
package gonumstats

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"corrci/domain/corr"
	apperrors "corrci/internal/errors"
)

// Provider computes the built-in correlation measures.
type Provider struct{}

// New creates a gonum-backed coefficient provider.
func New() *Provider {
	return &Provider{}
}

// Correlate returns the coefficient and two-sided p-value for method over the
// paired samples. Constant input makes the correlation undefined; it surfaces
// as NaN for both values, never as an error.
func (p *Provider) Correlate(x, y []float64, method corr.Method) (float64, float64, error) {
	if len(x) != len(y) {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "sequence lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "need at least 2 pairs, got %d", len(x))
	}
	if degenerate(x) || degenerate(y) {
		return math.NaN(), math.NaN(), nil
	}
	switch method {
	case corr.Pearson:
		r := stat.Correlation(x, y, nil)
		return r, tTestPValue(r, len(x)), nil
	case corr.Spearman:
		rho := stat.Correlation(ranks(x), ranks(y), nil)
		return rho, tTestPValue(rho, len(x)), nil
	case corr.Kendall:
		return kendall(x, y)
	default:
		return 0, 0, apperrors.Newf(apperrors.CodeUnsupportedMethod, "no built-in coefficient for method %q", method)
	}
}

// degenerate reports whether the sample has zero variance.
func degenerate(v []float64) bool {
	sd, err := stats.StandardDeviation(v)
	return err != nil || sd == 0
}

// tTestPValue is the two-sided p-value for Pearson's r and Spearman's rho
// under the t approximation t = r*sqrt((n-2)/(1-r²)) with n-2 degrees of
// freedom.
func tTestPValue(r float64, n int) float64 {
	if math.IsNaN(r) || n < 3 {
		return math.NaN()
	}
	if r*r >= 1 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.CDF(-math.Abs(t))
}

// kendall computes Kendall's tau-b with tie correction, and its p-value under
// the standard normal approximation z = 3τ√(n(n-1)) / √(2(2n+5)).
func kendall(x, y []float64) (float64, float64, error) {
	n := len(x)
	var concordant, discordant float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := (x[i] - x[j]) * (y[i] - y[j])
			switch {
			case s > 0:
				concordant++
			case s < 0:
				discordant++
			}
		}
	}
	pairs := float64(n) * float64(n-1) / 2
	denom := math.Sqrt((pairs - tiedPairs(x)) * (pairs - tiedPairs(y)))
	if denom == 0 {
		return math.NaN(), math.NaN(), nil
	}
	tau := (concordant - discordant) / denom
	tau = math.Max(-1, math.Min(1, tau))

	z := 3 * tau * math.Sqrt(float64(n)*float64(n-1)) / math.Sqrt(2*float64(2*n+5))
	pValue := 2 * distuv.UnitNormal.CDF(-math.Abs(z))
	return tau, pValue, nil
}
