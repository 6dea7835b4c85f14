package corr

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	apperrors "corrci/internal/errors"
)

// ParametricCI builds a two-sided (1-alpha) confidence interval around r
// using the normal approximation in Fisher z space with the method's built-in
// variance model. The result is numeric for any |r| < 1, including values
// beyond the method's calibrated threshold; accuracy there is degraded, and
// callers who care should use the bootstrap path instead.
func ParametricCI(r float64, n int, method Method, alpha float64) (lower, upper float64, err error) {
	t, ok := traits[method]
	if !ok {
		return 0, 0, apperrors.Newf(apperrors.CodeUnsupportedMethod, "unknown method %q", method)
	}
	if t.variance == nil {
		return 0, 0, apperrors.UnsupportedMethod("custom method has no built-in variance model")
	}
	return parametricCI(r, n, t.variance, t.minSamples, alpha)
}

// CustomParametricCI is ParametricCI with a caller-supplied variance model,
// for correlation measures outside the built-in set.
func CustomParametricCI(r float64, n int, model VarianceModel, alpha float64) (lower, upper float64, err error) {
	if model == nil {
		return 0, 0, apperrors.UnsupportedMethod("custom variance model is required")
	}
	return parametricCI(r, n, model, 4, alpha)
}

func parametricCI(r float64, n int, model VarianceModel, minSamples int, alpha float64) (float64, float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return 0, 0, apperrors.Newf(apperrors.CodeValidation, "alpha must be in (0,1), got %g", alpha)
	}
	if n < minSamples {
		return 0, 0, apperrors.Newf(apperrors.CodeInsufficientSample, "need at least %d samples, got %d", minSamples, n)
	}
	z, err := FisherZ(r)
	if err != nil {
		return 0, 0, err
	}
	variance := model(r, n)
	if math.IsNaN(variance) || variance <= 0 {
		return 0, 0, apperrors.Newf(apperrors.CodeInsufficientSample, "variance model produced non-positive variance %g for n=%d", variance, n)
	}
	margin := distuv.UnitNormal.Quantile(1-alpha/2) * math.Sqrt(variance)
	return InverseFisher(z - margin), InverseFisher(z + margin), nil
}
