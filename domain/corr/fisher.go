package corr

import (
	"math"

	apperrors "corrci/internal/errors"
)

// FisherZ applies the variance-stabilizing transform
// z = ln((1+r)/(1-r))/2 (the inverse hyperbolic tangent). The transform is
// undefined at r = +/-1, where it fails with a DOMAIN_ERROR; values outside
// [-1, 1] are not valid correlation coefficients and fail the same way.
func FisherZ(r float64) (float64, error) {
	if math.IsNaN(r) || r <= -1 || r >= 1 {
		return 0, apperrors.Newf(apperrors.CodeDomain, "fisher transform undefined at r=%g", r)
	}
	return 0.5 * math.Log((1+r)/(1-r)), nil
}

// InverseFisher maps a transformed value back to coefficient space. It is the
// hyperbolic tangent, the exact inverse of FisherZ, and is monotonic, so
// interval endpoints keep their order through it.
func InverseFisher(z float64) float64 {
	return math.Tanh(z)
}
