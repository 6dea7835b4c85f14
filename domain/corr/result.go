package corr

// Result is the outcome of one estimation call: the point estimate, the
// confidence interval around it, and the two-sided p-value reported by the
// coefficient provider. When interval computation is skipped the bounds are
// NaN. Barring the documented parametric breakdown ranges,
// Lower <= Coefficient <= Upper holds for all valid inputs.
type Result struct {
	Coefficient float64 `json:"coefficient"`
	Lower       float64 `json:"ci_lower"`
	Upper       float64 `json:"ci_upper"`
	PValue      float64 `json:"p_value"`
}
