package corr

import (
	"math"
	"testing"

	apperrors "corrci/internal/errors"
)

func TestParametricCI_SpearmanDocumentedScenario(t *testing.T) {
	// Spearman's rho over x=0..1999 paired with 10 repetitions of 200..1.
	r := -0.0999987624920335
	lower, upper, err := ParametricCI(r, 2000, Spearman, 0.05)
	if err != nil {
		t.Fatalf("ParametricCI: %v", err)
	}
	if math.Abs(lower-(-0.14330929583811683)) > 1e-8 {
		t.Errorf("lower = %.10f, want -0.1433092958", lower)
	}
	if math.Abs(upper-(-0.056305939127336606)) > 1e-8 {
		t.Errorf("upper = %.10f, want -0.0563059391", upper)
	}
}

func TestParametricCI_ContainsEstimate(t *testing.T) {
	cases := []struct {
		method Method
		r      float64
		n      int
	}{
		{Pearson, 0.3, 30},
		{Pearson, -0.85, 12},
		{Kendall, 0.42, 50},
		{Spearman, -0.09, 2000},
		{Spearman, 0.93, 25},
	}
	for _, tc := range cases {
		lower, upper, err := ParametricCI(tc.r, tc.n, tc.method, 0.05)
		if err != nil {
			t.Fatalf("%s r=%g: %v", tc.method, tc.r, err)
		}
		if !(lower <= tc.r && tc.r <= upper) {
			t.Errorf("%s r=%g n=%d: interval (%g, %g) does not contain estimate", tc.method, tc.r, tc.n, lower, upper)
		}
		if lower <= -1 || upper >= 1 {
			t.Errorf("%s r=%g: bounds (%g, %g) escaped (-1, 1)", tc.method, tc.r, lower, upper)
		}
	}
}

func TestParametricCI_WidthMonotonicInAlpha(t *testing.T) {
	prevWidth := math.Inf(1)
	for _, alpha := range []float64{0.001, 0.01, 0.05, 0.10, 0.50} {
		lower, upper, err := ParametricCI(0.4, 40, Pearson, alpha)
		if err != nil {
			t.Fatalf("alpha=%g: %v", alpha, err)
		}
		width := upper - lower
		if width > prevWidth {
			t.Errorf("alpha=%g widened the interval: %g > %g", alpha, width, prevWidth)
		}
		prevWidth = width
	}
}

func TestParametricCI_SampleSizeBounds(t *testing.T) {
	// n-3 = 1 at n=4 must work for Pearson and Spearman.
	for _, m := range []Method{Pearson, Spearman} {
		if _, _, err := ParametricCI(0.5, 4, m, 0.05); err != nil {
			t.Errorf("%s n=4: unexpected error %v", m, err)
		}
		_, _, err := ParametricCI(0.5, 3, m, 0.05)
		if !apperrors.HasCode(err, apperrors.CodeInsufficientSample) {
			t.Errorf("%s n=3: expected INSUFFICIENT_SAMPLE_SIZE, got %v", m, err)
		}
	}
	// Kendall's denominator is n-4.
	if _, _, err := ParametricCI(0.5, 5, Kendall, 0.05); err != nil {
		t.Errorf("kendall n=5: unexpected error %v", err)
	}
	_, _, err := ParametricCI(0.5, 4, Kendall, 0.05)
	if !apperrors.HasCode(err, apperrors.CodeInsufficientSample) {
		t.Errorf("kendall n=4: expected INSUFFICIENT_SAMPLE_SIZE, got %v", err)
	}
}

func TestParametricCI_DomainError(t *testing.T) {
	for _, r := range []float64{1, -1} {
		_, _, err := ParametricCI(r, 100, Pearson, 0.05)
		if !apperrors.HasCode(err, apperrors.CodeDomain) {
			t.Errorf("r=%g: expected DOMAIN_ERROR, got %v", r, err)
		}
	}
}

func TestParametricCI_OutOfCalibrationRangeStillNumeric(t *testing.T) {
	// |tau| = 0.9 is beyond the 0.8 calibration threshold but is accepted
	// with reduced accuracy, not rejected.
	lower, upper, err := ParametricCI(0.9, 50, Kendall, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !(lower <= 0.9 && 0.9 <= upper) {
		t.Errorf("interval (%g, %g) does not contain 0.9", lower, upper)
	}
}

func TestParametricCI_InvalidAlpha(t *testing.T) {
	for _, alpha := range []float64{0, 1, -0.1, 1.5} {
		_, _, err := ParametricCI(0.5, 30, Pearson, alpha)
		if !apperrors.HasCode(err, apperrors.CodeValidation) {
			t.Errorf("alpha=%g: expected VALIDATION_ERROR, got %v", alpha, err)
		}
	}
}

func TestParametricCI_RejectsCustomAndUnknown(t *testing.T) {
	_, _, err := ParametricCI(0.5, 30, Custom, 0.05)
	if !apperrors.HasCode(err, apperrors.CodeUnsupportedMethod) {
		t.Errorf("custom: expected UNSUPPORTED_METHOD, got %v", err)
	}
	_, _, err = ParametricCI(0.5, 30, Method("nope"), 0.05)
	if !apperrors.HasCode(err, apperrors.CodeUnsupportedMethod) {
		t.Errorf("unknown: expected UNSUPPORTED_METHOD, got %v", err)
	}
}

func TestCustomParametricCI(t *testing.T) {
	// A custom model equal to the Pearson one must reproduce ParametricCI.
	model := func(r float64, n int) float64 { return 1 / float64(n-3) }
	gotLower, gotUpper, err := CustomParametricCI(0.4, 40, model, 0.05)
	if err != nil {
		t.Fatalf("CustomParametricCI: %v", err)
	}
	wantLower, wantUpper, err := ParametricCI(0.4, 40, Pearson, 0.05)
	if err != nil {
		t.Fatalf("ParametricCI: %v", err)
	}
	if gotLower != wantLower || gotUpper != wantUpper {
		t.Errorf("custom model diverged: (%g, %g) vs (%g, %g)", gotLower, gotUpper, wantLower, wantUpper)
	}

	if _, _, err := CustomParametricCI(0.4, 40, nil, 0.05); !apperrors.HasCode(err, apperrors.CodeUnsupportedMethod) {
		t.Errorf("nil model: expected UNSUPPORTED_METHOD, got %v", err)
	}

	bad := func(r float64, n int) float64 { return -1 }
	if _, _, err := CustomParametricCI(0.4, 40, bad, 0.05); !apperrors.HasCode(err, apperrors.CodeInsufficientSample) {
		t.Errorf("non-positive variance: expected INSUFFICIENT_SAMPLE_SIZE, got %v", err)
	}
}
