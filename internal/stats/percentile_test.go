package stats

import "testing"

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}

func TestPercentileMedianInterpolates(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := Percentile(values, 50); got != 2.5 {
		t.Fatalf("expected interpolated median 2.5, got %v", got)
	}
}

func TestPercentileBoundsClamped(t *testing.T) {
	values := []float64{5, 1, 9}
	if got := Percentile(values, -10); got != 1 {
		t.Fatalf("expected min for clamped low percentile, got %v", got)
	}
	if got := Percentile(values, 200); got != 9 {
		t.Fatalf("expected max for clamped high percentile, got %v", got)
	}
}
