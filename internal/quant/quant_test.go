package quant

import (
	"math"
	"testing"
)

func TestCurveBelowThreshold(t *testing.T) {
	if got := Curve(4, 0.01); got != 0 {
		t.Fatalf("Curve below 1/16 should be 0, got %v", got)
	}
}

func TestCurveMonotonic(t *testing.T) {
	a := Curve(4, 0.2)
	b := Curve(4, 0.8)
	if b < a {
		t.Fatalf("Curve should increase with x: Curve(4,0.2)=%v Curve(4,0.8)=%v", a, b)
	}
}

func TestQuantizeDeadzone(t *testing.T) {
	if got := Quantize(1, 10); got != 0 {
		t.Fatalf("value inside deadzone should quantize to 0, got %v", got)
	}
	if got := Quantize(0, 10); got != 0 {
		t.Fatalf("zero should quantize to 0, got %v", got)
	}
}

func TestQuantizeInvalidStep(t *testing.T) {
	if got := Quantize(100, 0.5); got != 0 {
		t.Fatalf("q<1 should force 0, got %v", got)
	}
	if got := Quantize(100, math.NaN()); got != 0 {
		t.Fatalf("NaN q should force 0, got %v", got)
	}
}

func TestLPStepIsUnity(t *testing.T) {
	if got := Step(SubbandLP, 2, 4, 8, 0.5, true); got != 1.0 {
		t.Fatalf("LP step should always be 1.0, got %v", got)
	}
}

func TestSearchHitsTargetWhenAchievable(t *testing.T) {
	compress := func(q float64) (int, bool) {
		// Larger q -> smaller output, monotonic relationship.
		size := int(100000 / q)
		return size, true
	}
	res := Search(1000, compress)
	if !res.HitTarget {
		t.Fatalf("expected Search to hit the target")
	}
	if res.Size > 1100 {
		t.Fatalf("Search result too far from target: %+v", res)
	}
}
