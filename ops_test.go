package blend

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestVectorOpsLerp(t *testing.T) {
	ops := VectorOps{}
	got := ops.Lerp(cp.Vector{X: 0, Y: 10}, cp.Vector{X: 10, Y: 0}, 0.5)
	if math.Abs(got.X-5) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Fatalf("Lerp = %v, want (5, 5)", got)
	}
}

func TestAngleOpsShortestArc(t *testing.T) {
	ops := AngleOps{}

	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"simple", 0, 1, 0.5, 0.5},
		{"across_pi", 3, -3, 0.5, math.Pi},
		{"across_zero", -0.5, 0.5, 0.5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ops.Lerp(c.a, c.b, c.t)
			diff := math.Abs(WrapAngle(got - c.want))
			if diff > 1e-9 {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
