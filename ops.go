package blend

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Ops supplies the two numeric operations the engine needs from a value
// type: an additive combine and a linear blend. The zero value of V must be
// a sensible "no contribution" value (it is what an all-zero-weight layer
// evaluates to).
type Ops[V any] interface {
	Add(a, b V) V
	Lerp(a, b V, t float64) V
}

// Float64Ops blends plain scalars.
type Float64Ops struct{}

func (Float64Ops) Add(a, b float64) float64 { return a + b }

func (Float64Ops) Lerp(a, b float64, t float64) float64 { return a + t*(b-a) }

// VectorOps blends 2D vectors.
type VectorOps struct{}

func (VectorOps) Add(a, b cp.Vector) cp.Vector { return a.Add(b) }

func (VectorOps) Lerp(a, b cp.Vector, t float64) cp.Vector {
	return a.Mult(1 - t).Add(b.Mult(t))
}

// AngleOps blends angles in radians along the shortest arc, wrapping
// results into (-π, π].
type AngleOps struct{}

func (AngleOps) Add(a, b float64) float64 { return WrapAngle(a + b) }

func (AngleOps) Lerp(a, b float64, t float64) float64 {
	return WrapAngle(a + t*WrapAngle(b-a))
}

// WrapAngle normalizes an angle in radians into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
