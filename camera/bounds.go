package camera

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend"
)

// Rect is an axis-aligned region in world units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Bounds clamps the camera point into World, optionally inset by half the
// visible view so the view edge never leaves the world. A view larger than
// the world pins the camera to the world center on that axis.
type Bounds struct {
	blend.Attachment

	// World is the region the camera may show.
	World Rect
	// View optionally supplies the current view size in world units.
	View func() (w, h float64)
}

func (b *Bounds) Update(dt float64) {}

func (b *Bounds) Apply(v cp.Vector) cp.Vector {
	minX, maxX := b.World.X, b.World.X+b.World.Width
	minY, maxY := b.World.Y, b.World.Y+b.World.Height

	if b.View != nil {
		w, h := b.View()
		minX += w / 2
		maxX -= w / 2
		minY += h / 2
		maxY -= h / 2
	}

	return cp.Vector{
		X: clampAxis(v.X, minX, maxX),
		Y: clampAxis(v.Y, minY, maxY),
	}
}

// clampAxis clamps into [min, max], collapsing to the midpoint when the
// range is inverted.
func clampAxis(v, min, max float64) float64 {
	if min > max {
		return (min + max) / 2
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
