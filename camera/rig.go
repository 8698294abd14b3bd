// Package camera builds a 2D camera on top of the blend engine: a position
// channel blending follow and look-ahead behaviors with shake offsets and
// bounds constraints, plus a scalar zoom channel. Consumers tick Update
// once per frame and read At/ZoomLevel when rendering.
package camera

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend"
)

// Rig bundles the position and zoom controllers of one camera.
type Rig struct {
	Position *blend.Controller[cp.Vector]
	Zoom     *blend.Controller[float64]
}

// NewRig creates a rig resting at basePos with the given zoom.
func NewRig(name string, basePos cp.Vector, baseZoom float64) *Rig {
	if baseZoom <= 0 {
		baseZoom = 1
	}
	return &Rig{
		Position: blend.NewController(name+".position", blend.VectorOps{}, basePos),
		Zoom:     blend.NewController(name+".zoom", blend.Float64Ops{}, baseZoom),
	}
}

// Update ticks both channels by dt seconds.
func (r *Rig) Update(dt float64) {
	r.Position.Update(dt)
	r.Zoom.Update(dt)
}

// At returns the blended camera position.
func (r *Rig) At() cp.Vector { return r.Position.Value() }

// ZoomLevel returns the blended zoom.
func (r *Rig) ZoomLevel() float64 { return r.Zoom.Value() }
