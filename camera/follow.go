package camera

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend"
)

// Follow smooth-follows a target point. With a dead zone set, the camera
// only moves far enough to keep the target inside the zone; otherwise it
// eases toward the target directly. Smoothing is exponential so the feel is
// frame-rate independent.
type Follow struct {
	blend.Attachment
	blend.Fade

	// Target supplies the point to chase. A nil Target freezes the
	// behavior at its last position.
	Target func() cp.Vector
	// Smooth is the follow rate per second. Zero or less snaps.
	Smooth float64
	// DeadZone holds the half-extents of the no-move zone around the
	// camera. Zero extents disable the zone.
	DeadZone cp.Vector

	priority int
	weight   float64
	pos      cp.Vector
	started  bool
}

// NewFollow creates a follow behavior chasing target.
func NewFollow(priority int, weight float64, target func() cp.Vector) *Follow {
	return &Follow{
		Target:   target,
		Smooth:   8,
		priority: priority,
		weight:   weight,
	}
}

func (f *Follow) Priority() int { return f.priority }

func (f *Follow) Weight() float64 { return f.weight }

// Update advances the fade and eases the camera point toward the target.
func (f *Follow) Update(dt float64) {
	f.Advance(dt)
	if f.Target == nil {
		return
	}

	target := f.Target()
	if !f.started {
		f.pos = target
		f.started = true
		return
	}

	goal := target
	if f.DeadZone.X > 0 || f.DeadZone.Y > 0 {
		goal = f.pos.Add(deadZoneShift(target.Sub(f.pos), f.DeadZone))
	}

	if f.Smooth <= 0 {
		f.pos = goal
		return
	}
	alpha := 1 - math.Exp(-f.Smooth*dt)
	f.pos = f.pos.Add(goal.Sub(f.pos).Mult(alpha))
}

func (f *Follow) Value() cp.Vector { return f.pos }

// Snap recenters the behavior on the target immediately, for teleports and
// level transitions.
func (f *Follow) Snap() {
	if f.Target == nil {
		return
	}
	f.pos = f.Target()
	f.started = true
}

// deadZoneShift returns the minimal move that brings a delta back inside
// the half-extents.
func deadZoneShift(delta, halfExtents cp.Vector) cp.Vector {
	var shift cp.Vector
	if halfExtents.X > 0 {
		if delta.X > halfExtents.X {
			shift.X = delta.X - halfExtents.X
		} else if delta.X < -halfExtents.X {
			shift.X = delta.X + halfExtents.X
		}
	} else {
		shift.X = delta.X
	}
	if halfExtents.Y > 0 {
		if delta.Y > halfExtents.Y {
			shift.Y = delta.Y - halfExtents.Y
		} else if delta.Y < -halfExtents.Y {
			shift.Y = delta.Y + halfExtents.Y
		}
	} else {
		shift.Y = delta.Y
	}
	return shift
}
