package camera

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend"
)

// LookAhead anticipates travel: it offsets the camera point from the target
// toward the target's recent movement direction so the player sees more of
// where they are going. The lead offset itself is smoothed to avoid
// flicking on quick reversals.
type LookAhead struct {
	blend.Attachment
	blend.Fade

	// Target supplies the point being tracked.
	Target func() cp.Vector
	// Distance is the maximum lead in world units.
	Distance float64
	// Smooth is the lead easing rate per second.
	Smooth float64
	// MinSpeed is the speed below which no lead is applied, in world
	// units per second.
	MinSpeed float64

	priority int
	weight   float64

	prev    cp.Vector
	started bool
	lead    cp.Vector
	pos     cp.Vector
}

// NewLookAhead creates a look-ahead behavior tracking target.
func NewLookAhead(priority int, weight float64, target func() cp.Vector) *LookAhead {
	return &LookAhead{
		Target:   target,
		Distance: 48,
		Smooth:   4,
		MinSpeed: 1,
		priority: priority,
		weight:   weight,
	}
}

func (l *LookAhead) Priority() int { return l.priority }

func (l *LookAhead) Weight() float64 { return l.weight }

func (l *LookAhead) Update(dt float64) {
	l.Advance(dt)
	if l.Target == nil || dt <= 0 {
		return
	}

	target := l.Target()
	if !l.started {
		l.prev = target
		l.pos = target
		l.started = true
		return
	}

	vel := target.Sub(l.prev).Mult(1 / dt)
	l.prev = target

	var want cp.Vector
	if speed := vel.Length(); speed > l.MinSpeed {
		want = vel.Mult(l.Distance / speed)
	}

	alpha := 1.0
	if l.Smooth > 0 {
		alpha = 1 - math.Exp(-l.Smooth*dt)
	}
	l.lead = l.lead.Add(want.Sub(l.lead).Mult(alpha))
	l.pos = target.Add(l.lead)
}

func (l *LookAhead) Value() cp.Vector { return l.pos }
