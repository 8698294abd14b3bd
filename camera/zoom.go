package camera

import "github.com/milk9111/blend"

// ZoomRange clamps the zoom channel into [Min, Max].
type ZoomRange struct {
	blend.Attachment

	Min, Max float64
}

func (z *ZoomRange) Update(dt float64) {}

func (z *ZoomRange) Apply(v float64) float64 {
	if z.Min > 0 && v < z.Min {
		return z.Min
	}
	if z.Max > 0 && v > z.Max {
		return z.Max
	}
	return v
}

// ZoomPulse eases the zoom toward a target level and expires once close
// enough, for hit-impact punch-ins and similar transient zooms.
type ZoomPulse struct {
	blend.Attachment
	blend.Fade

	// Level is the zoom this behavior pulls toward.
	Level float64

	priority int
	weight   float64
}

// NewZoomPulse creates a zoom behavior pulling toward level.
func NewZoomPulse(priority int, weight, level float64, in, out float64) *ZoomPulse {
	return &ZoomPulse{
		Fade:     blend.Fade{InDuration: in, OutDuration: out},
		Level:    level,
		priority: priority,
		weight:   weight,
	}
}

func (z *ZoomPulse) Priority() int { return z.priority }

func (z *ZoomPulse) Weight() float64 { return z.weight }

func (z *ZoomPulse) Update(dt float64) { z.Advance(dt) }

func (z *ZoomPulse) Value() float64 { return z.Level }
