package camera

import (
	"github.com/jakecoffman/cp"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/milk9111/blend"
)

// Shake is a time-limited positional offset driven by smooth noise. The
// amplitude falls off linearly over the duration so the shake settles
// instead of cutting. Add a fresh Shake per impact; the controller discards
// it once finished.
type Shake struct {
	blend.Attachment

	// Amplitude is the peak displacement in world units.
	Amplitude float64
	// Frequency scales how fast the shake wanders, in hertz-ish noise
	// space units.
	Frequency float64
	// Duration is the total shake time in seconds.
	Duration float64

	noise   opensimplex.Noise
	elapsed float64
	value   cp.Vector
}

// NewShake creates a shake offset. Distinct seeds decorrelate simultaneous
// shakes.
func NewShake(seed int64, amplitude, frequency, duration float64) *Shake {
	return &Shake{
		Amplitude: amplitude,
		Frequency: frequency,
		Duration:  duration,
		noise:     opensimplex.New(seed),
	}
}

func (s *Shake) Update(dt float64) {
	s.elapsed += dt
	if s.Finished() {
		s.value = cp.Vector{}
		return
	}

	falloff := 1 - s.elapsed/s.Duration
	t := s.elapsed * s.Frequency
	// two far-apart noise rows keep the axes independent
	s.value = cp.Vector{
		X: s.noise.Eval2(t, 0) * s.Amplitude * falloff,
		Y: s.noise.Eval2(t, 1000) * s.Amplitude * falloff,
	}
}

func (s *Shake) Value() cp.Vector { return s.value }

func (s *Shake) Finished() bool { return s.elapsed >= s.Duration }
