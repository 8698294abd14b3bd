package blend

// Behavior is a prioritized, fading contributor to a controller's value.
// Behaviors sharing a priority are blended within one layer by weight;
// layers override lower-priority layers by their blend factor.
//
// Implementations embed Attachment for the ownership protocol and Fade for
// the lifecycle methods (StartFadeIn, StartFadeOut, BlendFactor, Dead), and
// must advance the fade from Update.
type Behavior[V any] interface {
	attachable

	// Priority selects the layer this behavior blends in. Higher
	// priorities override lower ones.
	Priority() int
	// Weight is the behavior's relative contribution within its layer.
	Weight() float64
	// BlendFactor is the current fade strength in [0, 1].
	BlendFactor() float64
	// Update ticks the behavior by dt seconds.
	Update(dt float64)
	// Value returns the behavior's current contribution.
	Value() V
	// StartFadeIn begins or resumes the fade toward full strength.
	StartFadeIn()
	// StartFadeOut begins the fade toward zero.
	StartFadeOut()
	// Dead reports whether the behavior has fully faded out and can be
	// detached.
	Dead() bool
}
