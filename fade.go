package blend

// FadeState tracks where a behavior is in its fade lifecycle.
type FadeState uint8

const (
	// FadeInactive is the initial state before the first fade-in.
	FadeInactive FadeState = iota
	// FadingIn progresses the blend factor toward 1.
	FadingIn
	// FadeActive holds the blend factor at 1.
	FadeActive
	// FadingOut regresses the blend factor toward 0.
	FadingOut
	// FadeDead is terminal: the behavior is ready for removal.
	FadeDead
)

func (s FadeState) String() string {
	switch s {
	case FadeInactive:
		return "inactive"
	case FadingIn:
		return "fading_in"
	case FadeActive:
		return "active"
	case FadingOut:
		return "fading_out"
	case FadeDead:
		return "dead"
	}
	return "unknown"
}

// Fade is the blend-factor state machine every behavior carries:
// Inactive → FadingIn → Active → FadingOut → Dead. Embed it and call
// Advance(dt) from the behavior's Update. Reversing direction mid-fade
// resumes from the current progress rather than snapping.
type Fade struct {
	// InDuration and OutDuration are fade times in seconds. A duration
	// of zero or less makes the corresponding transition instant.
	InDuration  float64
	OutDuration float64

	// Shape optionally remaps raw progress before it is read as the
	// blend factor. It must map 0 to 0 and 1 to 1; nil means linear.
	Shape func(t float64) float64

	state    FadeState
	progress float64
}

// StartFadeIn begins or resumes progressing toward full strength. It is a
// no-op once dead.
func (f *Fade) StartFadeIn() {
	if f.state == FadeDead || f.state == FadeActive {
		return
	}
	if f.InDuration <= 0 {
		f.progress = 1
		f.state = FadeActive
		return
	}
	f.state = FadingIn
}

// StartFadeOut begins regressing toward zero. Reaching zero marks the fade
// dead.
func (f *Fade) StartFadeOut() {
	if f.state == FadeDead {
		return
	}
	if f.OutDuration <= 0 || f.progress <= 0 {
		f.progress = 0
		f.state = FadeDead
		return
	}
	f.state = FadingOut
}

// Advance ticks the fade by dt seconds.
func (f *Fade) Advance(dt float64) {
	switch f.state {
	case FadingIn:
		f.progress += dt / f.InDuration
		if f.progress >= 1 {
			f.progress = 1
			f.state = FadeActive
		}
	case FadingOut:
		f.progress -= dt / f.OutDuration
		if f.progress <= 0 {
			f.progress = 0
			f.state = FadeDead
		}
	}
}

// BlendFactor returns the current fade strength in [0, 1], shaped if a
// Shape is set.
func (f *Fade) BlendFactor() float64 {
	if f.Shape != nil {
		return clamp01(f.Shape(f.progress))
	}
	return f.progress
}

// Dead reports whether the fade-out has completed.
func (f *Fade) Dead() bool { return f.state == FadeDead }

// State returns the current lifecycle state.
func (f *Fade) State() FadeState { return f.state }

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
