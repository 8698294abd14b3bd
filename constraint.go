package blend

// Constraint post-processes the blended value, once per evaluation, in
// insertion order. Constraints may carry state advanced by Update (for
// example a speed limit tracking the previous result). Implementations
// embed Attachment.
type Constraint[V any] interface {
	attachable

	// Update ticks the constraint by dt seconds.
	Update(dt float64)
	// Apply transforms the value. It must not call back into the
	// owning controller.
	Apply(v V) V
}
