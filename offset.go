package blend

// Offset is an additive, self-expiring modifier applied after behavior
// blending. Once Finished reports true the controller detaches it on the
// next Update. Implementations embed Attachment.
type Offset[V any] interface {
	attachable

	// Update ticks the offset by dt seconds.
	Update(dt float64)
	// Value returns the additive contribution.
	Value() V
	// Finished reports whether the offset has expired.
	Finished() bool
}
