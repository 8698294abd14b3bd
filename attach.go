package blend

// attachable is the ownership protocol shared by behaviors, offsets and
// constraints. A unit belongs to at most one controller at a time; the
// controller sets and clears the back-reference and uses it to reject
// double-adds and foreign removals. Embed Attachment to satisfy it.
type attachable interface {
	bindOwner(owner any)
	ownerRef() any
}

// Attachment carries the owning-controller back-reference for a unit.
// It is compared by identity only and never dereferenced.
type Attachment struct {
	owner any
}

func (a *Attachment) bindOwner(owner any) { a.owner = owner }

func (a *Attachment) ownerRef() any { return a.owner }

// Attached reports whether the unit currently belongs to a controller.
func (a *Attachment) Attached() bool { return a.owner != nil }
