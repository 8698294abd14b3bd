package blend

import (
	"log/slog"
	"sort"
)

// Controller is the single source of truth for one blended value. It owns
// the base value, one layer per distinct behavior priority (ascending), the
// offset list and the constraint list, and recomputes the blended value
// lazily when read after a mutation or tick.
//
// All mutation guards (nil units, double-adds, foreign removals) are
// recoverable usage errors: they log a warning and the call becomes a
// no-op. The controller never panics on them.
type Controller[V any] struct {
	name string
	ops  Ops[V]
	log  *slog.Logger

	base        V
	layers      []*layer[V]
	offsets     []Offset[V]
	constraints []Constraint[V]

	cached V
	dirty  bool

	// Snapshot buffers so units can detach themselves mid-tick without
	// breaking iteration.
	layerScratch      []*layer[V]
	behaviorScratch   []Behavior[V]
	offsetScratch     []Offset[V]
	constraintScratch []Constraint[V]
}

// NewController creates a controller around a base value. The name is used
// only in log output.
func NewController[V any](name string, ops Ops[V], base V) *Controller[V] {
	return &Controller[V]{
		name:   name,
		ops:    ops,
		log:    slog.Default(),
		base:   base,
		cached: base,
	}
}

// SetLogger replaces the logger used for guard-violation warnings.
func (c *Controller[V]) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	c.log = log
}

// Name returns the controller's debug name.
func (c *Controller[V]) Name() string { return c.name }

// SetBaseValue replaces the always-present lowest-priority contributor.
func (c *Controller[V]) SetBaseValue(v V) {
	c.base = v
	c.SetDirty()
}

// SetDirty forces the next Value read to re-evaluate.
func (c *Controller[V]) SetDirty() { c.dirty = true }

// AddBehavior attaches a behavior and starts its fade-in. Re-adding a
// behavior this controller already owns only restarts the fade-in, which
// resumes from the current progress when the behavior was mid-fade-out.
func (c *Controller[V]) AddBehavior(b Behavior[V]) {
	if b == nil {
		c.log.Warn("blend: add behavior: nil", "controller", c.name)
		return
	}
	switch b.ownerRef() {
	case c:
		b.StartFadeIn()
		return
	case nil:
	default:
		c.log.Warn("blend: add behavior: attached to another controller", "controller", c.name)
		return
	}

	b.bindOwner(c)
	c.layerFor(b.Priority()).add(b)
	b.StartFadeIn()
	c.SetDirty()
}

// RemoveBehavior starts a behavior's fade-out. The behavior stays attached
// and contributing until the fade completes; Update detaches it once dead.
// Calling RemoveBehavior on an already dead behavior detaches immediately.
func (c *Controller[V]) RemoveBehavior(b Behavior[V]) {
	if b == nil {
		c.log.Warn("blend: remove behavior: nil", "controller", c.name)
		return
	}
	if b.ownerRef() != c {
		c.log.Warn("blend: remove behavior: not attached to this controller", "controller", c.name)
		return
	}

	b.StartFadeOut()
	if !b.Dead() {
		return
	}
	c.detachBehavior(b)
}

// ForceRemoveBehavior detaches a behavior immediately, skipping fade-out.
func (c *Controller[V]) ForceRemoveBehavior(b Behavior[V]) {
	if b == nil {
		c.log.Warn("blend: force remove behavior: nil", "controller", c.name)
		return
	}
	if b.ownerRef() != c {
		c.log.Warn("blend: force remove behavior: not attached to this controller", "controller", c.name)
		return
	}
	c.detachBehavior(b)
}

func (c *Controller[V]) detachBehavior(b Behavior[V]) {
	b.bindOwner(nil)
	for i, l := range c.layers {
		if l.priority != b.Priority() {
			continue
		}
		l.remove(b)
		if l.empty() {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
		}
		break
	}
	c.SetDirty()
}

// layerFor finds the layer for a priority, creating and sort-inserting it
// on first use.
func (c *Controller[V]) layerFor(priority int) *layer[V] {
	i := sort.Search(len(c.layers), func(i int) bool {
		return c.layers[i].priority >= priority
	})
	if i < len(c.layers) && c.layers[i].priority == priority {
		return c.layers[i]
	}
	l := newLayer[V](priority)
	c.layers = append(c.layers, nil)
	copy(c.layers[i+1:], c.layers[i:])
	c.layers[i] = l
	return l
}

// AddOffset attaches an additive offset.
func (c *Controller[V]) AddOffset(o Offset[V]) {
	if o == nil {
		c.log.Warn("blend: add offset: nil", "controller", c.name)
		return
	}
	if owner := o.ownerRef(); owner != nil {
		if owner == c {
			c.log.Warn("blend: add offset: already attached", "controller", c.name)
		} else {
			c.log.Warn("blend: add offset: attached to another controller", "controller", c.name)
		}
		return
	}
	o.bindOwner(c)
	c.offsets = append(c.offsets, o)
	c.SetDirty()
}

// RemoveOffset detaches an offset.
func (c *Controller[V]) RemoveOffset(o Offset[V]) {
	if o == nil {
		c.log.Warn("blend: remove offset: nil", "controller", c.name)
		return
	}
	if o.ownerRef() != c {
		c.log.Warn("blend: remove offset: not attached to this controller", "controller", c.name)
		return
	}
	o.bindOwner(nil)
	for i, member := range c.offsets {
		if member == o {
			c.offsets = append(c.offsets[:i], c.offsets[i+1:]...)
			break
		}
	}
	c.SetDirty()
}

// AddConstraint appends a constraint; constraints apply in insertion order.
func (c *Controller[V]) AddConstraint(k Constraint[V]) {
	if k == nil {
		c.log.Warn("blend: add constraint: nil", "controller", c.name)
		return
	}
	if owner := k.ownerRef(); owner != nil {
		if owner == c {
			c.log.Warn("blend: add constraint: already attached", "controller", c.name)
		} else {
			c.log.Warn("blend: add constraint: attached to another controller", "controller", c.name)
		}
		return
	}
	k.bindOwner(c)
	c.constraints = append(c.constraints, k)
	c.SetDirty()
}

// RemoveConstraint detaches a constraint.
func (c *Controller[V]) RemoveConstraint(k Constraint[V]) {
	if k == nil {
		c.log.Warn("blend: remove constraint: nil", "controller", c.name)
		return
	}
	if k.ownerRef() != c {
		c.log.Warn("blend: remove constraint: not attached to this controller", "controller", c.name)
		return
	}
	k.bindOwner(nil)
	for i, member := range c.constraints {
		if member == k {
			c.constraints = append(c.constraints[:i], c.constraints[i+1:]...)
			break
		}
	}
	c.SetDirty()
}

// Update ticks every layer, offset and constraint by dt seconds. Offsets
// that report Finished afterward are detached. Each list is snapshotted
// before iterating so units removed mid-tick (a behavior dying, an offset
// expiring) never corrupt traversal. The controller is dirty after every
// Update: ticking moves unit outputs even without structural changes.
func (c *Controller[V]) Update(dt float64) {
	c.layerScratch = append(c.layerScratch[:0], c.layers...)
	for _, l := range c.layerScratch {
		l.update(c, dt)
	}

	c.offsetScratch = append(c.offsetScratch[:0], c.offsets...)
	for _, o := range c.offsetScratch {
		o.Update(dt)
		if o.Finished() {
			c.RemoveOffset(o)
		}
	}

	c.constraintScratch = append(c.constraintScratch[:0], c.constraints...)
	for _, k := range c.constraintScratch {
		k.Update(dt)
	}

	c.SetDirty()
}

// Value returns the blended value, re-evaluating only when a mutation or
// Update dirtied the cache.
func (c *Controller[V]) Value() V {
	if c.dirty {
		c.cached = c.evaluate()
		c.dirty = false
	}
	return c.cached
}

// evaluate runs the full pipeline: fold layers over the base value lowest
// to highest priority, add the offset sum, then thread the result through
// the constraints in insertion order.
func (c *Controller[V]) evaluate() V {
	v := c.base
	for _, l := range c.layers {
		if l.empty() {
			continue
		}
		v = c.ops.Lerp(v, l.evaluate(c.ops), l.blendFactor())
	}

	if len(c.offsets) > 0 {
		sum := c.offsets[0].Value()
		for _, o := range c.offsets[1:] {
			sum = c.ops.Add(sum, o.Value())
		}
		v = c.ops.Add(v, sum)
	}

	for _, k := range c.constraints {
		v = k.Apply(v)
	}
	return v
}
