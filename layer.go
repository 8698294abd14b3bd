package blend

// layer groups the behaviors sharing one priority. Members stay in
// insertion order so the pairwise blend reduction is deterministic. The
// layer's blend factor is the maximum of its members' factors, cached until
// membership or ticking dirties it.
type layer[V any] struct {
	priority  int
	behaviors []Behavior[V]

	factor      float64
	factorDirty bool

	scratch []Weighted[V]
}

func newLayer[V any](priority int) *layer[V] {
	return &layer[V]{priority: priority, factorDirty: true}
}

func (l *layer[V]) add(b Behavior[V]) {
	l.behaviors = append(l.behaviors, b)
	l.factorDirty = true
}

func (l *layer[V]) remove(b Behavior[V]) {
	for i, member := range l.behaviors {
		if member == b {
			l.behaviors = append(l.behaviors[:i], l.behaviors[i+1:]...)
			break
		}
	}
	l.factorDirty = true
}

func (l *layer[V]) empty() bool { return len(l.behaviors) == 0 }

// update ticks every member. Dead members are routed through the
// controller's removal path so ownership and layer bookkeeping stay in one
// place. Members are snapshotted first to tolerate removal mid-iteration.
func (l *layer[V]) update(c *Controller[V], dt float64) {
	c.behaviorScratch = append(c.behaviorScratch[:0], l.behaviors...)
	for _, b := range c.behaviorScratch {
		b.Update(dt)
		if b.Dead() {
			c.RemoveBehavior(b)
		}
	}
	l.factorDirty = true
}

// blendFactor returns the cached maximum member blend factor.
func (l *layer[V]) blendFactor() float64 {
	if l.factorDirty {
		l.factor = 0
		for _, b := range l.behaviors {
			if f := b.BlendFactor(); f > l.factor {
				l.factor = f
			}
		}
		l.factorDirty = false
	}
	return l.factor
}

// evaluate blends the members that currently contribute. Members whose
// effective weight (weight * blend factor) is zero or less are skipped; no
// contributors yields the value type's zero value.
func (l *layer[V]) evaluate(ops Ops[V]) V {
	l.scratch = l.scratch[:0]
	for _, b := range l.behaviors {
		w := b.Weight() * b.BlendFactor()
		if w <= 0 {
			continue
		}
		l.scratch = append(l.scratch, Weighted[V]{Value: b.Value(), Weight: w})
	}
	return BlendWeighted(ops, l.scratch)
}
