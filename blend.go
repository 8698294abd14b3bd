// Package blend provides a priority-layered, frame-ticked value blending
// engine. A Controller owns a base value plus any number of behaviors,
// offsets and constraints, and lazily folds them into a single value:
// behaviors are grouped into priority layers and blended lowest to highest,
// offsets add on top, constraints post-process the result in insertion
// order. The engine is generic over any value type that supplies Add and
// Lerp through an Ops implementation.
//
// Controllers are single-threaded: one caller ticks Update(dt) and reads
// Value() from the same goroutine, typically a game loop driving a camera
// rig or similar channel of blended state.
package blend

// Weighted pairs a value with its blend weight for reduction.
type Weighted[V any] struct {
	Value  V
	Weight float64
}

// BlendWeighted folds entries two at a time: each pair (v1,w1),(v2,w2)
// collapses to Lerp(v1, v2, w2/(w1+w2)) carrying weight w1+w2, an odd
// element passes through to the next round, and rounds repeat until one
// entry remains. The result depends on entry order for unequal weights with
// three or more entries; callers that need determinism must pass entries in
// a stable order. The slice is used as scratch space and clobbered.
func BlendWeighted[V any](ops Ops[V], entries []Weighted[V]) V {
	var zero V
	switch len(entries) {
	case 0:
		return zero
	case 1:
		return entries[0].Value
	}

	for len(entries) > 1 {
		n := 0
		for i := 0; i+1 < len(entries); i += 2 {
			a, b := entries[i], entries[i+1]
			total := a.Weight + b.Weight
			t := 0.0
			if total > 0 {
				t = b.Weight / total
			}
			entries[n] = Weighted[V]{
				Value:  ops.Lerp(a.Value, b.Value, t),
				Weight: total,
			}
			n++
		}
		if len(entries)%2 == 1 {
			entries[n] = entries[len(entries)-1]
			n++
		}
		entries = entries[:n]
	}

	return entries[0].Value
}
