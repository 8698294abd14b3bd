package blend

import (
	"io"
	"log/slog"
	"math"
	"testing"
)

// staticBehavior contributes a fixed scalar.
type staticBehavior struct {
	Attachment
	Fade
	priority int
	weight   float64
	value    float64
}

func newStaticBehavior(priority int, weight, value float64, in, out float64) *staticBehavior {
	return &staticBehavior{
		Fade:     Fade{InDuration: in, OutDuration: out},
		priority: priority,
		weight:   weight,
		value:    value,
	}
}

func (b *staticBehavior) Priority() int     { return b.priority }
func (b *staticBehavior) Weight() float64   { return b.weight }
func (b *staticBehavior) Update(dt float64) { b.Advance(dt) }
func (b *staticBehavior) Value() float64    { return b.value }

// timedOffset adds a fixed scalar until its duration elapses.
type timedOffset struct {
	Attachment
	value    float64
	duration float64
	elapsed  float64
}

func (o *timedOffset) Update(dt float64) { o.elapsed += dt }
func (o *timedOffset) Value() float64    { return o.value }
func (o *timedOffset) Finished() bool    { return o.elapsed >= o.duration }

// clampConstraint clamps into [min, max], with NaN disabling either bound.
type clampConstraint struct {
	Attachment
	min, max float64
}

func (k *clampConstraint) Update(dt float64) {}

func (k *clampConstraint) Apply(v float64) float64 {
	if !math.IsNaN(k.min) && v < k.min {
		return k.min
	}
	if !math.IsNaN(k.max) && v > k.max {
		return k.max
	}
	return v
}

func clampMin(min float64) *clampConstraint { return &clampConstraint{min: min, max: math.NaN()} }
func clampMax(max float64) *clampConstraint { return &clampConstraint{min: math.NaN(), max: max} }

// countingConstraint passes values through and counts evaluations.
type countingConstraint struct {
	Attachment
	applies int
}

func (k *countingConstraint) Update(dt float64) {}

func (k *countingConstraint) Apply(v float64) float64 {
	k.applies++
	return v
}

func newTestController(base float64) *Controller[float64] {
	c := NewController[float64]("test", Float64Ops{}, base)
	c.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c
}

func TestValueEqualsBaseWhenEmpty(t *testing.T) {
	cases := []struct {
		name string
		base float64
	}{
		{"zero", 0},
		{"positive", 42.5},
		{"negative", -7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := newTestController(c.base)
			if got := ctrl.Value(); got != c.base {
				t.Fatalf("Value = %v, want base %v", got, c.base)
			}
			ctrl.Update(0.016)
			if got := ctrl.Value(); got != c.base {
				t.Fatalf("Value after Update = %v, want base %v", got, c.base)
			}
		})
	}
}

func TestSetBaseValue(t *testing.T) {
	ctrl := newTestController(1)
	if got := ctrl.Value(); got != 1 {
		t.Fatalf("Value = %v, want 1", got)
	}
	ctrl.SetBaseValue(9)
	if got := ctrl.Value(); got != 9 {
		t.Fatalf("Value after SetBaseValue = %v, want 9", got)
	}
}

func TestForceRemoveLeavesNoResidual(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(10, 1, 100, 0, 0)

	ctrl.AddBehavior(b)
	ctrl.ForceRemoveBehavior(b)

	if got := ctrl.Value(); got != 0 {
		t.Fatalf("Value after force remove = %v, want base 0", got)
	}
	if len(ctrl.layers) != 0 {
		t.Fatalf("layer count = %d, want 0", len(ctrl.layers))
	}
	if b.Attached() {
		t.Fatal("behavior should be detached after force remove")
	}
}

func TestRemoveBehaviorWaitsForFadeOut(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(10, 1, 10, 0, 1)

	ctrl.AddBehavior(b)
	if got := ctrl.Value(); got != 10 {
		t.Fatalf("Value with active behavior = %v, want 10", got)
	}

	ctrl.RemoveBehavior(b)
	if b.Dead() {
		t.Fatal("behavior should not die before fade-out completes")
	}
	if !b.Attached() {
		t.Fatal("behavior should stay attached during fade-out")
	}

	ctrl.Update(0.5)
	if got := ctrl.Value(); math.Abs(got-5) > 1e-9 {
		t.Fatalf("Value mid fade-out = %v, want 5", got)
	}

	ctrl.Update(0.6)
	if !b.Dead() {
		t.Fatal("behavior should be dead after full fade-out")
	}
	if b.Attached() {
		t.Fatal("behavior should be detached once dead")
	}
	if got := ctrl.Value(); got != 0 {
		t.Fatalf("Value after fade-out = %v, want base 0", got)
	}
}

func TestReAddMidFadeOutResumesFadeIn(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(10, 1, 10, 1, 1)

	ctrl.AddBehavior(b)
	ctrl.Update(1) // fully faded in
	ctrl.RemoveBehavior(b)
	ctrl.Update(0.6)

	before := b.BlendFactor()
	if before <= 0 || before >= 1 {
		t.Fatalf("factor mid fade-out = %v, want in (0, 1)", before)
	}

	ctrl.AddBehavior(b)
	if got := b.BlendFactor(); got != before {
		t.Fatalf("re-add snapped factor from %v to %v", before, got)
	}

	ctrl.Update(0.1)
	if got := b.BlendFactor(); got <= before {
		t.Fatalf("factor after re-add = %v, want > %v", got, before)
	}
}

func TestEqualWeightPairBlendsToMidpoint(t *testing.T) {
	cases := []struct {
		name   string
		values [2]float64
	}{
		{"ascending", [2]float64{10, 20}},
		{"descending", [2]float64{20, 10}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := newTestController(0)
			ctrl.AddBehavior(newStaticBehavior(5, 1, c.values[0], 0, 0))
			ctrl.AddBehavior(newStaticBehavior(5, 1, c.values[1], 0, 0))
			if got := ctrl.Value(); math.Abs(got-15) > 1e-9 {
				t.Fatalf("Value = %v, want midpoint 15", got)
			}
		})
	}
}

func TestHigherPriorityOverrides(t *testing.T) {
	ctrl := newTestController(0)
	low := newStaticBehavior(1, 1, 10, 0, 0)
	high := newStaticBehavior(2, 1, 100, 0, 0)

	// insertion order must not matter across priorities
	ctrl.AddBehavior(high)
	ctrl.AddBehavior(low)

	if got := ctrl.Value(); got != 100 {
		t.Fatalf("Value = %v, want 100 (full override by higher layer)", got)
	}
}

func TestPartialLayerBlendFactor(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(1, 1, 10, 1, 0)

	ctrl.AddBehavior(b)
	ctrl.Update(0.5)

	// layer factor 0.5 lerps base toward the layer's blended value
	if got := ctrl.Value(); math.Abs(got-5) > 1e-9 {
		t.Fatalf("Value mid fade-in = %v, want 5", got)
	}
}

func TestConstraintsApplyInInsertionOrder(t *testing.T) {
	cases := []struct {
		name        string
		constraints []Constraint[float64]
		base        float64
		want        float64
	}{
		{"min_then_max", []Constraint[float64]{clampMin(5), clampMax(10)}, 3, 5},
		{"max_then_min", []Constraint[float64]{clampMax(10), clampMin(5)}, 12, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := newTestController(c.base)
			for _, k := range c.constraints {
				ctrl.AddConstraint(k)
			}
			if got := ctrl.Value(); got != c.want {
				t.Fatalf("Value = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFinishedOffsetAutoRemoved(t *testing.T) {
	ctrl := newTestController(0)
	o := &timedOffset{value: 3, duration: 1}

	ctrl.AddOffset(o)
	ctrl.Update(0.5)
	if got := ctrl.Value(); got != 3 {
		t.Fatalf("Value with live offset = %v, want 3", got)
	}

	ctrl.Update(0.6)
	if got := ctrl.Value(); got != 0 {
		t.Fatalf("Value after offset expiry = %v, want 0", got)
	}
	if o.Attached() {
		t.Fatal("finished offset should be detached")
	}
}

func TestOffsetsSum(t *testing.T) {
	ctrl := newTestController(1)
	ctrl.AddOffset(&timedOffset{value: 2, duration: 100})
	ctrl.AddOffset(&timedOffset{value: 5, duration: 100})
	if got := ctrl.Value(); got != 8 {
		t.Fatalf("Value = %v, want 8", got)
	}
}

func TestDoubleAddAcrossControllersRejected(t *testing.T) {
	first := newTestController(0)
	second := newTestController(0)
	b := newStaticBehavior(1, 1, 10, 0, 0)

	first.AddBehavior(b)
	second.AddBehavior(b)

	if b.ownerRef() != first {
		t.Fatal("first controller should keep ownership")
	}
	if got := first.Value(); got != 10 {
		t.Fatalf("first Value = %v, want 10", got)
	}
	if got := second.Value(); got != 0 {
		t.Fatalf("second Value = %v, want base 0", got)
	}
}

func TestRemoveUnownedIsNoOp(t *testing.T) {
	ctrl := newTestController(0)
	other := newTestController(0)
	b := newStaticBehavior(1, 1, 10, 0, 0)
	other.AddBehavior(b)

	ctrl.RemoveBehavior(b)
	ctrl.ForceRemoveBehavior(b)

	if b.ownerRef() != other {
		t.Fatal("foreign removal must not steal ownership")
	}
	if got := other.Value(); got != 10 {
		t.Fatalf("other Value = %v, want 10", got)
	}
}

func TestNilGuardsDoNotPanic(t *testing.T) {
	ctrl := newTestController(0)
	ctrl.AddBehavior(nil)
	ctrl.RemoveBehavior(nil)
	ctrl.ForceRemoveBehavior(nil)
	ctrl.AddOffset(nil)
	ctrl.RemoveOffset(nil)
	ctrl.AddConstraint(nil)
	ctrl.RemoveConstraint(nil)
	if got := ctrl.Value(); got != 0 {
		t.Fatalf("Value = %v, want 0", got)
	}
}

func TestValueCachedUntilDirty(t *testing.T) {
	ctrl := newTestController(4)
	counter := &countingConstraint{}
	ctrl.AddConstraint(counter)

	ctrl.Value()
	ctrl.Value()
	if counter.applies != 1 {
		t.Fatalf("evaluations after repeated reads = %d, want 1", counter.applies)
	}

	ctrl.Update(0.016)
	ctrl.Value()
	if counter.applies != 2 {
		t.Fatalf("evaluations after Update = %d, want 2", counter.applies)
	}

	ctrl.SetBaseValue(5)
	ctrl.Value()
	ctrl.Value()
	if counter.applies != 3 {
		t.Fatalf("evaluations after SetBaseValue = %d, want 3", counter.applies)
	}
}

func TestReAddToSameControllerKeepsSingleMembership(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(1, 1, 10, 0, 0)

	ctrl.AddBehavior(b)
	ctrl.AddBehavior(b)

	if len(ctrl.layers) != 1 || len(ctrl.layers[0].behaviors) != 1 {
		t.Fatalf("behavior should appear exactly once, layers=%d", len(ctrl.layers))
	}
	if got := ctrl.Value(); got != 10 {
		t.Fatalf("Value = %v, want 10", got)
	}
}

func TestLayerRemovedWhenLastMemberDies(t *testing.T) {
	ctrl := newTestController(0)
	b := newStaticBehavior(3, 1, 10, 0, 0.5)

	ctrl.AddBehavior(b)
	ctrl.RemoveBehavior(b)
	if len(ctrl.layers) != 1 {
		t.Fatalf("layer should survive until fade-out completes, layers=%d", len(ctrl.layers))
	}

	ctrl.Update(1)
	if len(ctrl.layers) != 0 {
		t.Fatalf("layer should be removed once emptied, layers=%d", len(ctrl.layers))
	}
}

func TestZeroWeightBehaviorDoesNotContribute(t *testing.T) {
	ctrl := newTestController(0)
	ctrl.AddBehavior(newStaticBehavior(1, 0, 99, 0, 0))
	ctrl.AddBehavior(newStaticBehavior(1, 1, 10, 0, 0))
	if got := ctrl.Value(); got != 10 {
		t.Fatalf("Value = %v, want 10", got)
	}
}
