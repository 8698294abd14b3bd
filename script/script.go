// Package script exposes blend constraints whose transform is written in
// tengo, so camera rules (soft walls, axis locks, snapping grids) can be
// tuned without recompiling. A script runs once per evaluation: it reads
// the incoming value from globals, may keep per-instance state in __state,
// and writes the outgoing value back through output globals.
//
// Vector scripts see __x, __y and __dt and assign __ox / __oy. Scalar
// scripts see __v and __dt and assign __ov. Outputs a script leaves unset
// pass the corresponding input through unchanged. Runtime errors are logged
// and leave the value untouched; only compilation fails construction.
package script

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend"
)

// Constraint applies a tengo script to a vector channel.
type Constraint struct {
	blend.Attachment

	compiled *tengo.Compiled
	state    *tengo.Map
	dt       float64
	log      *slog.Logger
}

// NewConstraint compiles src into a vector constraint.
func NewConstraint(src []byte) (*Constraint, error) {
	s := tengo.NewScript(src)
	_ = s.Add("__x", 0.0)
	_ = s.Add("__y", 0.0)
	_ = s.Add("__dt", 0.0)
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile constraint: %w", err)
	}

	return &Constraint{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		log:      slog.Default(),
	}, nil
}

// SetLogger replaces the logger used for runtime script errors.
func (c *Constraint) SetLogger(log *slog.Logger) {
	if log != nil {
		c.log = log
	}
}

func (c *Constraint) Update(dt float64) { c.dt = dt }

func (c *Constraint) Apply(v cp.Vector) cp.Vector {
	if err := c.run(map[string]any{"__x": v.X, "__y": v.Y}); err != nil {
		c.log.Warn("script: constraint run", "error", err)
		return v
	}

	out := v
	if c.compiled.IsDefined("__ox") {
		out.X = c.compiled.Get("__ox").Float()
	}
	if c.compiled.IsDefined("__oy") {
		out.Y = c.compiled.Get("__oy").Float()
	}
	return out
}

// FloatConstraint applies a tengo script to a scalar channel.
type FloatConstraint struct {
	blend.Attachment

	compiled *tengo.Compiled
	state    *tengo.Map
	dt       float64
	log      *slog.Logger
}

// NewFloatConstraint compiles src into a scalar constraint.
func NewFloatConstraint(src []byte) (*FloatConstraint, error) {
	s := tengo.NewScript(src)
	_ = s.Add("__v", 0.0)
	_ = s.Add("__dt", 0.0)
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile float constraint: %w", err)
	}

	return &FloatConstraint{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		log:      slog.Default(),
	}, nil
}

// SetLogger replaces the logger used for runtime script errors.
func (c *FloatConstraint) SetLogger(log *slog.Logger) {
	if log != nil {
		c.log = log
	}
}

func (c *FloatConstraint) Update(dt float64) { c.dt = dt }

func (c *FloatConstraint) Apply(v float64) float64 {
	if err := runScript(c.compiled, c.state, c.dt, map[string]any{"__v": v}); err != nil {
		c.log.Warn("script: float constraint run", "error", err)
		return v
	}
	if c.compiled.IsDefined("__ov") {
		return c.compiled.Get("__ov").Float()
	}
	return v
}

func (c *Constraint) run(inputs map[string]any) error {
	return runScript(c.compiled, c.state, c.dt, inputs)
}

func runScript(compiled *tengo.Compiled, state *tengo.Map, dt float64, inputs map[string]any) error {
	for name, value := range inputs {
		if err := compiled.Set(name, value); err != nil {
			return err
		}
	}
	if err := compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := compiled.Set("__state", state); err != nil {
		return err
	}
	return compiled.Run()
}
