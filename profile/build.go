package profile

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend/camera"
	"github.com/milk9111/blend/script"
)

// Build assembles a camera rig from a spec. target supplies the point the
// follow and look-ahead behaviors chase; it may be nil when the spec
// configures neither.
func Build(spec RigSpec, target func() cp.Vector) (*camera.Rig, error) {
	name := spec.Name
	if name == "" {
		name = "camera"
	}

	rig := camera.NewRig(name, cp.Vector{X: spec.Position.X, Y: spec.Position.Y}, spec.Zoom.Level)

	if fs := spec.Position.Follow; fs != nil {
		if target == nil {
			return nil, fmt.Errorf("profile: build %s: follow configured without a target", name)
		}
		f := camera.NewFollow(fs.Priority, weightOrDefault(fs.Weight), target)
		if fs.Smooth > 0 {
			f.Smooth = fs.Smooth
		}
		f.DeadZone = cp.Vector{X: fs.DeadZoneX, Y: fs.DeadZoneY}
		f.InDuration = fs.Fade.In
		f.OutDuration = fs.Fade.Out
		rig.Position.AddBehavior(f)
	}

	if ls := spec.Position.LookAhead; ls != nil {
		if target == nil {
			return nil, fmt.Errorf("profile: build %s: look_ahead configured without a target", name)
		}
		l := camera.NewLookAhead(ls.Priority, weightOrDefault(ls.Weight), target)
		if ls.Distance > 0 {
			l.Distance = ls.Distance
		}
		if ls.Smooth > 0 {
			l.Smooth = ls.Smooth
		}
		if ls.MinSpeed > 0 {
			l.MinSpeed = ls.MinSpeed
		}
		l.InDuration = ls.Fade.In
		l.OutDuration = ls.Fade.Out
		rig.Position.AddBehavior(l)
	}

	if bs := spec.Position.Bounds; bs != nil {
		rig.Position.AddConstraint(&camera.Bounds{
			World: camera.Rect{X: bs.X, Y: bs.Y, Width: bs.Width, Height: bs.Height},
		})
	}

	if path := spec.Position.Script; path != "" {
		src, err := LoadScript(path)
		if err != nil {
			return nil, fmt.Errorf("profile: build %s: load script %s: %w", name, path, err)
		}
		k, err := script.NewConstraint(src)
		if err != nil {
			return nil, fmt.Errorf("profile: build %s: %w", name, err)
		}
		rig.Position.AddConstraint(k)
	}

	if spec.Zoom.Min > 0 || spec.Zoom.Max > 0 {
		rig.Zoom.AddConstraint(&camera.ZoomRange{Min: spec.Zoom.Min, Max: spec.Zoom.Max})
	}

	return rig, nil
}

// BuildShake instantiates a named shake preset from the spec.
func BuildShake(spec RigSpec, preset string, seed int64) (*camera.Shake, error) {
	s, ok := spec.Shakes[preset]
	if !ok {
		return nil, fmt.Errorf("profile: shake preset %q not found", preset)
	}
	return camera.NewShake(seed, s.Amplitude, s.Frequency, s.Duration), nil
}

func weightOrDefault(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
