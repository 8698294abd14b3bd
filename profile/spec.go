// Package profile loads camera rig tuning from YAML and assembles rigs
// from it. Profiles resolve from disk first so a checked-out tree can be
// tuned live (see Watcher), falling back to the embedded defaults.
package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RigSpec is the root document of a camera profile.
type RigSpec struct {
	Name     string               `yaml:"name"`
	Position PositionSpec         `yaml:"position"`
	Zoom     ZoomSpec             `yaml:"zoom"`
	Shakes   map[string]ShakeSpec `yaml:"shakes"`
}

// PositionSpec tunes the position channel.
type PositionSpec struct {
	X         float64        `yaml:"x"`
	Y         float64        `yaml:"y"`
	Follow    *FollowSpec    `yaml:"follow"`
	LookAhead *LookAheadSpec `yaml:"look_ahead"`
	Bounds    *BoundsSpec    `yaml:"bounds"`
	// Script names a tengo constraint file applied after bounds.
	Script string `yaml:"script"`
}

// ZoomSpec tunes the zoom channel.
type ZoomSpec struct {
	Level float64 `yaml:"level"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// FadeSpec tunes a behavior's fade durations in seconds.
type FadeSpec struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// FollowSpec tunes the smooth-follow behavior.
type FollowSpec struct {
	Priority  int      `yaml:"priority"`
	Weight    float64  `yaml:"weight"`
	Smooth    float64  `yaml:"smooth"`
	DeadZoneX float64  `yaml:"dead_zone_x"`
	DeadZoneY float64  `yaml:"dead_zone_y"`
	Fade      FadeSpec `yaml:"fade"`
}

// LookAheadSpec tunes the look-ahead behavior.
type LookAheadSpec struct {
	Priority int      `yaml:"priority"`
	Weight   float64  `yaml:"weight"`
	Distance float64  `yaml:"distance"`
	Smooth   float64  `yaml:"smooth"`
	MinSpeed float64  `yaml:"min_speed"`
	Fade     FadeSpec `yaml:"fade"`
}

// BoundsSpec tunes the world-bounds constraint.
type BoundsSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShakeSpec is a named shake preset.
type ShakeSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
}

// LoadSpec reads and unmarshals a profile document.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("profile: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("profile: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadRigSpec reads a rig profile.
func LoadRigSpec(filename string) (RigSpec, error) {
	return LoadSpec[RigSpec](filename)
}
