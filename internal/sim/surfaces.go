package sim

import (
	"fmt"
	"strings"
)

// Surface is the coefficient bundle describing how a patch of ground takes a
// golf ball. The named presets cover a range, but Surface is plain data and
// custom surfaces are accepted anywhere a preset is.
type Surface struct {
	Name string `json:"name"`

	// CORScale multiplies the velocity-dependent restitution curve. 1.0 is a
	// firm fairway; soft surfaces sit below it. Values slightly above 1 are
	// allowed for unusually hard ground (range mats, baked-out links turf).
	CORScale float64 `json:"cor_scale"`

	// RollingResistance is the rolling deceleration coefficient (fraction of g).
	RollingResistance float64 `json:"rolling_resistance"`

	// Friction scrubs tangential velocity at impact. Separate from rolling
	// resistance: a surface can grab hard on landing yet roll fast (a green).
	Friction float64 `json:"friction"`

	// SpinAbsorption is the fraction of spin the surface soaks up per contact.
	SpinAbsorption float64 `json:"spin_absorption"`
}

// Canonical presets, calibrated together with the bounce constants.
var (
	Fairway = Surface{
		Name:              "fairway",
		CORScale:          1.0,
		RollingResistance: 0.12,
		Friction:          0.28,
		SpinAbsorption:    0.35,
	}
	Rough = Surface{
		Name:              "rough",
		CORScale:          0.60,
		RollingResistance: 0.30,
		Friction:          0.45,
		SpinAbsorption:    0.60,
	}
	Green = Surface{
		Name:              "green",
		CORScale:          0.78,
		RollingResistance: 0.055,
		Friction:          0.35,
		SpinAbsorption:    0.45,
	}
)

// SurfaceByName resolves a preset by its name, case-insensitively.
func SurfaceByName(name string) (Surface, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fairway":
		return Fairway, nil
	case "rough":
		return Rough, nil
	case "green":
		return Green, nil
	}
	return Surface{}, fmt.Errorf("unknown surface %q", name)
}

// Surfaces lists the canonical presets.
func Surfaces() []Surface {
	return []Surface{Fairway, Rough, Green}
}

// Validate rejects coefficient bundles the bounce and roll models cannot run
// on. All coefficients live in [0,1] except CORScale, which may modestly
// exceed 1 for very firm ground.
func (s Surface) Validate() error {
	if s.CORScale <= 0 || s.CORScale > 1.5 {
		return fmt.Errorf("surface %q: cor_scale %.3f out of range (0, 1.5]", s.Name, s.CORScale)
	}
	if s.RollingResistance <= 0 || s.RollingResistance > 1 {
		return fmt.Errorf("surface %q: rolling_resistance %.3f out of range (0, 1]", s.Name, s.RollingResistance)
	}
	if s.Friction < 0 || s.Friction > 1 {
		return fmt.Errorf("surface %q: friction %.3f out of range [0, 1]", s.Name, s.Friction)
	}
	if s.SpinAbsorption < 0 || s.SpinAbsorption > 1 {
		return fmt.Errorf("surface %q: spin_absorption %.3f out of range [0, 1]", s.Name, s.SpinAbsorption)
	}
	return nil
}
