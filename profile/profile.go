// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile holds the named, immutable PhysicsProfile records that
// drive a Fabric's sub-step: gravity, drag, global stiffness, pretenst
// target, surface mode, viscosity, and a nominal time-scale multiplier.
//
// Profiles are plain value records read field-by-field inside the Fabric's
// inner loop; there is no dynamic dispatch on a profile.
package profile

import "github.com/cpmech/gosl/chk"

// Surface selects how a Fabric reacts to a joint crossing the ground plane.
type Surface int

const (
	// Absent means no ground interaction at all.
	Absent Surface = iota
	// Frozen clamps a joint to the ground and latches it there permanently.
	Frozen
	// Bouncy reflects a joint off the ground with restitution and friction.
	Bouncy
)

// String implements fmt.Stringer.
func (s Surface) String() string {
	switch s {
	case Absent:
		return "Absent"
	case Frozen:
		return "Frozen"
	case Bouncy:
		return "Bouncy"
	default:
		return "Surface(?)"
	}
}

// Restitution and friction coefficients used by the Bouncy surface rule,
// chosen to give a settling bounce: kinetic energy decreases monotonically
// after each ground contact.
const (
	BounceRestitution = 0.5
	BounceFriction    = 0.9
)

// Profile is an immutable bundle of scalar physics parameters for one
// Crucible stage.
type Profile struct {
	Name string

	// Gravity is the downward acceleration magnitude, in fabric units per
	// simulated second squared. Zero means gravity is off.
	Gravity float64

	// Drag is the velocity-damping coefficient applied every sub-step:
	// velocity *= (1 - Drag).
	Drag float64

	// GlobalStiffness multiplies every interval's own stiffness
	// coefficient in the spring-force computation.
	GlobalStiffness float64

	// Pretenst is the target fractional strain pull intervals are driven
	// toward during pretensing. Meaningless outside the Pretensing stage.
	Pretenst float64

	// Surface selects the ground-plane interaction rule.
	Surface Surface

	// Viscosity is the secondary damping coefficient applied to the
	// component of relative endpoint velocity along an interval's axis.
	Viscosity float64

	// TimeScale is the nominal simulated-seconds-per-wall-second multiplier
	// a host should request via Crucible.TargetTimeScale for this stage.
	TimeScale float64
}

// Construction is used while the external build phase is growing the
// structure: fast, no gravity, no ground interaction.
var Construction = Profile{
	Name:            "Construction",
	Gravity:         0,
	Drag:            0.001,
	GlobalStiffness: 1,
	Pretenst:        0,
	Surface:         Absent,
	Viscosity:       0.01,
	TimeScale:       5,
}

// Pretensing ramps pull intervals toward their target tension with gravity
// off; the Pretenser stage controller raises Drag over time starting from
// this value.
var Pretensing = Profile{
	Name:            "Pretensing",
	Gravity:         0,
	Drag:            0.001,
	GlobalStiffness: 1,
	Pretenst:        0.1,
	Surface:         Absent,
	Viscosity:       0.01,
	TimeScale:       5,
}

// Viewing is frozen: gravity off, time scale zero, iteration is a no-op.
var Viewing = Profile{
	Name:            "Viewing",
	Gravity:         0,
	Drag:            0,
	GlobalStiffness: 1,
	Pretenst:        0,
	Surface:         Absent,
	Viscosity:       0,
	TimeScale:       0,
}

// PhysicsTest runs at real time with gravity on; the caller's surface
// argument declares which ground rule applies.
func PhysicsTest(surface Surface) Profile {
	return Profile{
		Name:            "PhysicsTest",
		Gravity:         9.8,
		Drag:            0.0002,
		GlobalStiffness: 1,
		Pretenst:        0,
		Surface:         surface,
		Viscosity:       0.01,
		TimeScale:       1,
	}
}

// BuildCustom assembles a fifth, caller-defined profile from the same
// fields as the four named profiles.
func BuildCustom(name string, gravity, drag, globalStiffness, pretenst float64, surface Surface, viscosity, timeScale float64) Profile {
	if globalStiffness <= 0 {
		chk.Panic("profile %q: GlobalStiffness must be positive (got %v)", name, globalStiffness)
	}
	if drag < 0 || drag > 1 {
		chk.Panic("profile %q: Drag must be in [0,1] (got %v)", name, drag)
	}
	return Profile{
		Name:            name,
		Gravity:         gravity,
		Drag:            drag,
		GlobalStiffness: globalStiffness,
		Pretenst:        pretenst,
		Surface:         surface,
		Viscosity:       viscosity,
		TimeScale:       timeScale,
	}
}

// WithDrag returns a copy of the profile with Drag replaced. Stage
// controllers such as Converger and Settler use this to ride a rising-drag
// curve over a stage's duration without mutating a shared named profile.
func (p Profile) WithDrag(drag float64) Profile {
	p.Drag = drag
	return p
}
