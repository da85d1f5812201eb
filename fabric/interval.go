// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fabric

// Role tags an Interval as a compression-only strut or a tension-only
// cable. Role is a small tagged variant the force-application code
// branches on directly; there is no polymorphism here.
type Role int

const (
	// Push is a compression-only strut: it can only push its endpoints
	// apart toward Ideal from below, never pull them together.
	Push Role = iota
	// Pull is a tension-only cable: it can only shorten toward Ideal from
	// above, never push its endpoints apart past Ideal.
	Pull
)

// String implements fmt.Stringer.
func (r Role) String() string {
	if r == Push {
		return "Push"
	}
	return "Pull"
}

// Interval is a directed pair (Alpha, Omega) of joint indices connected by
// an axial spring. A Push interval only exerts force while CurrentLength <
// Ideal (compression); a Pull interval only exerts force while
// CurrentLength > Ideal (tension).
//
// Invariant: Alpha != Omega; Ideal > 0.
type Interval struct {
	Alpha, Omega int
	Role         Role

	Ideal     float64 // preferred length
	Stiffness float64 // per-interval stiffness coefficient

	CurrentLength float64 // cached at step start
	Strain        float64 // (CurrentLength - Ideal) / Ideal

	ramp rampState // optional linear ideal-length ramp
}

// rampState linearly advances Ideal from Source to Target over Steps
// sub-steps. StepsLeft == 0 means no ramp is active.
type rampState struct {
	active    bool
	source    float64
	target    float64
	steps     int // total steps requested
	stepsLeft int
}

// StartRamp begins ramping Ideal linearly from its current value to target
// over the given (positive) number of sub-steps.
func (iv *Interval) StartRamp(target float64, steps int) {
	if steps <= 0 {
		iv.Ideal = target
		iv.ramp = rampState{}
		return
	}
	iv.ramp = rampState{
		active:    true,
		source:    iv.Ideal,
		target:    target,
		steps:     steps,
		stepsLeft: steps,
	}
}

// RampBusy reports whether this interval's ideal length is still ramping.
func (iv *Interval) RampBusy() bool {
	return iv.ramp.active
}

// advanceRamp moves Ideal one sub-step toward its ramp target, freezing the
// ramp once it reaches zero remaining steps.
func (iv *Interval) advanceRamp() {
	if !iv.ramp.active {
		return
	}
	iv.ramp.stepsLeft--
	done := float64(iv.ramp.steps-iv.ramp.stepsLeft) / float64(iv.ramp.steps)
	iv.Ideal = iv.ramp.source + done*(iv.ramp.target-iv.ramp.source)
	if iv.ramp.stepsLeft <= 0 {
		iv.Ideal = iv.ramp.target
		iv.ramp = rampState{}
	}
}

// forceAllowed reports whether this interval's role permits exerting force
// given its current strain sign: a Push only when strain is non-positive
// (current length <= ideal), a Pull only when strain is non-negative.
func (iv *Interval) forceAllowed() bool {
	switch iv.Role {
	case Push:
		return iv.Strain <= 0
	default: // Pull
		return iv.Strain >= 0
	}
}
