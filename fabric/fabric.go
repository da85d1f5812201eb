// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fabric implements the Elastic Interval Geometry inner physics
// loop: an in-memory truss of Joints connected by axial Push/Pull
// Intervals, evolved one deterministic sub-step at a time.
//
// Joints, Intervals and Faces live in dense, index-addressed slices inside
// Fabric (indexed arenas, not references): Intervals and Faces reference
// Joints by integer index, which keeps the inner loop cache-friendly and
// avoids lifetime coupling between entity kinds.
package fabric

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/elastic-interval/tensegrity-lab/ekind"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// Dt is the fixed sub-step duration: 50 microseconds of simulated fabric
// time. There is no adaptive step size.
const Dt = 50e-6

// DefaultMaxStrainBound is the |strain| ceiling past which a sub-step
// reports ekind.UnstableStructure.
const DefaultMaxStrainBound = 1.0

// Fabric is the aggregate truss: joints, intervals, faces, a monotonically
// incrementing age counted in sub-steps, and a scalar that maps fabric
// units to millimetres.
type Fabric struct {
	Joints    []Joint
	Intervals []Interval
	Faces     []Face

	Age   uint64
	Scale float64

	// MaxStrainBound is the configurable maximum |strain| before a
	// sub-step reports UnstableStructure. Defaults to
	// DefaultMaxStrainBound; callers may tighten or loosen it.
	MaxStrainBound float64

	// Frozen is set by the Converger stage controller on completion; the
	// Fabric itself never reads it, it is purely a hint for the host.
	Frozen bool

	removed []bool    // parallel to Intervals; true once RemoveInterval(id) is called
	massBuf []float64 // scratch buffer reused by recomputeInverseMasses

	// scratchpad. computed @ each sub-step, reused to avoid per-step
	// allocation in the hot interval pass.
	axisBuf   []float64
	relVelBuf []float64
}

// New creates an empty Fabric at the given fabric-to-millimetre scale.
func New(scale float64) *Fabric {
	return &Fabric{
		Scale:          scale,
		MaxStrainBound: DefaultMaxStrainBound,
	}
}

// AddJoint appends a new joint at the given position and returns its id.
func (f *Fabric) AddJoint(position []float64) int {
	if len(position) != 3 {
		chk.Panic("fabric: AddJoint requires a 3-element position, got %d elements", len(position))
	}
	for _, v := range position {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			chk.Panic("fabric: AddJoint: position must be finite, got %v", position)
		}
	}
	f.Joints = append(f.Joints, newJoint(position))
	return len(f.Joints) - 1
}

// AddInterval appends a new interval between alpha and omega with the
// given role, preferred length and stiffness, and returns its id.
func (f *Fabric) AddInterval(alpha, omega int, role Role, ideal, stiffness float64) int {
	f.checkJointIndex(alpha, "AddInterval alpha")
	f.checkJointIndex(omega, "AddInterval omega")
	if alpha == omega {
		chk.Panic("fabric: AddInterval: alpha and omega must differ (both %d)", alpha)
	}
	if ideal <= 0 {
		chk.Panic("fabric: AddInterval: ideal length must be positive (got %v)", ideal)
	}
	f.Intervals = append(f.Intervals, Interval{
		Alpha: alpha, Omega: omega, Role: role,
		Ideal: ideal, Stiffness: stiffness,
	})
	f.removed = append(f.removed, false)
	return len(f.Intervals) - 1
}

// AddIntervalRamped is AddInterval but with the ideal length starting at
// rampFrom and linearly advancing to rampTo over rampSteps sub-steps.
func (f *Fabric) AddIntervalRamped(alpha, omega int, role Role, stiffness, rampFrom, rampTo float64, rampSteps int) int {
	id := f.AddInterval(alpha, omega, role, rampFrom, stiffness)
	f.Intervals[id].StartRamp(rampTo, rampSteps)
	return id
}

// RemoveInterval deactivates the interval with the given id. It releases no
// other objects: joints that were only incident to this interval stay
// alive, with InvMass recomputed to zero so interval forces no longer move
// them.
func (f *Fabric) RemoveInterval(id int) {
	f.checkIntervalIndex(id, "RemoveInterval")
	f.removed[id] = true
}

// AddFace appends a new face over three distinct joint indices and returns
// its id. Faces play no role in dynamics.
func (f *Fabric) AddFace(a, b, c int, chirality Chirality) int {
	f.checkJointIndex(a, "AddFace a")
	f.checkJointIndex(b, "AddFace b")
	f.checkJointIndex(c, "AddFace c")
	if a == b || b == c || a == c {
		chk.Panic("fabric: AddFace: vertices must be distinct (%d,%d,%d)", a, b, c)
	}
	f.Faces = append(f.Faces, Face{A: a, B: b, C: c, Chirality: chirality})
	return len(f.Faces) - 1
}

func (f *Fabric) checkJointIndex(id int, who string) {
	if id < 0 || id >= len(f.Joints) {
		chk.Panic("fabric: %s: joint index %d out of range [0,%d)", who, id, len(f.Joints))
	}
}

func (f *Fabric) checkIntervalIndex(id int, who string) {
	if id < 0 || id >= len(f.Intervals) {
		chk.Panic("fabric: %s: interval index %d out of range [0,%d)", who, id, len(f.Intervals))
	}
}

// Iterate runs n deterministic sub-steps under the given physics profile.
// It stops early and returns an *ekind.Error{Kind: ekind.UnstableStructure}
// the first time a sub-step's interval pass observes |strain| exceeding
// MaxStrainBound; Age is not incremented for the aborted sub-step.
func (f *Fabric) Iterate(prof profile.Profile, n int) error {
	for i := 0; i < n; i++ {
		if err := f.subStep(prof); err != nil {
			return err
		}
	}
	return nil
}

// subStep runs one deterministic sub-step: ideal ramp, interval pass,
// joint pass, age increment.
func (f *Fabric) subStep(prof profile.Profile) error {

	// 1. ideal ramp
	for i := range f.Intervals {
		if f.removed[i] {
			continue
		}
		f.Intervals[i].advanceRamp()
	}

	f.recomputeInverseMasses()

	// 2. interval pass
	if f.axisBuf == nil {
		f.axisBuf = make([]float64, 3)
		f.relVelBuf = make([]float64, 3)
	}
	axis := f.axisBuf
	relVel := f.relVelBuf
	for i := range f.Intervals {
		if f.removed[i] {
			continue
		}
		iv := &f.Intervals[i]
		alpha := &f.Joints[iv.Alpha]
		omega := &f.Joints[iv.Omega]

		la.VecAdd2(axis, 1, omega.Position, -1, alpha.Position) // axis := omega.Position - alpha.Position
		length := la.VecNorm(axis)
		iv.CurrentLength = length

		strain := 0.0
		if iv.Ideal > 0 {
			strain = (length - iv.Ideal) / iv.Ideal
		}
		if math.IsNaN(strain) || math.IsInf(strain, 0) || math.Abs(strain) > f.MaxStrainBound {
			return ekind.New(ekind.UnstableStructure,
				"interval %d (%d-%d): |strain|=%v exceeds bound %v", i, iv.Alpha, iv.Omega, math.Abs(strain), f.MaxStrainBound)
		}

		iv.Strain = strain
		if !iv.forceAllowed() {
			iv.Strain = 0
			continue
		}

		if length < 1e-12 {
			continue // zero-length interval: force magnitude zero, numerically harmless
		}
		la.VecScale(axis, 0, 1/length, axis) // axis := unit vector alpha->omega

		magnitude := iv.Stiffness * prof.GlobalStiffness * strain * length

		la.VecAdd2(relVel, 1, omega.Velocity, -1, alpha.Velocity)
		axialRelVel := relVel[0]*axis[0] + relVel[1]*axis[1] + relVel[2]*axis[2]
		magnitude += prof.Viscosity * axialRelVel

		// equal-and-opposite axial force: pulls alpha toward omega when
		// magnitude>0 (tension) and pushes alpha away from omega when
		// magnitude<0 (compression). Alpha gets +magnitude*axis, Omega
		// the negation, consistent regardless of Role.
		if !alpha.Anchored {
			la.VecAdd(alpha.Force, magnitude, axis)
		}
		if !omega.Anchored {
			la.VecAdd(omega.Force, -magnitude, axis)
		}
	}

	// 3. joint pass
	for i := range f.Joints {
		j := &f.Joints[i]
		if j.Anchored {
			la.VecFill(j.Force, 0)
			continue
		}
		j.Velocity[1] -= prof.Gravity * Dt
		for k := 0; k < 3; k++ {
			j.Velocity[k] = j.Velocity[k]*(1-prof.Drag) + j.Force[k]*j.InvMass
		}
		la.VecAdd(j.Position, Dt, j.Velocity)
		la.VecFill(j.Force, 0)
		applySurface(j, prof.Surface)
	}

	// 4. age
	f.Age++
	return nil
}

// applySurface enforces the ground-plane rule for one joint after its
// position has been integrated.
func applySurface(j *Joint, surface profile.Surface) {
	if surface == profile.Absent || j.Position[1] >= 0 {
		return
	}
	switch surface {
	case profile.Frozen:
		j.Position[1] = 0
		j.Velocity[0] = 0
		j.Velocity[1] = 0
		j.Velocity[2] = 0
		j.Anchored = true
	case profile.Bouncy:
		j.Position[1] = -j.Position[1]
		j.Velocity[1] = -j.Velocity[1] * profile.BounceRestitution
		j.Velocity[0] *= profile.BounceFriction
		j.Velocity[2] *= profile.BounceFriction
	}
}

// recomputeInverseMasses derives each joint's inverse effective mass from
// its incident intervals: every interval contributes half of
// Ideal*Stiffness to each endpoint's mass, a stand-in for "stiffer, longer
// members carry more inertia". A joint with no incident (non-removed)
// interval has InvMass == 0: interval forces do not move it, gravity does.
func (f *Fabric) recomputeInverseMasses() {
	if len(f.massBuf) != len(f.Joints) {
		f.massBuf = make([]float64, len(f.Joints))
	}
	mass := f.massBuf
	la.VecFill(mass, 0)
	for i := range f.Intervals {
		if f.removed[i] {
			continue
		}
		iv := &f.Intervals[i]
		half := iv.Ideal * iv.Stiffness / 2
		mass[iv.Alpha] += half
		mass[iv.Omega] += half
	}
	for i := range f.Joints {
		if mass[i] > 0 {
			f.Joints[i].InvMass = 1 / mass[i]
		} else {
			f.Joints[i].InvMass = 0
		}
	}
}

// MaxJointSpeed returns the largest joint velocity magnitude in the Fabric.
func (f *Fabric) MaxJointSpeed() float64 {
	max := 0.0
	for i := range f.Joints {
		speed := la.VecNorm(f.Joints[i].Velocity)
		if speed > max {
			max = speed
		}
	}
	return max
}

// MaxStrain returns the largest |strain| recorded across all (non-removed)
// intervals as of the last sub-step.
func (f *Fabric) MaxStrain() float64 {
	max := 0.0
	for i := range f.Intervals {
		if f.removed[i] {
			continue
		}
		s := math.Abs(f.Intervals[i].Strain)
		if s > max {
			max = s
		}
	}
	return max
}

// Centralize translates the Fabric so the centroid's X/Z lie at the origin
// and the minimum Y equals targetAltitude.
func (f *Fabric) Centralize(targetAltitude float64) {
	if len(f.Joints) == 0 {
		return
	}
	var cx, cz, minY float64
	minY = math.Inf(1)
	for i := range f.Joints {
		p := f.Joints[i].Position
		cx += p[0]
		cz += p[2]
		if p[1] < minY {
			minY = p[1]
		}
	}
	n := float64(len(f.Joints))
	cx /= n
	cz /= n
	shift := []float64{-cx, targetAltitude - minY, -cz}
	for i := range f.Joints {
		la.VecAdd(f.Joints[i].Position, 1, shift)
	}
}

// SetAltitude translates the Fabric vertically only, so its minimum Y
// equals y.
func (f *Fabric) SetAltitude(y float64) {
	if len(f.Joints) == 0 {
		return
	}
	minY := math.Inf(1)
	for i := range f.Joints {
		if f.Joints[i].Position[1] < minY {
			minY = f.Joints[i].Position[1]
		}
	}
	dy := y - minY
	for i := range f.Joints {
		f.Joints[i].Position[1] += dy
	}
}

// ZeroVelocities sets every joint's velocity to zero; used by Converger on
// completion.
func (f *Fabric) ZeroVelocities() {
	for i := range f.Joints {
		la.VecFill(f.Joints[i].Velocity, 0)
	}
}

// Finite reports whether every joint position is finite.
func (f *Fabric) Finite() bool {
	for i := range f.Joints {
		p := f.Joints[i].Position
		for k := 0; k < 3; k++ {
			if math.IsNaN(p[k]) || math.IsInf(p[k], 0) {
				return false
			}
		}
	}
	return true
}
