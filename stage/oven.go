// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"math"

	"github.com/elastic-interval/tensegrity-lab/brick"
	"github.com/elastic-interval/tensegrity-lab/ekind"
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// SettleSpeed is the max-joint-speed threshold below which the Oven
// considers a prototype settled.
const SettleSpeed = 3e-6

// ReferenceStrain is the pull strain a baked brick's face intervals must
// have converged to, within FaceStrainTolerance.
const ReferenceStrain = 0.1

// FaceStrainTolerance is the per-interval tolerance around ReferenceStrain.
const FaceStrainTolerance = 0.01

// FaceReference names the pull intervals that bound a baked face; mapping
// geometric faces to their bounding pull intervals is a build-phase
// concern (the Oven does not know brick geometry), so the caller supplies
// this set directly.
type FaceReference struct {
	Name           string
	IntervalID     int
	ReferenceValue float64 // defaults to ReferenceStrain when zero
	Tolerance      float64 // defaults to FaceStrainTolerance when zero
}

// Oven bakes a prototype Fabric: it iterates Construction physics until
// max joint speed falls below SettleSpeed, then validates that the named
// face pull intervals converged to their reference strain, producing a
// BakedBrick or failing with OvenDidNotSettle / OvenBadStrain.
type Oven struct {
	Fabric         *fabric.Fabric
	Name           string
	FaceIntervals  []FaceReference
	MaxBakeSteps   int
	subStepsSoFar  int
	settled        bool
	result         *brick.BakedBrick
}

// NewOven constructs an Oven for the given prototype, face-interval
// references, and maximum bake duration in sub-steps.
func NewOven(f *fabric.Fabric, name string, faces []FaceReference, maxBakeSteps int) *Oven {
	return &Oven{Fabric: f, Name: name, FaceIntervals: faces, MaxBakeSteps: maxBakeSteps}
}

// Result returns the baked brick once Iterate has reported Finished.
func (o *Oven) Result() *brick.BakedBrick {
	return o.result
}

// Iterate implements Controller.
func (o *Oven) Iterate(nominalSubSteps int) Outcome {
	if o.settled {
		return o.validate()
	}

	err := o.Fabric.Iterate(profile.Construction, nominalSubSteps)
	o.subStepsSoFar += nominalSubSteps
	if err != nil {
		return FailureFromErr(err)
	}

	if o.Fabric.MaxJointSpeed() < SettleSpeed {
		o.settled = true
		return o.validate()
	}
	if o.subStepsSoFar >= o.MaxBakeSteps {
		return Failure(ekind.OvenDidNotSettle,
			"max joint speed %.3e still above %.3e after %d sub-steps",
			o.Fabric.MaxJointSpeed(), SettleSpeed, o.subStepsSoFar)
	}
	return Continue
}

// validate checks face-interval strains and, if they pass, bakes the brick.
func (o *Oven) validate() Outcome {
	for _, ref := range o.FaceIntervals {
		reference := ref.ReferenceValue
		if reference == 0 {
			reference = ReferenceStrain
		}
		tol := ref.Tolerance
		if tol == 0 {
			tol = FaceStrainTolerance
		}
		strain := o.Fabric.Intervals[ref.IntervalID].Strain
		if math.Abs(strain-reference) > tol {
			return Failure(ekind.OvenBadStrain,
				"face interval %q (id=%d): strain %.4f outside %.4f±%.4f",
				ref.Name, ref.IntervalID, strain, reference, tol)
		}
	}
	o.result = o.bake()
	return Finished
}

// bake snapshots the settled Fabric into an immutable BakedBrick.
func (o *Oven) bake() *brick.BakedBrick {
	b := &brick.BakedBrick{
		Name:   o.Name,
		Joints: make([][]float64, len(o.Fabric.Joints)),
	}
	for i, j := range o.Fabric.Joints {
		b.Joints[i] = []float64{j.Position[0], j.Position[1], j.Position[2]}
	}
	for _, iv := range o.Fabric.Intervals {
		b.Intervals = append(b.Intervals, brick.IntervalSpec{
			Alpha: iv.Alpha, Omega: iv.Omega, Role: iv.Role,
			Ideal: iv.Ideal, Stiffness: iv.Stiffness, Strain: iv.Strain,
		})
	}
	for i, face := range o.Fabric.Faces {
		b.Faces = append(b.Faces, brick.FaceSpec{
			Name: faceNameFor(i, o.FaceIntervals), A: face.A, B: face.B, C: face.C,
			Chirality: face.Chirality,
		})
	}
	return b
}

// faceNameFor looks up a caller-supplied name for the i-th face, falling
// back to a positional placeholder; FaceReference entries are matched to
// faces by position since the Oven does not know brick attachment geometry.
func faceNameFor(i int, refs []FaceReference) string {
	if i < len(refs) {
		return refs[i].Name
	}
	return ""
}
