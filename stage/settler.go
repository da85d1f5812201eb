// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
	"github.com/elastic-interval/tensegrity-lab/progress"
)

// anchorEpsilon is how close to the ground plane a joint's Y must settle
// before Settler anchors it (profile.Frozen latches exactly at 0, but a
// joint can rest a sub-step away from the plane between ticks).
const anchorEpsilon = 1e-9

// Settler runs the PhysicsTest profile with a drag coefficient that rises
// progressively until its Progress completes; any joint that touches a
// Frozen surface along the way is anchored in place.
type Settler struct {
	Fabric  *fabric.Fabric
	Surface profile.Surface

	progress progress.Progress
	duration float64
	elapsed  float64
	minDrag  float64
}

// NewSettler constructs a Settler that runs for durationSeconds of
// simulated time, raising drag from minDrag to 1.0 over that span.
func NewSettler(f *fabric.Fabric, surface profile.Surface, minDrag, durationSeconds float64) *Settler {
	s := &Settler{Fabric: f, Surface: surface, duration: durationSeconds, minDrag: minDrag}
	s.progress.Start(durationSeconds)
	return s
}

// Iterate implements Controller.
func (s *Settler) Iterate(nominalSubSteps int) Outcome {
	t := s.elapsed / s.duration
	if t > 1 {
		t = 1
	}
	drag := s.minDrag + t*(1-s.minDrag)

	prof := profile.PhysicsTest(s.Surface)
	prof.Drag = drag

	if err := s.Fabric.Iterate(prof, nominalSubSteps); err != nil {
		return FailureFromErr(err)
	}

	if s.Surface == profile.Frozen {
		anchorGrounded(s.Fabric)
	}

	elapsed := float64(nominalSubSteps) * fabric.Dt
	s.elapsed += elapsed
	s.progress.Decrement(elapsed)

	if !s.progress.IsBusy() {
		return Finished
	}
	return Continue
}

// anchorGrounded anchors every joint resting on the ground plane, so later
// stages no longer move it.
func anchorGrounded(f *fabric.Fabric) {
	for i := range f.Joints {
		j := &f.Joints[i]
		if !j.Anchored && j.Position[1] <= anchorEpsilon {
			j.Anchored = true
		}
	}
}
