// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
	"github.com/elastic-interval/tensegrity-lab/progress"
)

// Faller switches to the PhysicsTest profile with minimal drag and runs
// for a scripted duration to let the structure free-fall and strike the
// surface.
type Faller struct {
	Fabric  *fabric.Fabric
	Profile profile.Profile // PhysicsTest profile, drag forced near zero

	progress progress.Progress
}

// NewFaller constructs a Faller that runs for durationSeconds of
// simulated time under the given surface character.
func NewFaller(f *fabric.Fabric, surface profile.Surface, durationSeconds float64) *Faller {
	prof := profile.PhysicsTest(surface)
	prof.Drag = 0.00005
	fl := &Faller{Fabric: f, Profile: prof}
	fl.progress.Start(durationSeconds)
	return fl
}

// Iterate implements Controller.
func (fl *Faller) Iterate(nominalSubSteps int) Outcome {
	if err := fl.Fabric.Iterate(fl.Profile, nominalSubSteps); err != nil {
		return FailureFromErr(err)
	}
	fl.progress.Decrement(float64(nominalSubSteps) * fabric.Dt)
	if !fl.progress.IsBusy() {
		return Finished
	}
	return Continue
}
