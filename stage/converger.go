// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
	"github.com/elastic-interval/tensegrity-lab/progress"
)

// Converger runs the Pretensing profile with a drag coefficient that rises
// linearly from its initial value to 1.0 over the configured duration; on
// completion it zeroes all velocities and marks the Fabric frozen.
type Converger struct {
	Fabric      *fabric.Fabric
	BaseProfile profile.Profile
	OnDone      func() // invoked once, on completion, to emit DisableConvergence

	progress    progress.Progress
	duration    float64
	elapsed     float64
}

// NewConverger constructs a Converger that rises drag to 1.0 over
// durationSeconds of simulated time.
func NewConverger(f *fabric.Fabric, base profile.Profile, durationSeconds float64, onDone func()) *Converger {
	c := &Converger{Fabric: f, BaseProfile: base, OnDone: onDone, duration: durationSeconds}
	c.progress.Start(durationSeconds)
	return c
}

// Iterate implements Controller.
func (c *Converger) Iterate(nominalSubSteps int) Outcome {
	t := c.elapsed / c.duration
	if t > 1 {
		t = 1
	}
	drag := c.BaseProfile.Drag + t*(1-c.BaseProfile.Drag)
	prof := c.BaseProfile.WithDrag(drag)

	if err := c.Fabric.Iterate(prof, nominalSubSteps); err != nil {
		return FailureFromErr(err)
	}

	elapsed := float64(nominalSubSteps) * fabric.Dt
	c.elapsed += elapsed
	c.progress.Decrement(elapsed)

	if !c.progress.IsBusy() {
		c.Fabric.ZeroVelocities()
		c.Fabric.Frozen = true
		if c.OnDone != nil {
			c.OnDone()
		}
		return Finished
	}
	return Continue
}
