// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"github.com/cpmech/gosl/la"

	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
	"github.com/elastic-interval/tensegrity-lab/progress"
)

// pretenserPhase is Pretenser's internal sub-state.
type pretenserPhase int

const (
	pretenserStart pretenserPhase = iota
	pretenserSlacken
	pretenserPretensing
	pretenserPretenst
)

// Pretenser centralises the structure, ramps pull intervals toward their
// target tension, and runs the Pretensing profile until its Progress
// expires.
type Pretenser struct {
	Fabric         *fabric.Fabric
	Profile        profile.Profile // the Pretensing profile, held by value
	PullIntervals  []int           // ids of the pull intervals being pretensioned
	TargetAltitude float64
	RampSteps      int // nominal sub-steps over which ideals ramp

	progress progress.Progress
	phase    pretenserPhase
}

// NewPretenser constructs a Pretenser for the given fabric and pull
// interval set. durationSeconds is how long the Pretensing profile runs
// once ramping completes.
func NewPretenser(f *fabric.Fabric, pullIntervals []int, targetAltitude float64, rampSteps int, durationSeconds float64) *Pretenser {
	p := &Pretenser{
		Fabric:         f,
		Profile:        profile.Pretensing,
		PullIntervals:  pullIntervals,
		TargetAltitude: targetAltitude,
		RampSteps:      rampSteps,
	}
	p.progress.Start(durationSeconds)
	return p
}

// Iterate implements Controller.
func (p *Pretenser) Iterate(nominalSubSteps int) Outcome {
	switch p.phase {

	case pretenserStart:
		p.Fabric.Centralize(p.TargetAltitude)
		p.phase = pretenserSlacken
		return Continue

	case pretenserSlacken:
		// ramp every pull interval's ideal toward current_length /
		// (1 + pretenst_target), so it settles into the target tension
		// once physics is allowed to relax it. CurrentLength is only
		// populated once physics has run, so it's measured here directly
		// from joint positions rather than read off the cache.
		factor := 1 / (1 + p.Profile.Pretenst)
		axis := make([]float64, 3)
		for _, id := range p.PullIntervals {
			iv := &p.Fabric.Intervals[id]
			alpha := p.Fabric.Joints[iv.Alpha].Position
			omega := p.Fabric.Joints[iv.Omega].Position
			la.VecAdd2(axis, 1, omega, -1, alpha)
			length := la.VecNorm(axis)
			target := length * factor
			if target <= 0 {
				target = iv.Ideal
			}
			iv.StartRamp(target, p.RampSteps)
		}
		p.phase = pretenserPretensing
		return Continue

	case pretenserPretensing:
		if err := p.Fabric.Iterate(p.Profile, nominalSubSteps); err != nil {
			return FailureFromErr(err)
		}
		if !anyRampBusy(p.Fabric, p.PullIntervals) {
			p.phase = pretenserPretenst
		}
		return Continue

	default: // pretenserPretenst
		if err := p.Fabric.Iterate(p.Profile, nominalSubSteps); err != nil {
			return FailureFromErr(err)
		}
		elapsed := float64(nominalSubSteps) * fabric.Dt
		p.progress.Decrement(elapsed)
		if !p.progress.IsBusy() {
			return Finished
		}
		return Continue
	}
}

func anyRampBusy(f *fabric.Fabric, ids []int) bool {
	for _, id := range ids {
		if f.Intervals[id].RampBusy() {
			return true
		}
	}
	return false
}
