// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// AnimationScript stands in for the external build phase that grows a
// structure by attaching prebaked bricks. The Animator knows nothing
// about brick geometry; it only runs Fabric sub-steps under the
// Construction profile between calls to Step.
type AnimationScript interface {
	// Step is called once per nominal sub-step batch; it may mutate the
	// Fabric (attach a brick, splice an interval, ...) and reports true
	// once the whole scripted sequence has completed.
	Step(f *fabric.Fabric) (done bool)
}

// Animator runs the Building stage: it alternates running Construction
// physics with driving an AnimationScript until the script reports done.
type Animator struct {
	Fabric *fabric.Fabric
	Script AnimationScript
}

// NewAnimator constructs an Animator over the given Fabric and script.
func NewAnimator(f *fabric.Fabric, script AnimationScript) *Animator {
	return &Animator{Fabric: f, Script: script}
}

// Iterate implements Controller.
func (a *Animator) Iterate(nominalSubSteps int) Outcome {
	if err := a.Fabric.Iterate(profile.Construction, nominalSubSteps); err != nil {
		return FailureFromErr(err)
	}
	if a.Script.Step(a.Fabric) {
		return Finished
	}
	return Continue
}
