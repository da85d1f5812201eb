// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stage implements the seven stage controllers (Animator, Oven,
// Pretenser, Converger, Faller, Settler, Actuator) that the Crucible
// dispatches to. Each owns one stage's entry/step/exit logic over a
// Fabric; none does dynamic dispatch on a PhysicsProfile, and the Crucible
// dispatches to a concrete Controller value per stage rather than a
// polymorphic base class.
package stage

import "github.com/elastic-interval/tensegrity-lab/ekind"

// Outcome is what a Controller's Iterate call reports back to the Crucible.
type Outcome struct {
	Done   bool
	Failed bool
	Kind   ekind.Kind // meaningful only when Failed
	Detail string     // meaningful only when Failed
}

// Continue reports that the stage has more work to do.
var Continue = Outcome{}

// Finished reports that the stage has completed successfully.
var Finished = Outcome{Done: true}

// Failure builds a Failed outcome carrying the given error kind.
func Failure(kind ekind.Kind, format string, args ...interface{}) Outcome {
	e := ekind.New(kind, format, args...)
	return Outcome{Failed: true, Kind: e.Kind, Detail: e.Message}
}

// FailureFromErr adapts a Fabric.Iterate error (always an *ekind.Error, or
// nil) into a Failed Outcome. Callers only invoke this after checking
// err != nil.
func FailureFromErr(err error) Outcome {
	if e, ok := err.(*ekind.Error); ok {
		return Outcome{Failed: true, Kind: e.Kind, Detail: e.Message}
	}
	return Outcome{Failed: true, Kind: ekind.UnstableStructure, Detail: err.Error()}
}

// Controller is the interface every stage controller implements. Iterate
// is handed a *nominal* sub-step count (e.g. 1000); the Crucible's outer
// loop, driven by the host's FPS, is what rescales that into the actual
// sub-step count a Fabric sees.
type Controller interface {
	Iterate(nominalSubSteps int) Outcome
}
