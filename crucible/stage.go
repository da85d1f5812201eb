// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crucible implements the lifecycle controller that owns a Fabric,
// its active PhysicsProfile, a BrickLibrary and a Radio, and drives it
// through the stage state machine.
package crucible

// Stage is the Crucible's current lifecycle stage.
type Stage int

const (
	Initialization Stage = iota
	Building
	Shaping
	Pretensing
	Viewing
	PhysicsTesting
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case Initialization:
		return "Initialization"
	case Building:
		return "Building"
	case Shaping:
		return "Shaping"
	case Pretensing:
		return "Pretensing"
	case Viewing:
		return "Viewing"
	case PhysicsTesting:
		return "PhysicsTesting"
	default:
		return "Stage(?)"
	}
}
