// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fabric

// Joint is a point mass in three-space. Position, Velocity and Force are
// 3-element slices operated on with github.com/cpmech/gosl/la vector
// routines.
//
// Invariant: Position is finite. A Joint with no incident interval has
// InvMass == 0, so accumulated interval forces never move it; gravity is
// applied to Velocity directly and still does.
type Joint struct {
	Position []float64 // [3]
	Velocity []float64 // [3]
	Force    []float64 // [3] accumulated this sub-step, zeroed after integration

	InvMass float64 // 1/mass, derived each sub-step from incident intervals

	Anchored bool // position frozen; the interval pass adds no force to it
}

// newJoint allocates a Joint at the given position with zero velocity/force.
func newJoint(position []float64) Joint {
	return Joint{
		Position: []float64{position[0], position[1], position[2]},
		Velocity: make([]float64, 3),
		Force:    make([]float64, 3),
	}
}
