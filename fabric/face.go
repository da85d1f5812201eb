// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fabric

import "github.com/cpmech/gosl/utl"

// Chirality tags a Face's winding independently of the vertex order; the
// external build phase uses it to decide which side a new brick grows from.
type Chirality int

const (
	Left Chirality = iota
	Right
)

// String implements fmt.Stringer.
func (c Chirality) String() string {
	if c == Left {
		return "Left"
	}
	return "Right"
}

// Face is a triangle of three joint indices with a chirality tag. Faces
// play no role in dynamics; they exist only so an external build phase can
// attach new substructures along them.
//
// Invariant: A, B, C are distinct joint indices.
type Face struct {
	A, B, C   int
	Chirality Chirality
}

// Normal computes the face's outward normal (right-hand rule over A->B,
// A->C) given the current joint positions; used only by external
// consumers (attachment geometry), never by the physics inner loop.
func Normal(positions [][]float64, f Face) []float64 {
	ab := make([]float64, 3)
	ac := make([]float64, 3)
	for i := 0; i < 3; i++ {
		ab[i] = positions[f.B][i] - positions[f.A][i]
		ac[i] = positions[f.C][i] - positions[f.A][i]
	}
	n := make([]float64, 3)
	utl.Cross3d(n, ab, ac) // n := ab cross ac
	return n
}
