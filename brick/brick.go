// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brick holds the read-only BakedBrick data record and the
// BrickLibrary lookup the external build phase consumes. Nothing in this
// package runs physics; it is pure data plus a lookup.
package brick

import "github.com/elastic-interval/tensegrity-lab/fabric"

// IntervalSpec is one interval of a BakedBrick, expressed relative to the
// brick's own local joint indices.
type IntervalSpec struct {
	Alpha, Omega int
	Role         fabric.Role
	Ideal        float64
	Stiffness    float64
	Strain       float64 // baked-in strain at the time the Oven finished
}

// FaceSpec is one named face of a BakedBrick, expressed relative to the
// brick's own local joint indices.
type FaceSpec struct {
	Name      string
	A, B, C   int
	Chirality fabric.Chirality
}

// BakedBrick is a reusable prebaked sub-fabric: joint positions, intervals
// with ideals and strains, and named faces. Bricks are immutable once
// baked; the core only ever reads one.
type BakedBrick struct {
	Name      string
	Joints    [][]float64 // [n][3] local joint positions
	Intervals []IntervalSpec
	Faces     []FaceSpec
}

// Library is a read-only lookup the external build phase uses to fetch
// bricks by name. The physics inner loop never calls it.
type Library interface {
	Lookup(name string) (*BakedBrick, bool)
}

// MapLibrary is a simple in-memory Library backed by a map, suitable for
// tests and the cmd/crucible-demo host.
type MapLibrary map[string]*BakedBrick

// Lookup implements Library.
func (l MapLibrary) Lookup(name string) (*BakedBrick, bool) {
	b, ok := l[name]
	return b, ok
}
