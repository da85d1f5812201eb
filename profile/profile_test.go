// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01: named profile invariants")

	chk.Scalar(tst, "Construction.TimeScale", 1e-15, Construction.TimeScale, 5)
	chk.Scalar(tst, "Construction.Gravity", 1e-15, Construction.Gravity, 0)
	if Construction.Surface != Absent {
		tst.Errorf("Construction.Surface should be Absent, got %v", Construction.Surface)
	}

	chk.Scalar(tst, "Viewing.TimeScale", 1e-15, Viewing.TimeScale, 0)

	pt := PhysicsTest(Bouncy)
	chk.Scalar(tst, "PhysicsTest.Gravity", 1e-15, pt.Gravity, 9.8)
	chk.Scalar(tst, "PhysicsTest.TimeScale", 1e-15, pt.TimeScale, 1)
	if pt.Surface != Bouncy {
		tst.Errorf("PhysicsTest(Bouncy).Surface should be Bouncy, got %v", pt.Surface)
	}
}

func Test_profile02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile02: WithDrag does not mutate the receiver")

	base := Pretensing
	risen := base.WithDrag(0.9)
	chk.Scalar(tst, "base.Drag unchanged", 1e-15, base.Drag, Pretensing.Drag)
	chk.Scalar(tst, "risen.Drag", 1e-15, risen.Drag, 0.9)
}

func Test_profile03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile03: BuildCustom validates fields")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("BuildCustom with GlobalStiffness==0 should have panicked")
		}
	}()
	BuildCustom("bad", 0, 0.1, 0, 0, Absent, 0, 1) // GlobalStiffness == 0 must panic
}
