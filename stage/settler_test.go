// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

func Test_settler01(tst *testing.T) {

	chk.PrintTitle("settler01: grounded joints get anchored on a Frozen surface")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 0.02, 0})

	s := NewSettler(f, profile.Frozen, 0.2, 0.02)
	for {
		out := s.Iterate(200)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
	}
	if !f.Joints[0].Anchored {
		tst.Errorf("joint resting on a Frozen surface should be anchored once Settler finishes")
	}
}

func Test_settler02(tst *testing.T) {

	chk.PrintTitle("settler02: Absent surface never anchors joints")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 2, 0})

	s := NewSettler(f, profile.Absent, 0.2, 0.005)
	for {
		out := s.Iterate(50)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
	}
	if f.Joints[0].Anchored {
		tst.Errorf("Settler should never anchor joints under an Absent surface")
	}
}
