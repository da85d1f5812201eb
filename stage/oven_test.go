// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/elastic-interval/tensegrity-lab/ekind"
	"github.com/elastic-interval/tensegrity-lab/fabric"
)

func Test_oven01(tst *testing.T) {

	chk.PrintTitle("oven01: settles and bakes a brick when face strain matches the reference")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 0, 0})
	f.AddJoint([]float64{1.1, 0, 0})
	f.Joints[0].Anchored = true
	f.Joints[1].Anchored = true
	iv := f.AddInterval(0, 1, fabric.Pull, 1.0, 1.0)

	refs := []FaceReference{{Name: "south", IntervalID: iv}}
	o := NewOven(f, "test-brick", refs, 1000)

	var out Outcome
	for i := 0; i < 10; i++ {
		out = o.Iterate(10)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
	}
	if !out.Done {
		tst.Fatalf("Oven never finished settling")
	}
	b := o.Result()
	if b == nil {
		tst.Fatalf("Result should be non-nil once Oven reports Done")
	}
	chk.IntAssert(len(b.Joints), 2)
	chk.IntAssert(len(b.Intervals), 1)
	chk.Scalar(tst, "baked interval strain", 1e-9, b.Intervals[0].Strain, 0.1)
}

func Test_oven02(tst *testing.T) {

	chk.PrintTitle("oven02: OvenBadStrain when a face interval misses its reference")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 0, 0})
	f.AddJoint([]float64{2.0, 0, 0})
	f.Joints[0].Anchored = true
	f.Joints[1].Anchored = true
	iv := f.AddInterval(0, 1, fabric.Pull, 1.0, 1.0)

	refs := []FaceReference{{Name: "bad", IntervalID: iv}}
	o := NewOven(f, "bad-brick", refs, 1000)

	out := o.Iterate(1)
	if !out.Failed || out.Kind != ekind.OvenBadStrain {
		tst.Fatalf("expected OvenBadStrain, got %+v", out)
	}
}
