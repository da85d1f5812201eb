// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/elastic-interval/tensegrity-lab/fabric"
)

func Test_pretenser01(tst *testing.T) {

	chk.PrintTitle("pretenser01: centralises, ramps pull intervals, and settles")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 1, 0})
	f.AddJoint([]float64{1, 1, 0})
	iv := f.AddInterval(0, 1, fabric.Pull, 1.0, 1.0)

	p := NewPretenser(f, []int{iv}, 0.5, 1000, 0.01)

	var out Outcome
	for i := 0; i < 10000; i++ {
		out = p.Iterate(10)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
	}
	if !out.Done {
		tst.Fatalf("Pretenser never finished")
	}

	minY := math.Min(f.Joints[0].Position[1], f.Joints[1].Position[1])
	chk.Scalar(tst, "min Y after centralize", 1e-6, minY, 0.5)

	if f.Intervals[iv].RampBusy() {
		tst.Errorf("pull interval ramp should be finished once Pretenser reports Done")
	}
}
