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

func Test_converger01(tst *testing.T) {

	chk.PrintTitle("converger01: freezes the Fabric and fires OnDone on completion")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 0, 0})
	f.AddJoint([]float64{1.2, 0, 0})
	f.AddInterval(0, 1, fabric.Pull, 1.0, 1.0)

	fired := false
	c := NewConverger(f, profile.Pretensing, 0.01, func() { fired = true })

	var out Outcome
	for i := 0; i < 1000; i++ {
		out = c.Iterate(10)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
	}
	if !out.Done {
		tst.Fatalf("Converger never reported Done")
	}
	if !fired {
		tst.Errorf("OnDone should have fired once Converger completed")
	}
	if !f.Frozen {
		tst.Errorf("Fabric should be marked Frozen once Converger completes")
	}
	for i := range f.Joints {
		for k := 0; k < 3; k++ {
			if f.Joints[i].Velocity[k] != 0 {
				tst.Errorf("joint %d velocity axis %d should be zeroed, got %v", i, k, f.Joints[i].Velocity[k])
			}
		}
	}
}
