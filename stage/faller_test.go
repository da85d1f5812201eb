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

func Test_faller01(tst *testing.T) {

	chk.PrintTitle("faller01: runs its scripted duration and stops")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 2, 0})

	fl := NewFaller(f, profile.Bouncy, 0.05)
	steps := 0
	for {
		out := fl.Iterate(100)
		steps++
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
		if out.Done {
			break
		}
		if steps > 100000 {
			tst.Fatalf("Faller never finished")
		}
	}
	if fl.progress.IsBusy() {
		tst.Errorf("progress should be exhausted once Faller reports Done")
	}
}
