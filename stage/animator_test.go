// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/elastic-interval/tensegrity-lab/fabric"
)

// countingScript reports done after a fixed number of Step calls.
type countingScript struct {
	calls  int
	doneAt int
}

func (s *countingScript) Step(f *fabric.Fabric) bool {
	s.calls++
	return s.calls >= s.doneAt
}

func Test_animator01(tst *testing.T) {

	chk.PrintTitle("animator01: drives its script to completion")

	f := fabric.New(1)
	f.AddJoint([]float64{0, 1, 0})
	f.AddJoint([]float64{0, 2, 0})
	f.AddInterval(0, 1, fabric.Push, 1.0, 1.0)

	script := &countingScript{doneAt: 5}
	a := NewAnimator(f, script)

	var out Outcome
	for i := 0; i < 5; i++ {
		out = a.Iterate(10)
		if out.Failed {
			tst.Fatalf("unexpected failure: %v", out.Detail)
		}
	}
	if !out.Done {
		tst.Errorf("Animator should report Done once the script finishes, got %+v", out)
	}
	chk.IntAssert(script.calls, 5)
}
