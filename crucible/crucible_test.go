// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crucible

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// collectingRadio records every published Event in order.
type collectingRadio struct {
	events []Event
}

func (r *collectingRadio) Publish(e Event) {
	r.events = append(r.events, e)
}

// oneShotScript reports done on its very first Step call.
type oneShotScript struct{}

func (oneShotScript) Step(f *fabric.Fabric) bool { return true }

func buildTwoJointFabric() (*fabric.Fabric, int) {
	f := fabric.New(1)
	f.AddJoint([]float64{0, 1, 0})
	f.AddJoint([]float64{1, 1, 0})
	iv := f.AddInterval(0, 1, fabric.Pull, 1.0, 1.0)
	return f, iv
}

func Test_crucible01(tst *testing.T) {

	chk.PrintTitle("crucible01: Building through Viewing emits StageEntered in order")

	f, iv := buildTwoJointFabric()
	radio := &collectingRadio{}
	cfg := Config{
		PullIntervals:              []int{iv},
		TargetAltitude:             0.5,
		RampSteps:                  50,
		PretenstDuration:           0.002,
		ShapingConvergeDuration:    0.002,
		PretensingConvergeDuration: 0.002,
		FallSurface:                profile.Bouncy,
		FallDuration:               0.01,
		SettleMinDrag:              0.2,
		SettleDuration:             0.01,
	}

	c := New(f, nil, radio, oneShotScript{}, cfg)

	for i := 0; i < 5000 && c.CurrentStage() != Viewing; i++ {
		c.Iterate(100)
	}
	if c.CurrentStage() != Viewing {
		tst.Fatalf("Crucible never reached Viewing")
	}

	var stagesSeen []Stage
	sawFabricBuilt, sawDisableConvergence := false, false
	for _, e := range radio.events {
		switch e.Kind {
		case StageEntered:
			stagesSeen = append(stagesSeen, e.Stage)
		case FabricBuilt:
			sawFabricBuilt = true
		case DisableConvergence:
			sawDisableConvergence = true
		case Error:
			tst.Fatalf("unexpected Error event: kind=%v message=%q", e.ErrorKind, e.Message)
		}
	}

	want := []Stage{Initialization, Building, Shaping, Pretensing, Viewing}
	if len(stagesSeen) != len(want) {
		tst.Fatalf("expected %d StageEntered events, got %d: %v", len(want), len(stagesSeen), stagesSeen)
	}
	for i, s := range want {
		if stagesSeen[i] != s {
			tst.Errorf("StageEntered[%d] = %v, want %v", i, stagesSeen[i], s)
		}
	}
	if !sawFabricBuilt {
		tst.Errorf("expected a FabricBuilt event when Shaping completed")
	}
	if !sawDisableConvergence {
		tst.Errorf("expected a DisableConvergence event when Pretensing's Converger completed")
	}
}

func Test_crucible02(tst *testing.T) {

	chk.PrintTitle("crucible02: EnterPhysicsTesting is rejected outside Viewing")

	f, iv := buildTwoJointFabric()
	radio := &collectingRadio{}
	cfg := Config{PullIntervals: []int{iv}, RampSteps: 10, PretenstDuration: 0.001,
		ShapingConvergeDuration: 0.001, PretensingConvergeDuration: 0.001,
		FallSurface: profile.Absent, FallDuration: 0.001, SettleMinDrag: 0.2, SettleDuration: 0.001}

	c := New(f, nil, radio, oneShotScript{}, cfg)

	if err := c.EnterPhysicsTesting(); err == nil {
		tst.Errorf("expected a StageSequenceViolation error while still in Building")
	}
}
