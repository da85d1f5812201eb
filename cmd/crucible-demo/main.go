// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command crucible-demo drives a Crucible through Building, Shaping,
// Pretensing and Viewing at a fixed nominal frame rate, printing telemetry
// as it goes. It owns the only wall-clock-adjacent piece of this module:
// translating a fixed FPS into the nominal sub-steps the Crucible expects.
package main

import (
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/elastic-interval/tensegrity-lab/crucible"
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// fps is the fixed nominal frame rate this demo host drives the Crucible
// at; sub_steps = round(target_time_scale * 20_000 / fps).
const fps = 60.0

// ticks is how many Crucible.Iterate calls the demo runs before giving up
// on reaching Viewing, a safety bound for a host that never renders.
const ticks = 20000

// logRadio prints every published Event with gosl/io's coloured helpers.
type logRadio struct{}

func (logRadio) Publish(e crucible.Event) {
	switch e.Kind {
	case crucible.StageEntered:
		io.PfWhite("stage -> %v\n", e.Stage)
	case crucible.FabricBuilt:
		io.Pf("fabric built, entering Pretensing\n")
	case crucible.DisableConvergence:
		io.Pf("convergence disabled, entering Viewing\n")
	case crucible.UpdateTime:
		io.Pf("fps=%.1f time_scale=%.2f\n", e.FPS, e.TimeScale)
	case crucible.Error:
		io.PfRed("ERROR [%v]: %v\n", e.ErrorKind, e.Message)
	}
}

// riserScript grows a simple vertical strut by appending push intervals one
// at a time, standing in for the external brick-attachment build phase,
// which this demo needs only a minimal stand-in for.
type riserScript struct {
	segments int
	built    int
}

func (s *riserScript) Step(f *fabric.Fabric) bool {
	if s.built >= s.segments {
		return true
	}
	top := len(f.Joints) - 1
	p := f.Joints[top].Position
	next := f.AddJoint([]float64{p[0], p[1] + 1.1, p[2]})
	f.AddInterval(top, next, fabric.Push, 1.0, 1.0)
	s.built++
	return s.built >= s.segments
}

func buildSeedFabric() (*fabric.Fabric, []int) {
	f := fabric.New(1)
	f.AddJoint([]float64{0, 0, 0})
	f.AddJoint([]float64{0.9, 0.3, 0})
	pull := f.AddInterval(0, 1, fabric.Pull, 1.0, 0.5)
	return f, []int{pull}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	segments := flag.Int("segments", 4, "number of riser segments the build script appends")
	flag.Parse()

	io.PfWhite("\ntensegrity-lab crucible-demo\n\n")
	io.Pf("Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	f, pullIntervals := buildSeedFabric()
	cfg := crucible.Config{
		PullIntervals:              pullIntervals,
		TargetAltitude:             0,
		RampSteps:                  2000,
		PretenstDuration:           1.0,
		ShapingConvergeDuration:    1.0,
		PretensingConvergeDuration: 1.0,
		FallSurface:                profile.Bouncy,
		FallDuration:               2.0,
		SettleMinDrag:              0.2,
		SettleDuration:             2.0,
	}

	radio := logRadio{}
	c := crucible.New(f, nil, radio, &riserScript{segments: *segments}, cfg)

	for i := 0; i < ticks && c.CurrentStage() != crucible.Viewing; i++ {
		timeScale := float64(c.TargetTimeScale())
		subSteps := uint32(math.Round(timeScale * 20000 / fps))
		c.Iterate(subSteps)
		if i%60 == 0 {
			radio.Publish(crucible.Event{Kind: crucible.UpdateTime, FPS: fps, TimeScale: timeScale})
		}
	}

	if c.CurrentStage() != crucible.Viewing {
		chk.Panic("crucible-demo: did not reach Viewing within %d ticks", ticks)
	}

	io.Pf("\nsettled: %d joints, %d intervals, age=%d sub-steps\n",
		len(f.Joints), len(f.Intervals), f.Age)
}
