// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crucible

import (
	"github.com/elastic-interval/tensegrity-lab/brick"
	"github.com/elastic-interval/tensegrity-lab/ekind"
	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
	"github.com/elastic-interval/tensegrity-lab/stage"
)

// Config bundles the tunable durations and parameters each stage
// controller needs; it is supplied once, at Crucible construction, and
// reused every time its stage is (re-)entered.
type Config struct {
	// PullIntervals are the ids of the pull intervals Pretenser
	// pretensions; TargetAltitude and RampSteps feed Pretenser directly.
	PullIntervals  []int
	TargetAltitude float64
	RampSteps      int

	PretenstDuration           float64 // Pretenser's final-hold duration
	ShapingConvergeDuration    float64 // Shaping's Converger duration
	PretensingConvergeDuration float64 // Pretensing's tail Converger duration

	FallSurface  profile.Surface
	FallDuration float64

	SettleMinDrag  float64
	SettleDuration float64
}

// Crucible owns a Fabric, the active PhysicsProfile, a BrickLibrary, a
// Radio, and the current stage with its controller; it is the sole
// mutation entry point over the whole engine.
type Crucible struct {
	Fabric  *fabric.Fabric
	Library brick.Library
	Radio   Radio

	cfg     Config
	profile profile.Profile
	st      Stage
	ctrl    stage.Controller
	phase   int // sub-phase within Pretensing (Pretenser=0, Converger=1) or PhysicsTesting (Faller=0, Settler=1)
}

// New constructs a Crucible in the Building stage, driving script via an
// Animator over f.
func New(f *fabric.Fabric, lib brick.Library, radio Radio, script stage.AnimationScript, cfg Config) *Crucible {
	c := &Crucible{Fabric: f, Library: lib, Radio: radio, cfg: cfg}
	c.enter(Initialization, nil)
	c.enter(Building, stage.NewAnimator(f, script))
	return c
}

// CurrentStage returns the Crucible's current lifecycle stage.
func (c *Crucible) CurrentStage() Stage {
	return c.st
}

// TargetTimeScale returns the nominal simulated-seconds-per-wall-second
// multiplier the host should drive the current stage at.
func (c *Crucible) TargetTimeScale() float32 {
	return float32(c.profile.TimeScale)
}

// Iterate is the Crucible's only mutation entry point: it delegates
// subSteps to the active stage controller, transitioning on Done or
// Failed.
func (c *Crucible) Iterate(subSteps uint32) {
	if c.ctrl == nil {
		return // Viewing: frozen, iteration is a no-op
	}
	out := c.ctrl.Iterate(int(subSteps))
	switch {
	case out.Failed:
		c.fail(out.Kind, out.Detail)
	case out.Done:
		c.advance()
	}
}

// EnterPhysicsTesting transitions Viewing → PhysicsTesting; it reports
// StageSequenceViolation if the Crucible is not currently in Viewing.
func (c *Crucible) EnterPhysicsTesting() error {
	if c.st != Viewing {
		return c.sequenceViolation("EnterPhysicsTesting", PhysicsTesting)
	}
	c.phase = 0
	c.enter(PhysicsTesting, stage.NewFaller(c.Fabric, c.cfg.FallSurface, c.cfg.FallDuration))
	return nil
}

// Reload transitions Viewing → Building, replacing the Fabric with f and
// driving script from scratch; the Fabric is created fresh for each new
// design.
func (c *Crucible) Reload(f *fabric.Fabric, script stage.AnimationScript) error {
	if c.st != Viewing {
		return c.sequenceViolation("Reload", Building)
	}
	c.Fabric = f
	c.enter(Building, stage.NewAnimator(f, script))
	return nil
}

// advance reacts to the active controller reporting Done.
func (c *Crucible) advance() {
	switch c.st {

	case Building:
		c.enter(Shaping, stage.NewConverger(c.Fabric, profile.Pretensing, c.cfg.ShapingConvergeDuration, nil))

	case Shaping:
		c.Radio.Publish(Event{Kind: FabricBuilt})
		c.enter(Pretensing, stage.NewPretenser(c.Fabric, c.cfg.PullIntervals, c.cfg.TargetAltitude, c.cfg.RampSteps, c.cfg.PretenstDuration))

	case Pretensing:
		if c.phase == 0 {
			c.phase = 1
			c.profile = profile.Pretensing
			c.ctrl = stage.NewConverger(c.Fabric, profile.Pretensing, c.cfg.PretensingConvergeDuration, func() {
				c.Radio.Publish(Event{Kind: DisableConvergence})
			})
			return
		}
		c.enter(Viewing, nil)

	case PhysicsTesting:
		if c.phase == 0 {
			c.phase = 1
			c.profile = profile.PhysicsTest(c.cfg.FallSurface)
			c.ctrl = stage.NewSettler(c.Fabric, c.cfg.FallSurface, c.cfg.SettleMinDrag, c.cfg.SettleDuration)
			return
		}
		c.enter(Viewing, nil)
	}
}

// enter transitions into newStage with the given controller (nil for
// Viewing, which is frozen), swapping the active profile and emitting a
// StageEntered event.
func (c *Crucible) enter(newStage Stage, ctrl stage.Controller) {
	c.st = newStage
	c.ctrl = ctrl
	switch newStage {
	case Building:
		c.profile = profile.Construction
	case Shaping:
		c.profile = profile.Pretensing
	case Pretensing:
		c.profile = profile.Pretensing
		c.phase = 0
	case Viewing:
		c.profile = profile.Viewing
	case PhysicsTesting:
		c.profile = profile.PhysicsTest(c.cfg.FallSurface)
		c.phase = 0
	}
	c.Radio.Publish(Event{Kind: StageEntered, Stage: newStage})
}

// fail transitions to Viewing on a Failed outcome and emits an Error event
// with the Fabric preserved in its current state for inspection.
func (c *Crucible) fail(kind ekind.Kind, message string) {
	c.Radio.Publish(Event{Kind: Error, ErrorKind: kind, Message: message})
	c.enter(Viewing, nil)
}

// sequenceViolation reports a StageSequenceViolation both as an Error event
// and as a returned error the caller can inspect directly.
func (c *Crucible) sequenceViolation(requested string, target Stage) error {
	e := ekind.New(ekind.StageSequenceViolation,
		"cannot %s: Crucible is in %v, not Viewing", requested, c.st)
	c.Radio.Publish(Event{Kind: Error, ErrorKind: e.Kind, Message: e.Message})
	return e
}
