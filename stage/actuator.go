// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"math"

	"github.com/elastic-interval/tensegrity-lab/fabric"
	"github.com/elastic-interval/tensegrity-lab/profile"
)

// WaveKind selects the shape of an Actuator's driving waveform.
type WaveKind int

const (
	// Sine drives the waveform through a full sine cycle each Period.
	Sine WaveKind = iota
	// Pulse drives a square wave high for DutyCycle of each Period.
	Pulse
)

// waveform is a periodic driving function: F(t) returns a value in
// [-1, 1] (Sine) or {-1, 1} (Pulse), phase-shifted by Phase radians.
// An Alpha set and an Omega set run in opposite phase by giving the two
// sets waveforms a half-cycle apart.
type waveform struct {
	Kind      WaveKind
	Period    float64
	Phase     float64
	DutyCycle float64 // Pulse only; fraction of Period spent high
}

// F evaluates the waveform at simulated time t.
func (w waveform) F(t float64) float64 {
	if w.Period <= 0 {
		return 0
	}
	angle := 2*math.Pi*t/w.Period + w.Phase
	switch w.Kind {
	case Pulse:
		frac := math.Mod(angle/(2*math.Pi), 1)
		if frac < 0 {
			frac++
		}
		if frac < w.DutyCycle {
			return 1
		}
		return -1
	default: // Sine
		return math.Sin(angle)
	}
}

// Actuator modulates the ideal lengths of designated intervals by a
// periodic waveform: an Alpha set oscillates in phase, an Omega set
// oscillates a half-cycle out of phase, so the two sets alternately
// lengthen and shorten.
type Actuator struct {
	Fabric  *fabric.Fabric
	Profile profile.Profile

	alphaIntervals []int
	omegaIntervals []int
	alphaBase      []float64
	omegaBase      []float64
	alphaWave      waveform
	omegaWave      waveform
	amplitude      float64

	elapsed float64
}

// NewActuator constructs an Actuator driving alphaIntervals and
// omegaIntervals in opposite phase, at the given period and amplitude
// (a fraction of each interval's own Ideal at construction time).
func NewActuator(f *fabric.Fabric, prof profile.Profile, kind WaveKind, period, dutyCycle, amplitude float64, alphaIntervals, omegaIntervals []int) *Actuator {
	a := &Actuator{
		Fabric:         f,
		Profile:        prof,
		alphaIntervals: alphaIntervals,
		omegaIntervals: omegaIntervals,
		amplitude:      amplitude,
		alphaWave:      waveform{Kind: kind, Period: period, DutyCycle: dutyCycle},
		omegaWave:      waveform{Kind: kind, Period: period, DutyCycle: dutyCycle, Phase: math.Pi},
	}
	a.alphaBase = make([]float64, len(alphaIntervals))
	for i, id := range alphaIntervals {
		a.alphaBase[i] = f.Intervals[id].Ideal
	}
	a.omegaBase = make([]float64, len(omegaIntervals))
	for i, id := range omegaIntervals {
		a.omegaBase[i] = f.Intervals[id].Ideal
	}
	return a
}

// Iterate implements Controller. Actuator never completes on its own: it
// reports Continue unless a Fabric sub-step fails.
func (a *Actuator) Iterate(nominalSubSteps int) Outcome {
	for s := 0; s < nominalSubSteps; s++ {
		for i, id := range a.alphaIntervals {
			a.Fabric.Intervals[id].Ideal = a.alphaBase[i] * (1 + a.amplitude*a.alphaWave.F(a.elapsed))
		}
		for i, id := range a.omegaIntervals {
			a.Fabric.Intervals[id].Ideal = a.omegaBase[i] * (1 + a.amplitude*a.omegaWave.F(a.elapsed))
		}
		if err := a.Fabric.Iterate(a.Profile, 1); err != nil {
			return FailureFromErr(err)
		}
		a.elapsed += fabric.Dt
	}
	return Continue
}
