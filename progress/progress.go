// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress holds the simulated-time countdown stage controllers use
// to decide when they have finished their stage.
package progress

// Progress is a scalar countdown measured in simulated seconds. Remaining
// never goes negative: Decrement saturates at zero.
type Progress struct {
	remaining float64
}

// Start sets the countdown to the given number of simulated seconds.
// Negative durations are clamped to zero.
func (p *Progress) Start(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	p.remaining = seconds
}

// Decrement subtracts delta (simulated seconds elapsed) from the countdown,
// saturating at zero.
func (p *Progress) Decrement(delta float64) {
	p.remaining -= delta
	if p.remaining < 0 {
		p.remaining = 0
	}
}

// IsBusy reports whether the countdown has not yet reached zero.
func (p *Progress) IsBusy() bool {
	return p.remaining > 0
}

// Remaining returns the seconds left on the countdown.
func (p *Progress) Remaining() float64 {
	return p.remaining
}
