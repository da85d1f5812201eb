// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crucible

import "github.com/elastic-interval/tensegrity-lab/ekind"

// EventKind tags an Event with which of Radio's broadcast shapes it carries.
type EventKind int

const (
	// StageEntered reports a stage label change; Event.Stage is set.
	StageEntered EventKind = iota
	// FabricBuilt reports that Shaping completed and Pretensing has begun.
	FabricBuilt
	// UpdateTime carries per-frame telemetry; Event.FPS/Event.TimeScale set.
	UpdateTime
	// Error reports a recoverable failure; Event.ErrorKind/Event.Message set.
	Error
	// DisableConvergence is emitted when a Converger completes on the leg
	// that exits to Viewing.
	DisableConvergence
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case StageEntered:
		return "StageEntered"
	case FabricBuilt:
		return "FabricBuilt"
	case UpdateTime:
		return "UpdateTime"
	case Error:
		return "Error"
	case DisableConvergence:
		return "DisableConvergence"
	default:
		return "EventKind(?)"
	}
}

// Event is one broadcast record pushed onto a Radio. Only the fields
// relevant to Kind are meaningful.
type Event struct {
	Kind EventKind

	Stage Stage // StageEntered

	FPS       float64 // UpdateTime
	TimeScale float64 // UpdateTime

	ErrorKind ekind.Kind // Error
	Message   string     // Error
}

// Radio is a broadcast event sink the Crucible pushes into synchronously
// inside Iterate; it is owned by the host and never expects a response,
// written but never read back inside the core.
type Radio interface {
	Publish(Event)
}
