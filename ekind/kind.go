// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ekind holds the vocabulary of recoverable error kinds that the
// Crucible can report to a host over the Radio. Index violations and
// non-finite positions are NOT part of this vocabulary; those are
// programmer errors and abort via chk.Panic instead of returning an error.
package ekind

import "fmt"

// Kind tags a recoverable failure reported by the engine.
type Kind int

const (
	// UnstableStructure means |strain| exceeded the configured bound
	// during the interval pass of a Fabric sub-step.
	UnstableStructure Kind = iota

	// OvenDidNotSettle means the Oven exceeded its maximum bake duration
	// without max joint speed falling below the settle threshold.
	OvenDidNotSettle

	// OvenBadStrain means a baked brick's face pull intervals settled
	// outside the reference strain tolerance.
	OvenBadStrain

	// StageSequenceViolation means a transition was requested that the
	// Crucible's state machine does not permit from the current stage.
	StageSequenceViolation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case UnstableStructure:
		return "UnstableStructure"
	case OvenDidNotSettle:
		return "OvenDidNotSettle"
	case OvenBadStrain:
		return "OvenBadStrain"
	case StageSequenceViolation:
		return "StageSequenceViolation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a recoverable engine failure carrying a Kind and a formatted
// message. It implements the error interface.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
