// SPDX-License-Identifier: MIT
// Package: distcolor/builder
//
// errors.go — sentinel errors shared by all topology constructors.

package builder

import "errors"

// ErrTooFewVertices indicates the requested vertex count is below the
// minimum for the constructor. Callers branch with errors.Is.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrUnknownTopology indicates Build received a name with no registered
// constructor.
var ErrUnknownTopology = errors.New("builder: unknown topology")
