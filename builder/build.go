// SPDX-License-Identifier: MIT
// Package: distcolor/builder
//
// build.go — named-topology orchestrator.
//
// Contract:
//   - One orchestrator: Build(name, n). Resolves name against the
//     registered constructors and runs the match.
//   - Constructors are pure functions of the vertex count; same inputs
//     ⇒ identical graphs and node collections.
//   - Returns only sentinel errors (ErrUnknownTopology, or whatever the
//     constructor itself surfaces); never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

// Constructor is a topology recipe: a pure function of the vertex count
// returning the graph and its index-aligned node collection.
type Constructor func(n int) (*core.Graph, []*core.Node, error)

// constructors maps recognized topology names onto their recipes.
var constructors = map[string]Constructor{
	"complete":    Complete,
	"chain":       Chain,
	"hydrocarbon": Hydrocarbon,
}

// Build resolves name against the recognized topologies and constructs
// it with n vertices. Callers that already hold a Constructor should
// invoke it directly; Build exists for name-driven selection (CLI
// flags, config values).
func Build(name string, n int) (*core.Graph, []*core.Node, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, nil, fmt.Errorf("Build: %q: %w", name, ErrUnknownTopology)
	}

	return c(n)
}
