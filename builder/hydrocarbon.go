// SPDX-License-Identifier: MIT
// Package: distcolor/builder
//
// hydrocarbon.go — Hydrocarbon(n) topology constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices are laid out in groups of three: each "carbon" at index
//     c ∈ {0, 3, 6, …} bonds its up-to-two "hydrogen" flanks c+1 and
//     c+2, then chains to the next carbon c+3. Trailing vertices that
//     don't fill a full group simply bond to the last carbon.
//   - The result is a tree: exactly n−1 edges, max degree ≤ 4 (a carbon
//     bonds two hydrogens and two carbons at most).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

const (
	methodHydrocarbon   = "Hydrocarbon"
	minHydrocarbonNodes = 1
	carbonStride        = 3 // carbon plus up to two hydrogens
)

// Hydrocarbon builds a branching tree shaped like a hydrocarbon
// skeleton and its node collection.
func Hydrocarbon(n int) (*core.Graph, []*core.Node, error) {
	if n < minHydrocarbonNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodHydrocarbon, n, minHydrocarbonNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodHydrocarbon, err)
	}

	bond := func(u, v int) error {
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodHydrocarbon, u, v, err)
		}
		return nil
	}

	for c := 0; c < n; c += carbonStride {
		// Hydrogen flanks, if present.
		for h := c + 1; h < c+carbonStride && h < n; h++ {
			if err = bond(c, h); err != nil {
				return nil, nil, err
			}
		}
		// Bond to the next carbon down the chain.
		if next := c + carbonStride; next < n {
			if err = bond(c, next); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, core.NewNodes(n), nil
}
