// SPDX-License-Identifier: MIT
// Package: distcolor/builder
//
// complete.go — Complete(n) topology constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices 0..n-1; every unordered pair {i,j}, i<j, emitted exactly
//     once in lexicographic order (core mirrors each edge into two arcs).
//   - Δ = n−1 by construction.
//
// Complexity: O(n²) edges, O(n) nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete graph K_n and its node collection.
// In K_n every vertex neighbors every other, so a terminal (Δ+1)-coloring
// is necessarily a bijection onto the palette — the self-check relies
// on exactly that.
func Complete(n int) (*core.Graph, []*core.Node, error) {
	if n < minCompleteNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	// Emit each unordered pair once, in stable (i,j) order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, core.NewNodes(n), nil
}
