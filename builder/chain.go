// SPDX-License-Identifier: MIT
// Package: distcolor/builder
//
// chain.go — Chain(n) topology constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices 0..n-1; edges (i−1)—i for i=1..n−1 in increasing order.
//   - Δ = min(n−1, 2): interior vertices have two neighbors.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain builds the simple path 0—1—…—(n−1) and its node collection.
func Chain(n int) (*core.Graph, []*core.Node, error) {
	if n < minChainNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodChain, err)
	}

	for i := 1; i < n; i++ {
		if err = g.AddEdge(i-1, i); err != nil {
			return nil, nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodChain, i-1, i, err)
		}
	}

	return g, core.NewNodes(n), nil
}
