// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Immutable-after-construction topology: vertices, mirrored arcs, Δ.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrBadOrder indicates a non-positive vertex count.
	ErrBadOrder = errors.New("core: graph order must be positive")

	// ErrVertexRange indicates a vertex identity outside [0, order).
	ErrVertexRange = errors.New("core: vertex identity out of range")

	// ErrSelfLoop indicates an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates the undirected edge is already present.
	ErrDuplicateEdge = errors.New("core: edge already present")
)

// Arc is one directed edge From → To. Every undirected edge of the
// network is stored as two mirrored arcs so both endpoints deliver
// their coloring to each other during a round's deliver phase.
type Arc struct {
	From, To int
}

// Graph is a fixed set of integer-identity vertices plus a set of
// mirrored directed arcs. It is built once by a topology constructor
// and treated as immutable for the duration of a run; Δ (the maximum
// out-degree) is maintained as edges are added and never recomputed.
type Graph struct {
	order int
	out   [][]int // out-neighbor identities per vertex
	arcs  []Arc   // mirrored arcs in insertion order
	delta int     // max out-degree
}

// NewGraph creates a graph with vertices 0..order-1 and no edges.
// Returns ErrBadOrder if order < 1.
func NewGraph(order int) (*Graph, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewGraph: order=%d: %w", order, ErrBadOrder)
	}

	return &Graph{
		order: order,
		out:   make([][]int, order),
	}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.order }

// Delta returns the maximum out-degree seen so far. After construction
// this is the Δ of the network, which fixes the minimum safe palette
// size Δ+1 for the randomized policy.
func (g *Graph) Delta() int { return g.delta }

// EdgeCount returns the number of undirected edges (arc pairs).
func (g *Graph) EdgeCount() int { return len(g.arcs) / 2 }

// AddEdge inserts the undirected edge {u, v} as the two arcs u→v and
// v→u. Self-loops and duplicate edges are rejected; both would break
// the coloring invariants (a vertex must never contest its own color).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.out[u] = append(g.out[u], v)
	g.out[v] = append(g.out[v], u)
	g.arcs = append(g.arcs, Arc{From: u, To: v}, Arc{From: v, To: u})

	if d := len(g.out[u]); d > g.delta {
		g.delta = d
	}
	if d := len(g.out[v]); d > g.delta {
		g.delta = d
	}

	return nil
}

// HasEdge reports whether the undirected edge {u, v} is present.
// Out-degrees are bounded by Δ, so the linear scan stays cheap.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.order {
		return false
	}
	for _, w := range g.out[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Arcs returns a copy of all directed arcs in insertion order. The
// deliver phase iterates this slice; copying keeps the graph immutable
// from the caller's point of view.
func (g *Graph) Arcs() []Arc {
	arcs := make([]Arc, len(g.arcs))
	copy(arcs, g.arcs)

	return arcs
}

// Degree returns the out-degree of vertex v.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.order {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexRange)
	}

	return len(g.out[v]), nil
}

// Neighbors returns a copy of v's out-neighbor identities.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.order {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexRange)
	}
	nbrs := make([]int, len(g.out[v]))
	copy(nbrs, g.out[v])

	return nbrs, nil
}
