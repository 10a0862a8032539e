// Package selfcheck validates terminal colorings against the run
// invariants. A failed check is a logic defect, not a recoverable
// runtime condition: it carries the offending identities and colors so
// the caller can abort with diagnostic detail.
package selfcheck

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/distcolor/builder"
	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/halving"
	"github.com/katalvlaran/distcolor/reduction"
	"github.com/katalvlaran/distcolor/simulate"
)

// ErrInvariantViolation indicates the terminal coloring breaks a run
// invariant (adjacent duplicate, tentative leftover, duplicate
// permanent color in a complete graph).
var ErrInvariantViolation = errors.New("selfcheck: invariant violation")

// Proper verifies a proper coloring: for every edge, the endpoint
// colors differ. Works on any terminal collection regardless of policy.
func Proper(g *core.Graph, nodes []*core.Node) error {
	if g == nil || len(nodes) != g.Order() {
		return fmt.Errorf("%w: graph and nodes disagree", ErrInvariantViolation)
	}

	for _, a := range g.Arcs() {
		if a.From >= a.To {
			continue // mirrored arc; each edge checked once
		}
		cu := nodes[a.From].Coloring.Color()
		cv := nodes[a.To].Coloring.Color()
		if cu == cv {
			return fmt.Errorf("%w: adjacent nodes %d and %d share color %d",
				ErrInvariantViolation, a.From, a.To, cu)
		}
	}

	return nil
}

// CompleteGraph is the built-in self-test: run the randomized policy on
// K_n and verify the terminal coloring is a bijection onto {0..n−1} —
// in a complete graph every palette color may be used exactly once.
// Returns the terminal nodes and the round count for reporting.
func CompleteGraph(n int, seed int64, opts ...simulate.Option) ([]*core.Node, int, error) {
	g, nodes, err := builder.Complete(n)
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	p, err := reduction.New(g.Delta(), reduction.WithSeed(seed))
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	res, err := simulate.Run(g, nodes, p, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	used := make(map[core.Color]int, len(nodes)) // color → first holder
	for _, nd := range nodes {
		if !nd.Coloring.IsPermanent() {
			return nil, 0, fmt.Errorf("%w: node %d still tentative after convergence",
				ErrInvariantViolation, nd.ID)
		}
		c := nd.Coloring.Color()
		if first, dup := used[c]; dup {
			return nil, 0, fmt.Errorf("%w: nodes %d and %d both hold permanent color %d",
				ErrInvariantViolation, first, nd.ID, c)
		}
		used[c] = nd.ID
	}

	return nodes, res.Rounds, nil
}

// CompleteGraphHalving is the deterministic-policy self-test: run the
// halving policy on K_n and verify the terminal colors are pairwise
// distinct and within the halving target [0, Δ+1]. Unlike the
// randomized check there is no bijection claim: the n distinct colors
// land somewhere inside a range of n+1 values.
func CompleteGraphHalving(n int, opts ...simulate.Option) ([]*core.Node, int, error) {
	g, nodes, err := builder.Complete(n)
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	p, err := halving.New(g.Delta())
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	res, err := simulate.Run(g, nodes, p, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("selfcheck: %w", err)
	}

	target := core.Color(g.Delta() + 1)
	used := make(map[core.Color]int, len(nodes)) // color → first holder
	for _, nd := range nodes {
		c := nd.Coloring.Color()
		if c > target {
			return nil, 0, fmt.Errorf("%w: node %d holds color %d beyond target %d",
				ErrInvariantViolation, nd.ID, c, target)
		}
		if first, dup := used[c]; dup {
			return nil, 0, fmt.Errorf("%w: nodes %d and %d both hold color %d",
				ErrInvariantViolation, first, nd.ID, c)
		}
		used[c] = nd.ID
	}

	return nodes, res.Rounds, nil
}
