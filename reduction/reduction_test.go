package reduction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/distcolor/builder"
	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/reduction"
	"github.com/katalvlaran/distcolor/simulate"
)

// ReductionSuite exercises the randomized policy under the canonical
// topologies and misconfigurations.
type ReductionSuite struct {
	suite.Suite
}

// requireProper asserts no two adjacent nodes share a final color.
func (s *ReductionSuite) requireProper(g *core.Graph, nodes []*core.Node) {
	for _, a := range g.Arcs() {
		if a.From < a.To {
			require.NotEqual(s.T(),
				nodes[a.From].Coloring.Color(), nodes[a.To].Coloring.Color(),
				"nodes %d and %d collide", a.From, a.To)
		}
	}
}

// TestCompleteGraphBijection runs K5 with palette size 5: the terminal
// coloring must be a bijection onto {0..4}.
func (s *ReductionSuite) TestCompleteGraphBijection() {
	g, nodes, err := builder.Complete(5)
	require.NoError(s.T(), err)

	p, err := reduction.New(g.Delta(), reduction.WithSeed(42))
	require.NoError(s.T(), err)

	res, err := simulate.Run(g, nodes, p)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), res.Rounds, 1)

	used := make(map[core.Color]bool, 5)
	for _, n := range nodes {
		require.True(s.T(), n.Coloring.IsPermanent(), "node %d still tentative", n.ID)
		c := n.Coloring.Color()
		require.GreaterOrEqual(s.T(), int(c), 0)
		require.LessOrEqual(s.T(), int(c), 4)
		require.False(s.T(), used[c], "color %d used twice", c)
		used[c] = true
	}
	require.Len(s.T(), used, 5)
}

// TestChainColoring runs a 4-vertex chain with Δ=2: adjacent colors
// differ and at most three distinct colors appear.
func (s *ReductionSuite) TestChainColoring() {
	g, nodes, err := builder.Chain(4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, g.Delta())

	p, err := reduction.New(g.Delta(), reduction.WithSeed(7))
	require.NoError(s.T(), err)

	_, err = simulate.Run(g, nodes, p)
	require.NoError(s.T(), err)

	s.requireProper(g, nodes)
	distinct := make(map[core.Color]bool)
	for _, n := range nodes {
		require.True(s.T(), n.Coloring.IsPermanent())
		distinct[n.Coloring.Color()] = true
	}
	require.LessOrEqual(s.T(), len(distinct), 3)
}

// TestHydrocarbonColoring colors the 7-vertex skeleton and checks every
// adjacency constraint.
func (s *ReductionSuite) TestHydrocarbonColoring() {
	g, nodes, err := builder.Hydrocarbon(7)
	require.NoError(s.T(), err)

	p, err := reduction.New(g.Delta(), reduction.WithSeed(3))
	require.NoError(s.T(), err)

	_, err = simulate.Run(g, nodes, p)
	require.NoError(s.T(), err)
	s.requireProper(g, nodes)
}

// TestPaletteBoundAndProgress observes every round of a K6 run: colors
// stay inside [0, Δ], the Candidate count never increases, and no
// permanent node ever reverts.
func (s *ReductionSuite) TestPaletteBoundAndProgress() {
	g, nodes, err := builder.Complete(6)
	require.NoError(s.T(), err)
	delta := g.Delta()

	p, err := reduction.New(delta, reduction.WithSeed(11))
	require.NoError(s.T(), err)

	prevCandidates := len(nodes)
	fixed := make(map[int]core.Color)
	_, err = simulate.Run(g, nodes, p, simulate.WithOnRound(func(round int, ns []*core.Node) {
		candidates := simulate.CandidateCount(ns)
		require.LessOrEqual(s.T(), candidates, prevCandidates,
			"round %d: candidate count increased", round)
		prevCandidates = candidates

		for _, n := range ns {
			c := n.Coloring.Color()
			require.GreaterOrEqual(s.T(), int(c), 0, "round %d: node %d below palette", round, n.ID)
			require.LessOrEqual(s.T(), int(c), delta, "round %d: node %d beyond palette", round, n.ID)

			if was, ok := fixed[n.ID]; ok {
				require.True(s.T(), n.Coloring.IsPermanent(), "round %d: node %d reverted", round, n.ID)
				require.Equal(s.T(), was, c, "round %d: node %d changed a permanent color", round, n.ID)
			} else if n.Coloring.IsPermanent() {
				fixed[n.ID] = c
			}
		}
	}))
	require.NoError(s.T(), err)
}

// TestConvergenceIdempotent re-runs a converged collection: one more
// round observes only permanent nodes and changes nothing.
func (s *ReductionSuite) TestConvergenceIdempotent() {
	g, nodes, err := builder.Complete(5)
	require.NoError(s.T(), err)

	p, err := reduction.New(g.Delta(), reduction.WithSeed(42))
	require.NoError(s.T(), err)

	_, err = simulate.Run(g, nodes, p)
	require.NoError(s.T(), err)

	before := make([]core.Coloring, len(nodes))
	for i, n := range nodes {
		before[i] = n.Coloring
	}

	res, err := simulate.Run(g, nodes, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Rounds, "converged state must terminate in a single check round")
	for i, n := range nodes {
		require.Equal(s.T(), before[i], n.Coloring, "node %d changed after convergence", i)
	}
}

// TestDeterministicSeed pins reproducibility: two fresh runs with the
// same seed produce identical terminal colorings.
func (s *ReductionSuite) TestDeterministicSeed() {
	run := func() []core.Coloring {
		g, nodes, err := builder.Hydrocarbon(10)
		require.NoError(s.T(), err)
		p, err := reduction.New(g.Delta(), reduction.WithSeed(99))
		require.NoError(s.T(), err)
		_, err = simulate.Run(g, nodes, p)
		require.NoError(s.T(), err)

		out := make([]core.Coloring, len(nodes))
		for i, n := range nodes {
			out[i] = n.Coloring
		}
		return out
	}

	require.Equal(s.T(), run(), run())
}

// TestTinyPaletteFails injects a palette smaller than Δ+1 into a K5 run
// and expects a surfaced error — never an endless loop.
func (s *ReductionSuite) TestTinyPaletteFails() {
	g, nodes, err := builder.Complete(5)
	require.NoError(s.T(), err)

	p, err := reduction.New(g.Delta(), reduction.WithSeed(1), reduction.WithPaletteSize(3))
	require.NoError(s.T(), err)

	_, err = simulate.Run(g, nodes, p, simulate.WithMaxRounds(200))
	require.Error(s.T(), err)
	require.True(s.T(),
		errors.Is(err, reduction.ErrPaletteExhausted) || errors.Is(err, simulate.ErrNotConverged),
		"want a configuration/guard error, got %v", err)
}

// TestUpdatePaletteExhausted hits the exhaustion path directly: three
// permanent neighbors cover a 3-color palette completely.
func (s *ReductionSuite) TestUpdatePaletteExhausted() {
	p, err := reduction.New(3, reduction.WithPaletteSize(3))
	require.NoError(s.T(), err)

	n := core.NewNode(0)
	n.Coloring = core.Candidate(1)
	inbox := []core.Message{
		{From: 1, Coloring: core.Permanent(0)},
		{From: 2, Coloring: core.Permanent(1)},
		{From: 3, Coloring: core.Permanent(2)},
	}

	_, err = p.Update(n, inbox)
	require.ErrorIs(s.T(), err, reduction.ErrPaletteExhausted)
}

// TestNewValidation covers constructor and option errors.
func (s *ReductionSuite) TestNewValidation() {
	_, err := reduction.New(-1)
	require.ErrorIs(s.T(), err, reduction.ErrBadDelta)

	_, err = reduction.New(2, reduction.WithPaletteSize(-4))
	require.ErrorIs(s.T(), err, reduction.ErrOptionViolation)

	_, err = reduction.New(2, reduction.WithMaxRounds(0))
	require.ErrorIs(s.T(), err, reduction.ErrOptionViolation)
}

// TestColorRunner drives the one-call entry point: the terminal
// coloring is proper and matches a manually wired New + Run with the
// same seed.
func (s *ReductionSuite) TestColorRunner() {
	g, nodes, err := builder.Hydrocarbon(10)
	require.NoError(s.T(), err)

	res, err := reduction.Color(g, nodes, g.Delta(), reduction.WithSeed(99))
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), res.Rounds, 1)
	require.Equal(s.T(), 0, simulate.CandidateCount(res.Nodes))
	s.requireProper(g, nodes)

	g2, nodes2, err := builder.Hydrocarbon(10)
	require.NoError(s.T(), err)
	p, err := reduction.New(g2.Delta(), reduction.WithSeed(99))
	require.NoError(s.T(), err)
	_, err = simulate.Run(g2, nodes2, p)
	require.NoError(s.T(), err)

	for i := range nodes {
		require.Equal(s.T(), nodes2[i].Coloring, nodes[i].Coloring,
			"node %d diverged from the manual wiring", i)
	}
}

// TestColorHonorsRoundGuard pins that WithMaxRounds reaches the runner:
// a tiny palette on K5 must fail within the configured bound.
func (s *ReductionSuite) TestColorHonorsRoundGuard() {
	g, nodes, err := builder.Complete(5)
	require.NoError(s.T(), err)

	_, err = reduction.Color(g, nodes, g.Delta(),
		reduction.WithSeed(1),
		reduction.WithPaletteSize(3),
		reduction.WithMaxRounds(200),
	)
	require.Error(s.T(), err)
	require.True(s.T(),
		errors.Is(err, reduction.ErrPaletteExhausted) || errors.Is(err, simulate.ErrNotConverged),
		"want a configuration/guard error, got %v", err)
}

// TestGoPermanentWhenUncontested pins the commit rule: an inbox where
// nobody holds the node's color fixes the node immediately.
func (s *ReductionSuite) TestGoPermanentWhenUncontested() {
	p, err := reduction.New(2)
	require.NoError(s.T(), err)

	n := core.NewNode(0)
	n.Coloring = core.Candidate(2)
	inbox := []core.Message{
		{From: 1, Coloring: core.Candidate(0)},
		{From: 2, Coloring: core.Permanent(1)},
	}

	next, err := p.Update(n, inbox)
	require.NoError(s.T(), err)
	require.Equal(s.T(), core.Permanent(2), next)
}

func TestReductionSuite(t *testing.T) {
	suite.Run(t, new(ReductionSuite))
}
