// Package halving implements the deterministic halving / tie-break
// coloring policy: starting from one color per vertex identity
// (ceil-halved), vertices repeatedly resolve same-color conflicts until
// every color in use fits the target range of size Δ+2, i.e. max color
// ≤ Δ+1.
//
// Tie-break by identity
//
//	When a vertex's color collides with a neighbor's, only the
//	maximum-identity party among everyone sharing that exact color
//	recolors itself — to the smallest non-negative integer absent from
//	its full neighbor-color snapshot (first-fit). Everyone else keeps
//	the color. Since every party applies the same rule to the same
//	snapshot, exactly one vertex moves and the conflict cannot merely
//	hop around the neighborhood.
//
// Termination
//
//	Convergence means a full round with no conflict anywhere and every
//	color ≤ Δ+1. Topologies whose conflict-free initial colors already
//	exceed the target (e.g. long chains) can never reach it; the
//	simulator's round guard surfaces ErrNotConverged instead of
//	looping, and the caller decides what to do.
//
// Unlike the randomized policy, every vertex participates every round;
// colorings stay Candidate throughout — there is no Permanent gate.
package halving

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/simulate"
)

// Sentinel errors for the deterministic policy.
var (
	// ErrBadDelta indicates a negative maximum degree.
	ErrBadDelta = errors.New("halving: delta must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("halving: invalid option supplied")
)

// Option configures the policy via functional arguments.
type Option func(*Options)

// Options holds the policy's tunable parameters.
type Options struct {
	// MaxRounds bounds the convenience Reduce runner. Chains and other
	// topologies whose conflict-free colors sit above the target never
	// converge, so the guard is load-bearing here.
	MaxRounds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the simulator's default round guard.
func DefaultOptions() Options {
	return Options{MaxRounds: simulate.DefaultMaxRounds}
}

// WithMaxRounds bounds the Reduce runner. r must be positive.
func WithMaxRounds(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxRounds = r
	}
}

// Policy is the deterministic halving/tie-break policy. Construct it
// with New and hand it to simulate.Run; it implements simulate.Policy.
type Policy struct {
	target core.Color // largest admissible color: Δ+1

	roundConflicts int  // same-color sightings tallied by Update since the last boundary
	observedRound  int  // last round Converged snapshotted
	cleanRound     bool // the snapshotted round saw no conflict
}

// New returns a halving policy for a network of maximum degree delta,
// applying any number of functional Options.
func New(delta int, opts ...Option) (*Policy, error) {
	if delta < 0 {
		return nil, fmt.Errorf("New: delta=%d: %w", delta, ErrBadDelta)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Policy{target: core.Color(delta + 1)}, nil
}

// Reduce is the one-call entry point: construct the halving policy for
// delta and drive it over g until every color fits the target range.
// The round guard is taken from WithMaxRounds; a topology that cannot
// shrink into the target surfaces simulate.ErrNotConverged through it.
func Reduce(g *core.Graph, nodes []*core.Node, delta int, opts ...Option) (*simulate.Result, error) {
	p, err := New(delta, opts...)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return simulate.Run(g, nodes, p, simulate.WithMaxRounds(o.MaxRounds))
}

// Init ceil-halves every node's identity into its starting color,
// beginning the range reduction from [0, n) toward [0, Δ+1].
func (p *Policy) Init(nodes []*core.Node) error {
	for _, n := range nodes {
		n.Coloring = core.Candidate(core.Color((n.ID + 1) / 2))
	}
	p.roundConflicts = 0
	p.observedRound = 0
	p.cleanRound = false

	return nil
}

// Update applies one round of conflict resolution:
//
//  1. Collect neighbor colors from the inbox into a set.
//  2. Own color absent from the set ⇒ locally conflict-free, no change.
//  3. Otherwise the maximum identity among self and all neighbors
//     sharing this exact color is solely responsible for moving.
//  4. The responsible vertex recolors first-fit against the full
//     neighbor-color set; everyone else keeps their color.
func (p *Policy) Update(n *core.Node, inbox []core.Message) (core.Coloring, error) {
	seen := hashset.New()
	own := n.Coloring.Color()
	loser := n.ID // max identity among parties sharing own color

	for _, m := range inbox {
		c := m.Coloring.Color()
		seen.Add(c)
		if c == own && m.From > loser {
			loser = m.From
		}
	}

	if !seen.Contains(own) {
		// Empty neighborhoods land here too: color 0 from Init stands.
		return n.Coloring, nil
	}

	p.roundConflicts++
	if loser != n.ID {
		// A higher-identity neighbor owns the clash and will move.
		return n.Coloring, nil
	}

	return core.Candidate(firstFit(seen)), nil
}

// Converged reports convergence once a completed round saw no conflict
// anywhere and every color in use is within the halving target. The
// verdict for a round is snapshotted on first sight, so repeated checks
// against the same round stay consistent.
func (p *Policy) Converged(nodes []*core.Node, round int) bool {
	if round != p.observedRound {
		p.observedRound = round
		p.cleanRound = p.roundConflicts == 0
		p.roundConflicts = 0
	}
	if !p.cleanRound {
		return false
	}

	for _, n := range nodes {
		if n.Coloring.Color() > p.target {
			return false
		}
	}

	return true
}

// firstFit returns the smallest non-negative color absent from seen.
// The set holds at most Δ entries, so some value in [0, Δ] is free and
// the scan always terminates.
func firstFit(seen *hashset.Set) core.Color {
	for c := core.Color(0); ; c++ {
		if !seen.Contains(c) {
			return c
		}
	}
}
