// Package simulate drives synchronous message-passing rounds over a
// core.Graph until the active coloring policy reports convergence.
//
// Each round has two strictly ordered phases. The deliver phase copies
// every node's current coloring along every directed arc into the
// receiving node's inbox; it completes for all arcs before any
// compute-phase update begins. The compute phase then invokes the
// policy once per non-permanent node with that node's inbox, clearing
// the inbox regardless of outcome. An update only reads its own node's
// inbox — a snapshot of the previous round's colors — so the process is
// synchronous rather than a data race, and nodes may be computed in any
// order without changing results.
package simulate

import (
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

// runner encapsulates one run's fixed inputs and resolved options.
type runner struct {
	arcs   []core.Arc
	nodes  []*core.Node
	policy Policy
	opts   Options
}

// Run executes rounds over g with the given policy until the policy
// reports convergence, returning the terminal node collection and the
// round count. The node collection is exclusively owned by the
// simulator for the duration of the run.
//
// Returns ErrGraphNil, ErrNoNodes, ErrPolicyNil, ErrNodeCountMismatch,
// or ErrNodeIdentity for invalid input, ErrOptionViolation for bad
// options, ErrNotConverged when the round guard trips, the context's
// error on cancellation, or any policy error (wrapped with the node
// identity it occurred at).
func Run(g *core.Graph, nodes []*core.Node, p Policy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	if p == nil {
		return nil, ErrPolicyNil
	}
	if len(nodes) != g.Order() {
		return nil, fmt.Errorf("%w: %d nodes for order %d", ErrNodeCountMismatch, len(nodes), g.Order())
	}
	for i, n := range nodes {
		if n == nil || n.ID != i {
			return nil, fmt.Errorf("%w: index %d", ErrNodeIdentity, i)
		}
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := p.Init(nodes); err != nil {
		return nil, fmt.Errorf("simulate: policy init: %w", err)
	}

	r := &runner{arcs: g.Arcs(), nodes: nodes, policy: p, opts: o}

	return r.loop()
}

// loop advances rounds until convergence, guard, or cancellation.
// The round counter is threaded explicitly: it is not ambient state.
func (r *runner) loop() (*Result, error) {
	for round := 1; ; round++ {
		if round > r.opts.MaxRounds {
			return nil, fmt.Errorf("%w: %d rounds", ErrNotConverged, r.opts.MaxRounds)
		}
		// Cancellation check (once per round; a round is atomic).
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		r.deliver()
		if err := r.compute(); err != nil {
			return nil, err
		}

		if r.opts.Logger != nil {
			r.opts.Logger.Infof("round %d: %d candidates remain", round, CandidateCount(r.nodes))
		}
		r.opts.OnRound(round, r.nodes)
		if r.policy.Converged(r.nodes, round) {
			return &Result{Rounds: round, Nodes: r.nodes}, nil
		}
	}
}

// deliver copies each sender's current coloring along every arc into
// the receiver's inbox. Pure snapshot-and-copy: no sender side effects.
func (r *runner) deliver() {
	for _, a := range r.arcs {
		r.nodes[a.To].Deliver(core.Message{
			From:     a.From,
			Coloring: r.nodes[a.From].Coloring,
		})
	}
}

// compute applies the policy to every non-permanent node using the
// inbox built by deliver, then clears the inbox regardless of outcome.
// Permanent colorings are absorbing: those nodes are skipped entirely,
// their stale inbox discarded.
func (r *runner) compute() error {
	for _, n := range r.nodes {
		if n.Coloring.IsPermanent() {
			n.ClearInbox()
			continue
		}

		next, err := r.policy.Update(n, n.Inbox())
		n.ClearInbox()
		if err != nil {
			return fmt.Errorf("simulate: update of node %d: %w", n.ID, err)
		}
		n.Coloring = next
	}

	return nil
}
