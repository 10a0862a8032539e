// Package simulate provides tunable options, the Policy capability, and
// error definitions for the round-based message simulator.
package simulate

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/distcolor/core"
)

// Sentinel errors for simulation runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("simulate: graph is nil")

	// ErrNoNodes is returned for a nil or empty node collection.
	ErrNoNodes = errors.New("simulate: node collection is empty")

	// ErrPolicyNil is returned if no coloring policy is supplied.
	ErrPolicyNil = errors.New("simulate: policy is nil")

	// ErrNodeCountMismatch is returned when the node collection does
	// not match the graph order.
	ErrNodeCountMismatch = errors.New("simulate: node count does not match graph order")

	// ErrNodeIdentity is returned when nodes[i].ID != i; the deliver
	// phase indexes nodes by identity and cannot tolerate misalignment.
	ErrNodeIdentity = errors.New("simulate: node identity does not match its index")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")

	// ErrNotConverged is returned when the round guard is exceeded
	// before the policy reports convergence. The engine never retries;
	// only the caller may restart a run with fresh randomness.
	ErrNotConverged = errors.New("simulate: round guard exceeded before convergence")
)

// DefaultMaxRounds bounds a run when WithMaxRounds is not supplied.
// The randomized policy has no intrinsic worst-case round bound, so the
// simulator refuses to loop forever on its behalf.
const DefaultMaxRounds = 1000

// Policy is the capability the simulator drives: one per-vertex update
// given that vertex's inbox, plus a convergence verdict. The simulator
// holds only this interface, never a concrete policy.
type Policy interface {
	// Init seeds node colorings before the first round.
	Init(nodes []*core.Node) error

	// Update consumes one node's inbox and returns the node's next
	// coloring state. It may read the receiving node's identity and
	// current coloring but must not mutate the node; the simulator
	// applies the returned state and clears the inbox itself.
	Update(node *core.Node, inbox []core.Message) (core.Coloring, error)

	// Converged reports whether the run is finished, given the node
	// collection and the 1-based count of completed rounds.
	Converged(nodes []*core.Node, round int) bool
}

// Logger receives one printf-style trace line per completed round.
// klog's Verbose value satisfies it, so a CLI can pass klog.V(1)
// directly; the library itself stays silent without one.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Option configures a run via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks customizing a run.
type Options struct {
	// Ctx allows cancellation between rounds. A round is atomic from
	// the outside: cancellation is only observed at round boundaries.
	Ctx context.Context

	// MaxRounds guards against non-convergence; exceeding it surfaces
	// ErrNotConverged instead of looping forever.
	MaxRounds int

	// OnRound is called after each completed round with the round
	// number and the node collection, before the convergence check.
	OnRound func(round int, nodes []*core.Node)

	// Logger, when set, receives a one-line summary per completed round.
	Logger Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, DefaultMaxRounds, and a no-op round hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxRounds: DefaultMaxRounds,
		OnRound:   func(int, []*core.Node) {},
	}
}

// WithContext sets a custom context for cancellation between rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds sets the non-convergence guard. r must be positive.
func WithMaxRounds(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxRounds = r
	}
}

// WithOnRound registers a hook observing each completed round.
func WithOnRound(fn func(round int, nodes []*core.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithLogger registers a per-round trace logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a converged run.
type Result struct {
	// Rounds is the number of completed rounds.
	Rounds int

	// Nodes is the terminal node collection (same slice the caller
	// passed in; returned for convenience).
	Nodes []*core.Node
}

// CandidateCount returns how many nodes are still tentatively colored.
// It is the default convergence measure of the randomized policy and a
// handy progress probe for tests.
func CandidateCount(nodes []*core.Node) int {
	count := 0
	for _, n := range nodes {
		if !n.Coloring.IsPermanent() {
			count++
		}
	}

	return count
}
