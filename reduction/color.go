package reduction

import (
	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/simulate"
)

// Color is the one-call entry point: construct the randomized policy
// for delta and drive it over g to convergence. It is equivalent to
// New followed by simulate.Run for callers with no custom simulator
// wiring; the round guard is taken from WithMaxRounds.
func Color(g *core.Graph, nodes []*core.Node, delta int, opts ...Option) (*simulate.Result, error) {
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
