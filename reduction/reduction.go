package reduction

import (
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/simulate"
)

// Policy is the randomized (Δ+1)-coloring policy. Construct it with New
// and hand it to simulate.Run; it implements simulate.Policy.
type Policy struct {
	delta   int
	palette *hashset.Set // {0 .. paletteSize-1}, immutable after New
	rng     *rand.Rand
}

// New returns a randomized policy for a network of maximum degree delta,
// applying any number of functional Options.
// Returns ErrBadDelta for a negative delta or ErrOptionViolation for
// invalid options.
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

	size := o.PaletteSize
	if size == 0 {
		size = delta + 1
	}

	palette := hashset.New()
	for c := 0; c < size; c++ {
		palette.Add(core.Color(c))
	}

	return &Policy{
		delta:   delta,
		palette: palette,
		rng:     rngFromSeed(o.Seed),
	}, nil
}

// Init draws an independent uniformly random palette color for every
// tentative node. Already-permanent nodes keep their color, so a
// converged collection passes through Init unchanged.
func (p *Policy) Init(nodes []*core.Node) error {
	for _, n := range nodes {
		if n.Coloring.IsPermanent() {
			continue
		}
		c, _ := pick(p.palette, p.rng) // palette is non-empty by construction
		n.Coloring = core.Candidate(c)
	}

	return nil
}

// Update applies one round of the reduction rule to a tentative node:
//
//   - available: palette minus colors of permanently colored neighbors.
//   - contested: palette minus colors in any neighbor message at all.
//   - Own color still in contested ⇒ nobody holds it ⇒ go Permanent.
//     This is irrevocable and safe: fixed neighbors can never take the
//     color again, and no currently competing neighbor holds it.
//   - Otherwise redraw uniformly from available and stay Candidate; an
//     overlap with a still-tentative neighbor resolves in a later round.
//
// An empty available set means the palette is smaller than the true
// neighborhood demands: ErrPaletteExhausted, with the node identity.
func (p *Policy) Update(n *core.Node, inbox []core.Message) (core.Coloring, error) {
	available := cloneSet(p.palette)
	contested := cloneSet(p.palette)

	for _, m := range inbox {
		if m.Coloring.IsPermanent() {
			available.Remove(m.Coloring.Color())
		}
		contested.Remove(m.Coloring.Color())
	}

	if contested.Contains(n.Coloring.Color()) {
		return core.Permanent(n.Coloring.Color()), nil
	}

	c, ok := pick(available, p.rng)
	if !ok {
		return n.Coloring, fmt.Errorf("node %d with %d-color palette (delta=%d): %w",
			n.ID, p.palette.Size(), p.delta, ErrPaletteExhausted)
	}

	return core.Candidate(c), nil
}

// Converged reports global termination: no Candidate vertices remain.
func (p *Policy) Converged(nodes []*core.Node, _ int) bool {
	return simulate.CandidateCount(nodes) == 0
}
