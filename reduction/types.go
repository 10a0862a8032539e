// Package reduction implements the randomized (Δ+1)-coloring policy:
// every tentative vertex repeatedly samples a candidate color from a
// palette of size Δ+1 and commits permanently once no neighbor —
// permanent or tentative — holds that color.
//
// Why it converges
//
//	The palette exceeds every vertex's degree, so at least one color is
//	always free of permanent neighbors (pigeonhole), and randomization
//	breaks symmetry among vertices racing for the same color. The
//	expected number of tentative vertices strictly decreases each
//	round; this is Monte Carlo, so runs carry a round guard rather
//	than a worst-case bound.
//
// State machine per vertex
//
//	Candidate(c) → Candidate(c′) … → Permanent(c)   (absorbing)
//
// Determinism
//
//	Same seed ⇒ identical runs. Seed 0 maps to a fixed default seed;
//	true randomness belongs only at the top-level entry point.
//
// Errors
//
//   - ErrBadDelta         if Δ is negative.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrPaletteExhausted if a vertex finds no available color — a
//     palette misconfiguration (size < Δ+1), never a runtime condition
//     when Δ is the true maximum degree.
package reduction

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/distcolor/simulate"
)

// Sentinel errors for the randomized policy.
var (
	// ErrBadDelta indicates a negative maximum degree.
	ErrBadDelta = errors.New("reduction: delta must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reduction: invalid option supplied")

	// ErrPaletteExhausted indicates every palette color is held by a
	// permanent neighbor. With a palette of size Δ+1 this cannot happen
	// (a vertex has at most Δ neighbors); it signals a configuration
	// error, and the run must surface it rather than loop.
	ErrPaletteExhausted = errors.New("reduction: palette exhausted by permanent neighbors")
)

// Option configures the policy via functional arguments.
type Option func(*Options)

// Options holds the policy's tunable parameters.
type Options struct {
	// Seed drives the policy's private RNG. Seed 0 selects a fixed
	// default seed for reproducible-by-default behavior.
	Seed int64

	// PaletteSize overrides the palette size; 0 means Δ+1. Shrinking
	// it below Δ+1 violates the coloring precondition and exists so
	// callers can exercise the ErrPaletteExhausted path.
	PaletteSize int

	// MaxRounds bounds the convenience Color runner. This is Monte
	// Carlo: there is no worst-case round count, so a guard is
	// mandatory rather than optional.
	MaxRounds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with seed 0 (fixed default stream),
// the canonical Δ+1 palette, and the simulator's default round guard.
func DefaultOptions() Options {
	return Options{MaxRounds: simulate.DefaultMaxRounds}
}

// WithSeed sets the RNG seed. Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPaletteSize overrides the palette size. k must be positive;
// k == 0 restores the Δ+1 default.
func WithPaletteSize(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: PaletteSize cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.PaletteSize = k
	}
}

// WithMaxRounds bounds the Color runner. r must be positive.
func WithMaxRounds(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxRounds = r
	}
}
