// rng.go — deterministic random selection from small color sets.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms. The
//     backing hash sets iterate in arbitrary order, so candidates are
//     sorted before every draw.
//   - Encapsulation: one RNG factory; no time-based sources hidden here.
//     True randomness is injected only by top-level callers via WithSeed.

package reduction

import (
	"math/rand"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/distcolor/core"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pick draws one color uniformly from set. Returns false on an empty
// set. Candidates are sorted first so a fixed seed yields a fixed draw
// regardless of hash-set iteration order.
//
// Complexity: O(k log k) for k set members; k ≤ Δ+1, so this stays cheap.
func pick(set *hashset.Set, rng *rand.Rand) (core.Color, bool) {
	if set.Empty() {
		return 0, false
	}

	colors := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		colors = append(colors, int(v.(core.Color)))
	}
	sort.Ints(colors)

	return core.Color(colors[rng.Intn(len(colors))]), true
}

// cloneSet returns an independent copy of s.
func cloneSet(s *hashset.Set) *hashset.Set {
	out := hashset.New()
	out.Add(s.Values()...)

	return out
}
