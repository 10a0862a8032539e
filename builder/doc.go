// Package builder constructs the recognized network topologies and the
// matching node collections for a coloring run.
//
// Each constructor is a pure function of the vertex count and returns
// the graph plus index-aligned nodes; Δ is available from the graph
// itself (core.Graph maintains the max out-degree at construction, so
// callers derive Δ from the actual graph rather than guessing it).
//
// Topologies
//
//   - Complete(n):    K_n, Δ = n−1.
//   - Chain(n):       path 0—1—…—(n−1), Δ = min(n−1, 2).
//   - Hydrocarbon(n): branching tree skeleton of "carbon" vertices each
//     flanked by up to two degree-1 "hydrogen" vertices and chained to
//     the next carbon; n−1 edges, max degree ≤ 4.
//
// Determinism
//
//	Vertex identities are 0..n−1 and edges are emitted in a fixed,
//	documented order, so a topology is fully reproducible from n alone.
//
// Errors
//
//   - ErrTooFewVertices if n < 1.
//   - Wrapped core sentinels if graph assembly fails (programmer error).
package builder
