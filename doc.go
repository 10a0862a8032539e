// Package distcolor simulates synchronous distributed graph-coloring
// algorithms on a single machine: a network of abstract processors
// (graph vertices), each with only local knowledge of its neighbors,
// converges on a proper coloring using round-based message exchange.
//
// 🎨 What is distcolor?
//
//	A small, deterministic-when-seeded simulation library built from:
//		• Core primitives: integer-identity vertices, mirrored directed arcs, Δ
//		• Topologies: complete graph, chain, hydrocarbon skeleton
//		• A two-phase round engine: deliver all messages, then compute
//		• Two pluggable coloring policies:
//		  – randomized (Δ+1)-reduction (Candidate → Permanent, Monte Carlo)
//		  – deterministic halving with max-identity tie-break
//		• Reporters: textual tables and Graphviz DOT export
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — Graph, Node, Coloring (Candidate/Permanent sum type), inboxes
//	builder/   — Complete, Chain and Hydrocarbon topology constructors
//	simulate/  — the round-based message simulator and the Policy capability
//	reduction/ — the randomized (Δ+1)-coloring policy
//	halving/   — the deterministic halving / tie-break policy
//	export/    — table and Graphviz DOT reporters for terminal colorings
//	selfcheck/ — invariant validation (proper coloring, K_n color bijection)
//
// Round semantics are strict: every message delivered in round k was
// sent with round k−1 colors, and no compute-phase update ever observes
// another update from the same round. That two-phase barrier is what
// makes the simulation synchronous rather than a data race.
//
//	go get github.com/katalvlaran/distcolor
package distcolor
