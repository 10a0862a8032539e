// Command distcolor runs a synchronous distributed coloring simulation
// over one of the recognized topologies and reports the terminal
// coloring, optionally exporting it as a Graphviz file.
//
// Usage:
//
//	distcolor -mode=complete -policy=reduction -n=20 -v=1
//	distcolor -mode=hydrocarbon -policy=halving -n=10 -o=skeleton.dot
//	distcolor -mode=selftest
//
// Exit status is non-zero on configuration errors, non-convergence, or
// a detected invariant violation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/distcolor/builder"
	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/export"
	"github.com/katalvlaran/distcolor/halving"
	"github.com/katalvlaran/distcolor/reduction"
	"github.com/katalvlaran/distcolor/selfcheck"
	"github.com/katalvlaran/distcolor/simulate"
)

// defaultSelfTestNodes sizes the self-test K_n when -n is left at 1.
const defaultSelfTestNodes = 200

type cliConfig struct {
	mode   string
	policy string
	n      int
	seed   int64
	rounds int
	out    string
}

func main() {
	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cfg cliConfig
	flag.StringVar(&cfg.mode, "mode", "selftest", "run mode: selftest | complete | chain | hydrocarbon")
	flag.StringVar(&cfg.policy, "policy", "reduction", "coloring policy: reduction | halving")
	flag.IntVar(&cfg.n, "n", 1, "number of vertices (selftest uses 200 unless n > 1)")
	flag.Int64Var(&cfg.seed, "seed", 0, "RNG seed; 0 draws one from the clock")
	flag.IntVar(&cfg.rounds, "rounds", simulate.DefaultMaxRounds, "round guard before a run is declared unconverged")
	flag.StringVar(&cfg.out, "o", "", "write the terminal coloring as a Graphviz DOT file")
	flag.Parse()

	// The only place true randomness enters; everything below is
	// deterministic for a fixed seed.
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	err := run(cfg)
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "distcolor: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	if cfg.mode == "selftest" {
		return runSelfTest(cfg)
	}

	g, nodes, err := builder.Build(cfg.mode, cfg.n)
	if err != nil {
		return err
	}

	policy, err := buildPolicy(cfg.policy, g.Delta(), cfg.seed)
	if err != nil {
		return err
	}

	klog.V(1).Infof("running %s/%s with %d vertices (delta=%d, seed=%d)",
		cfg.mode, cfg.policy, cfg.n, g.Delta(), cfg.seed)

	res, err := simulate.Run(g, nodes, policy,
		simulate.WithMaxRounds(cfg.rounds),
		simulate.WithLogger(klog.V(1)),
		simulate.WithOnRound(traceRound),
	)
	if err != nil {
		return err
	}

	if err = selfcheck.Proper(g, nodes); err != nil {
		return err
	}

	fmt.Printf("converged after %d rounds (delta=%d)\n", res.Rounds, g.Delta())
	if err = export.Table(os.Stdout, nodes); err != nil {
		return err
	}

	if cfg.out != "" {
		if err = export.WriteDOTFile(cfg.out, g, nodes); err != nil {
			return err
		}
		klog.V(1).Infof("wrote %s", cfg.out)
	}

	return nil
}

// runSelfTest colors a complete graph with the selected policy and
// asserts its terminal invariant: a color bijection for the randomized
// policy, pairwise-distinct colors within the target for halving. Any
// violation aborts the process via the returned error.
func runSelfTest(cfg cliConfig) error {
	n := cfg.n
	if n <= 1 {
		n = defaultSelfTestNodes
	}

	var (
		nodes  []*core.Node
		rounds int
		err    error
	)
	switch cfg.policy {
	case "reduction":
		nodes, rounds, err = selfcheck.CompleteGraph(n, cfg.seed,
			simulate.WithMaxRounds(cfg.rounds),
			simulate.WithLogger(klog.V(1)),
			simulate.WithOnRound(traceRound),
		)
	case "halving":
		nodes, rounds, err = selfcheck.CompleteGraphHalving(n,
			simulate.WithMaxRounds(cfg.rounds),
			simulate.WithLogger(klog.V(1)),
			simulate.WithOnRound(traceRound),
		)
	default:
		return fmt.Errorf("unknown policy %q", cfg.policy)
	}
	if err != nil {
		return err
	}

	fmt.Printf("self-test passed: K%d colored by %s in %d rounds\n", n, cfg.policy, rounds)
	fmt.Println("\nsorted by color:")

	return export.Table(os.Stdout, export.SortedByColor(nodes))
}

func buildPolicy(name string, delta int, seed int64) (simulate.Policy, error) {
	switch name {
	case "reduction":
		return reduction.New(delta, reduction.WithSeed(seed))
	case "halving":
		return halving.New(delta)
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// traceRound dumps every node's coloring at verbosity ≥ 2; the round
// summary itself comes from the simulator's logger.
func traceRound(_ int, nodes []*core.Node) {
	if klog.V(2) {
		for _, n := range nodes {
			klog.Infof("node %3d has color %s", n.ID, n.Coloring)
		}
	}
}
