package halving_test

import (
	"fmt"

	"github.com/katalvlaran/distcolor/builder"
	"github.com/katalvlaran/distcolor/halving"
	"github.com/katalvlaran/distcolor/simulate"
)

// Example runs the deterministic policy on K4. Identities 0..3 start
// ceil-halved as colors 0,1,1,2; node 2 loses the tie-break on color 1
// and first-fits to 3; one more clean round confirms convergence.
func Example() {
	g, nodes, _ := builder.Complete(4)
	p, _ := halving.New(g.Delta())

	res, _ := simulate.Run(g, nodes, p)

	fmt.Println("rounds:", res.Rounds)
	for _, n := range nodes {
		fmt.Printf("node %d: %s\n", n.ID, n.Coloring)
	}

	// Output:
	// rounds: 2
	// node 0: Candidate(0)
	// node 1: Candidate(1)
	// node 2: Candidate(3)
	// node 3: Candidate(2)
}
