package core_test

import (
	"testing"

	"github.com/katalvlaran/distcolor/core"
)

// TestColoring_SumType verifies the Candidate/Permanent tagging and the
// rendered form used by verbose traces.
func TestColoring_SumType(t *testing.T) {
	c := core.Candidate(3)
	if c.Color() != 3 || c.Status() != core.StatusCandidate || c.IsPermanent() {
		t.Errorf("Candidate(3) = %v; want tentative color 3", c)
	}
	if got, want := c.String(), "Candidate(3)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	p := core.Permanent(0)
	if p.Color() != 0 || p.Status() != core.StatusPermanent || !p.IsPermanent() {
		t.Errorf("Permanent(0) = %v; want fixed color 0", p)
	}
	if got, want := p.String(), "Permanent(0)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestNewNodes checks identity/index alignment and the identity-colored
// starting state.
func TestNewNodes(t *testing.T) {
	nodes := core.NewNodes(4)
	if len(nodes) != 4 {
		t.Fatalf("len = %d; want 4", len(nodes))
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Errorf("nodes[%d].ID = %d; want %d", i, n.ID, i)
		}
		if n.Coloring != core.Candidate(core.Color(i)) {
			t.Errorf("nodes[%d].Coloring = %v; want Candidate(%d)", i, n.Coloring, i)
		}
		if len(n.Inbox()) != 0 {
			t.Errorf("nodes[%d] starts with non-empty inbox", i)
		}
	}
}

// TestNode_Inbox verifies deliver/consume/clear round discipline.
func TestNode_Inbox(t *testing.T) {
	n := core.NewNode(0)
	n.Deliver(core.Message{From: 1, Coloring: core.Candidate(2)})
	n.Deliver(core.Message{From: 2, Coloring: core.Permanent(1)})

	in := n.Inbox()
	if len(in) != 2 {
		t.Fatalf("inbox size = %d; want 2", len(in))
	}
	if in[0].From != 1 || in[0].Coloring != core.Candidate(2) {
		t.Errorf("inbox[0] = %+v; want message (1, Candidate(2))", in[0])
	}
	if in[1].From != 2 || in[1].Coloring != core.Permanent(1) {
		t.Errorf("inbox[1] = %+v; want message (2, Permanent(1))", in[1])
	}

	n.ClearInbox()
	if len(n.Inbox()) != 0 {
		t.Error("inbox not empty after ClearInbox")
	}
}
