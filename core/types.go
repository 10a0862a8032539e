// Package core defines the central Graph, Node, and Coloring types
// shared by every coloring policy and the round simulator.
//
// A Node is one simulated processor: an integer identity, a coloring
// state, and an inbox of messages received from neighbors during the
// current round. Nodes own their inbox exclusively: the simulator
// appends to it during the deliver phase, and the owning policy
// consumes it during the compute phase of the same round. An inbox
// never survives a round.
//
// This file declares Color, Status, the Coloring sum type, Message,
// Node, and the node constructors.
//
// Errors (declared in graph.go):
//
//	ErrBadOrder      - graph order is not positive.
//	ErrVertexRange   - vertex identity outside [0, order).
//	ErrSelfLoop      - edge endpoints are equal.
//	ErrDuplicateEdge - edge already present.
package core

import "fmt"

// Color is a non-negative color value. The randomized policy keeps it
// inside a palette of size Δ+1; the halving policy shrinks it from the
// identity range toward Δ+1.
type Color int

// Status tags a Coloring as tentative or irrevocably fixed.
type Status uint8

const (
	// StatusCandidate marks a color that may still change.
	StatusCandidate Status = iota

	// StatusPermanent marks a color fixed for the rest of the run.
	// The transition into StatusPermanent is absorbing: a node never
	// re-enters StatusCandidate afterwards.
	StatusPermanent
)

// Coloring is the per-node coloring state: a color value tagged as
// Candidate (tentative) or Permanent (fixed). Policies should switch
// on Status exhaustively rather than rely on implicit flags.
type Coloring struct {
	status Status
	color  Color
}

// Candidate returns a tentative coloring holding c.
func Candidate(c Color) Coloring {
	return Coloring{status: StatusCandidate, color: c}
}

// Permanent returns a fixed coloring holding c.
func Permanent(c Color) Coloring {
	return Coloring{status: StatusPermanent, color: c}
}

// Color returns the color value regardless of status.
func (s Coloring) Color() Color { return s.color }

// Status returns the Candidate/Permanent tag.
func (s Coloring) Status() Status { return s.status }

// IsPermanent reports whether the coloring is fixed.
func (s Coloring) IsPermanent() bool { return s.status == StatusPermanent }

// String renders the coloring in its sum-type form, e.g. "Permanent(3)".
func (s Coloring) String() string {
	switch s.status {
	case StatusPermanent:
		return fmt.Sprintf("Permanent(%d)", s.color)
	default:
		return fmt.Sprintf("Candidate(%d)", s.color)
	}
}

// Message is one inbox entry: the sender's identity and a snapshot of
// the sender's coloring at send time.
type Message struct {
	// From is the sending node's identity.
	From int

	// Coloring is the sender's coloring as of the previous round.
	Coloring Coloring
}

// Node represents one vertex-processor in the simulated network.
type Node struct {
	// ID is the node's unique identity in [0, order).
	ID int

	// Coloring is the node's current coloring state. It mutates at
	// most once per round, during the compute phase.
	Coloring Coloring

	inbox []Message
}

// NewNode returns a node with the given identity, tentatively colored
// with the identity value itself.
func NewNode(id int) *Node {
	return &Node{ID: id, Coloring: Candidate(Color(id))}
}

// NewNodes returns n fresh nodes with identities 0..n-1, index-aligned
// so that nodes[i].ID == i as the simulator requires.
func NewNodes(n int) []*Node {
	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = NewNode(i)
	}

	return nodes
}

// Deliver appends one message to the node's inbox. Only the simulator
// calls this, and only during a round's deliver phase.
func (n *Node) Deliver(m Message) {
	n.inbox = append(n.inbox, m)
}

// Inbox returns the messages accumulated during the current round.
// The slice is valid only until ClearInbox.
func (n *Node) Inbox() []Message { return n.inbox }

// ClearInbox discards all accumulated messages, keeping the backing
// array for reuse in the next round.
func (n *Node) ClearInbox() { n.inbox = n.inbox[:0] }
