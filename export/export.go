// Package export renders terminal colorings: a textual table for the
// console and a Graphviz DOT description for graphical inspection.
//
// The reporter is deliberately outside the core guarantee: it reads a
// finished node collection and never mutates run state. I/O failures
// are reported with their underlying cause and leave nothing corrupted.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/distcolor/core"
)

// Sentinel errors for reporting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("export: graph is nil")

	// ErrNoNodes is returned for a nil or empty node collection.
	ErrNoNodes = errors.New("export: node collection is empty")
)

// displayPalette maps palette indexes onto arbitrary distinct Graphviz
// fill colors; indexes beyond the list wrap around.
var displayPalette = []string{
	"tomato", "skyblue", "palegreen", "gold", "orchid", "sandybrown",
	"turquoise", "lightpink", "khaki", "lightsteelblue", "salmon", "palegoldenrod",
}

// Table writes one line per node in identity order:
//
//	node   7 has color Permanent(3)
func Table(w io.Writer, nodes []*core.Node) error {
	if len(nodes) == 0 {
		return ErrNoNodes
	}

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "node %3d has color %s\n", n.ID, n.Coloring); err != nil {
			return fmt.Errorf("export: table write: %w", err)
		}
	}

	return nil
}

// SortedByColor returns a copy of nodes ordered by color, then by
// identity — the view the self-test report uses to make duplicate
// colors obvious to the eye.
func SortedByColor(nodes []*core.Node) []*core.Node {
	out := make([]*core.Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Coloring.Color(), out[j].Coloring.Color()
		if ci != cj {
			return ci < cj
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// DOT writes an undirected Graphviz description of the colored network:
// every vertex filled with a display color keyed by its palette index,
// every undirected edge listed once.
func DOT(w io.Writer, g *core.Graph, nodes []*core.Node) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(nodes) == 0 {
		return ErrNoNodes
	}

	var sb strings.Builder
	sb.WriteString("graph coloring {\n")
	sb.WriteString("  node [style=filled];\n")

	for _, n := range nodes {
		fill := displayPalette[int(n.Coloring.Color())%len(displayPalette)]
		sb.WriteString(fmt.Sprintf("  n%d [label=\"%d\\ncolor %d\" fillcolor=\"%s\"];\n",
			n.ID, n.ID, n.Coloring.Color(), fill))
	}

	// Each undirected edge is stored as two mirrored arcs; emit once.
	for _, a := range g.Arcs() {
		if a.From < a.To {
			sb.WriteString(fmt.Sprintf("  n%d -- n%d;\n", a.From, a.To))
		}
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("export: dot write: %w", err)
	}

	return nil
}

// WriteDOTFile renders the DOT description into the named file,
// creating or truncating it.
func WriteDOTFile(path string, g *core.Graph, nodes []*core.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}

	if err = DOT(f, g, nodes); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %q: %w", path, err)
	}

	return nil
}
