package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/distcolor/builder"
	"github.com/katalvlaran/distcolor/core"
	"github.com/katalvlaran/distcolor/export"
)

func colored(t *testing.T) (*core.Graph, []*core.Node) {
	t.Helper()
	g, nodes, err := builder.Chain(3)
	if err != nil {
		t.Fatal(err)
	}
	nodes[0].Coloring = core.Permanent(0)
	nodes[1].Coloring = core.Permanent(2)
	nodes[2].Coloring = core.Permanent(1)

	return g, nodes
}

// TestTable checks the per-node listing and empty-input rejection.
func TestTable(t *testing.T) {
	_, nodes := colored(t)

	var sb strings.Builder
	if err := export.Table(&sb, nodes); err != nil {
		t.Fatalf("Table: %v", err)
	}
	want := "node   0 has color Permanent(0)\n" +
		"node   1 has color Permanent(2)\n" +
		"node   2 has color Permanent(1)\n"
	if sb.String() != want {
		t.Errorf("Table output:\n%s\nwant:\n%s", sb.String(), want)
	}

	if err := export.Table(&sb, nil); !errors.Is(err, export.ErrNoNodes) {
		t.Errorf("empty nodes: want ErrNoNodes, got %v", err)
	}
}

// TestSortedByColor verifies ordering and that the input is untouched.
func TestSortedByColor(t *testing.T) {
	_, nodes := colored(t)

	sorted := export.SortedByColor(nodes)
	gotOrder := []int{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	if gotOrder[0] != 0 || gotOrder[1] != 2 || gotOrder[2] != 1 {
		t.Errorf("sorted IDs = %v; want [0 2 1]", gotOrder)
	}
	if nodes[1].ID != 1 {
		t.Error("SortedByColor mutated its input")
	}
}

// TestDOT checks structure: one statement per vertex with a fill color,
// one statement per undirected edge.
func TestDOT(t *testing.T) {
	g, nodes := colored(t)

	var sb strings.Builder
	if err := export.DOT(&sb, g, nodes); err != nil {
		t.Fatalf("DOT: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "graph coloring {") {
		t.Errorf("missing graph header:\n%s", out)
	}
	for _, frag := range []string{
		"n0 [label=\"0\\ncolor 0\"",
		"n1 [label=\"1\\ncolor 2\"",
		"n2 [label=\"2\\ncolor 1\"",
		"n0 -- n1;",
		"n1 -- n2;",
		"fillcolor=",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("DOT output missing %q:\n%s", frag, out)
		}
	}
	if got := strings.Count(out, " -- "); got != g.EdgeCount() {
		t.Errorf("edge statements = %d; want %d", got, g.EdgeCount())
	}

	if err := export.DOT(&sb, nil, nodes); !errors.Is(err, export.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if err := export.DOT(&sb, g, nil); !errors.Is(err, export.ErrNoNodes) {
		t.Errorf("empty nodes: want ErrNoNodes, got %v", err)
	}
}

// TestWriteDOTFile covers the file path, including unwritable targets.
func TestWriteDOTFile(t *testing.T) {
	g, nodes := colored(t)

	path := filepath.Join(t.TempDir(), "coloring.dot")
	if err := export.WriteDOTFile(path, g, nodes); err != nil {
		t.Fatalf("WriteDOTFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "graph coloring {") {
		t.Error("written file lacks DOT header")
	}

	bad := filepath.Join(t.TempDir(), "missing", "coloring.dot")
	if err = export.WriteDOTFile(bad, g, nodes); err == nil {
		t.Error("unwritable path: want error, got nil")
	}
}
