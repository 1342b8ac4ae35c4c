package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/wordchain/wordchain"
)

// Options configures DOT output.
type Options struct {
	// Detailed numbers chain steps in node labels.
	Detailed bool
}

// ToDOT converts a solved word list to Graphviz DOT format.
// Nodes are named n0..n(k-1) after their input index so duplicate words
// stay distinct; edges along the chain are drawn bold.
func ToDOT(r *wordchain.Result, opts Options) string {
	step := make(map[int]int, len(r.Order))
	for k, v := range r.Order {
		step[v] = k + 1
	}
	onChain := make(map[[2]int]bool, len(r.Order))
	for k := 1; k < len(r.Order); k++ {
		onChain[pairKey(r.Order[k-1], r.Order[k])] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [color=grey];\n")
	buf.WriteString("\n")

	for i, w := range r.Words {
		label := w
		if opts.Detailed && step[i] > 0 {
			label = fmt.Sprintf("%d. %s", step[i], w)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if step[i] > 0 {
			attrs += ", fillcolor=\"#d8f3e6\""
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, attrs)
	}

	buf.WriteString("\n")
	n := r.Graph.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !r.Graph.Has(i, j) {
				continue
			}
			if onChain[pairKey(i, j)] {
				fmt.Fprintf(&buf, "  n%d -- n%d [color=\"#1b7f5b\", penwidth=3];\n", i, j)
			} else {
				fmt.Fprintf(&buf, "  n%d -- n%d;\n", i, j)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
