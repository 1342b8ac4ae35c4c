package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/render"
	"github.com/katalvlaran/wordchain/wordchain"
)

type graphOpts struct {
	svg      string
	detailed bool
	stats    bool
}

func (a *app) newGraphCmd() *cobra.Command {
	var opts graphOpts
	cmd := &cobra.Command{
		Use:   "graph [files...]",
		Short: "Print the one-edit-apart graph of the words as Graphviz DOT",
		Long: `graph prints a Graphviz DOT description of the words: one node per word and
one edge per pair of words that are one character edit apart. When a chain
exists its edges are drawn bold.

With --svg the graph is rendered to an SVG file instead. With --stats a
short summary is printed: edge and component counts, the diameter, and the
closest pair of words that are not one edit apart.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGraph(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.svg, "svg", "", "render to this SVG file instead of printing DOT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "number the chain steps in node labels")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print a summary of the graph instead of DOT")
	return cmd
}

func (a *app) runGraph(cmd *cobra.Command, args []string, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	words, err := readInputs(args, a.stdin)
	if err != nil {
		return err
	}

	res, err := wordchain.Solve(words,
		wordchain.WithMaxWords(a.maxWords),
		wordchain.WithLogger(logger),
		wordchain.WithContext(ctx),
	)
	if errors.Is(err, wordchain.ErrTooManyWords) {
		// The graph itself is cheap; only the chain search is bounded.
		logger.Warn("too many words to search for a chain, drawing the graph only", "words", len(words), "limit", a.maxWords)
		res, err = wordchain.Analyze(words, wordchain.WithLogger(logger), wordchain.WithContext(ctx))
	}
	if err != nil {
		return err
	}

	if opts.stats {
		st, err := wordchain.Summarize(res, wordchain.WithLogger(logger), wordchain.WithContext(ctx))
		if err != nil {
			return err
		}
		return writeStats(a.stdout, res, st)
	}

	dot := render.ToDOT(res, render.Options{Detailed: opts.detailed})
	if opts.svg == "" {
		_, err = fmt.Fprint(a.stdout, dot)
		return err
	}

	prog := newProgress(logger)
	svg, err := render.SVG(ctx, dot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	prog.done("Rendered " + opts.svg)
	fmt.Fprintln(a.stdout, successLine("wrote "+opts.svg))
	return nil
}

// writeStats prints one "key: value" line per statistic.
func writeStats(w io.Writer, res *wordchain.Result, st *wordchain.Stats) error {
	chain := "none"
	if res.Found() {
		chain = fmt.Sprintf("%d words", len(res.Chain))
	}
	nearest := "none"
	if p := st.Nearest; p != nil {
		nearest = fmt.Sprintf("%s / %s (distance %d)", p.A, p.B, p.Distance)
	}
	_, err := fmt.Fprintf(w, "words: %d\nedges: %d\ncomponents: %d\ndiameter: %d\nchain: %s\nnearest miss: %s\n",
		st.Words, st.Edges, st.Components, st.Diameter, chain, nearest)
	return err
}
