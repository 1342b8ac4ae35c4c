package wordchain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/editdist"
	"github.com/katalvlaran/wordchain/hamilton"
	"github.com/katalvlaran/wordchain/matrix"
)

// Sentinel errors for the word chain orchestrator.
var (
	// ErrTooManyWords is returned when the input exceeds MaxWords.
	// It also matches hamilton.ErrTooManyVertices under errors.Is.
	ErrTooManyWords = fmt.Errorf("wordchain: too many words: %w", hamilton.ErrTooManyVertices)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordchain: invalid option supplied")

	// ErrNotAdjacent is returned by Verify when two consecutive words are
	// not one edit apart.
	ErrNotAdjacent = errors.New("wordchain: consecutive words are not one edit apart")
)

// Result is the full outcome of Solve.
type Result struct {
	// Words is the input, in input order.
	Words []string

	// Chain is the words in chain order, or empty if no chain exists.
	Chain []string

	// Order holds the indices into Words behind Chain.
	Order []int

	// Graph is the one-edit-apart graph over indices into Words; nil when Solve gets no words.
	Graph *matrix.Adjacency

	// Connected reports whether Graph is a single component.
	Connected bool

	// Components lists the components of a disconnected Graph; nil otherwise.
	Components [][]int
}

// Found reports whether a chain was found.
func (r *Result) Found() bool {
	return len(r.Chain) > 0
}

// BuildGraph returns the graph whose edge (i, j), i ≠ j, is set iff
// words[i] and words[j] are one edit apart. The matrix is symmetric and
// its diagonal is false, so duplicate words are never adjacent.
// Complexity: O(n²·L).
func BuildGraph(words []string) (*matrix.Adjacency, error) {
	return matrix.Build(len(words), func(i, j int) bool {
		return editdist.OneAway(words[i], words[j])
	})
}

// Chain returns words reordered so that each word is one edit away from
// the next, or an empty slice if no such order exists.
func Chain(words []string, opts ...Option) ([]string, error) {
	res, err := Solve(words, opts...)
	if err != nil {
		return nil, err
	}
	return res.Chain, nil
}

// Solve runs the full pipeline and reports the intermediate graph as well
// as the chain.
//
// Stage 1 (Validate): options, then the word-count ceiling.
// Stage 2 (Analyze): the one-edit-apart graph and its connectivity.
// Stage 3 (Gate): a disconnected graph has no chain; the solver is skipped.
// Stage 4 (Search): hamilton.Path, checked with hamilton.Verify, then
// indices are mapped back to words.
//
// Empty input yields an empty chain and no error. The context given with
// WithContext covers both the connectivity check and the search.
func Solve(words []string, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	logger := o.Logger

	n := len(words)
	if n == 0 {
		logger.Debug("no words, nothing to chain")
		return &Result{Words: words, Connected: true}, nil
	}
	if n > o.MaxWords {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyWords, n, o.MaxWords)
	}

	res, err := analyze(words, o)
	if err != nil {
		return nil, err
	}
	if !res.Connected {
		logger.Debug("skipping search")
		return res, nil
	}

	logger.Debug("searching for hamiltonian path", "table_bytes", hamilton.TableBytes(n))
	order, err := hamilton.Path(res.Graph,
		hamilton.WithMaxVertices(o.MaxWords),
		hamilton.WithContext(o.Ctx),
	)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		logger.Debug("graph is connected but has no hamiltonian path")
		return res, nil
	}
	if err := hamilton.Verify(res.Graph, order); err != nil {
		return nil, fmt.Errorf("wordchain: solver returned an invalid path: %w", err)
	}

	res.Order = order
	res.Chain = make([]string, len(order))
	for k, i := range order {
		res.Chain[k] = words[i]
	}
	logger.Debug("chain found", "length", len(res.Chain))

	return res, nil
}

// Analyze builds the one-edit-apart graph of words and checks its
// connectivity without searching for a chain. It applies no word-count
// ceiling, so it serves inputs too large for Solve.
// Complexity: O(n²·L).
func Analyze(words []string, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return analyze(words, o)
}

func analyze(words []string, o Options) (*Result, error) {
	g, err := BuildGraph(words)
	if err != nil {
		return nil, err
	}
	res := &Result{Words: words, Graph: g}
	o.Logger.Debug("graph built", "words", len(words), "edges", g.Edges())

	if res.Connected, err = bfs.Connected(g, bfs.WithContext(o.Ctx)); err != nil {
		return nil, err
	}
	if !res.Connected {
		if res.Components, err = bfs.Components(g, bfs.WithContext(o.Ctx)); err != nil {
			return nil, err
		}
		o.Logger.Debug("graph is disconnected", "components", len(res.Components))
	}

	return res, nil
}

// Verify checks that every consecutive pair of chain is one edit apart.
// It does not check which words the chain contains.
// Complexity: O(n·L).
func Verify(chain []string) error {
	for k := 1; k < len(chain); k++ {
		if !editdist.OneAway(chain[k-1], chain[k]) {
			return fmt.Errorf("%w: %q→%q at position %d", ErrNotAdjacent, chain[k-1], chain[k], k)
		}
	}
	return nil
}
