package wordchain

import (
	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/editdist"
)

// Stats summarises the graph behind a Result.
type Stats struct {
	// Words and Edges count vertices and undirected edges.
	Words int
	Edges int

	// Components is the number of connected components; 0 for no words.
	Components int

	// Diameter is the longest shortest chain, in edges, between two words
	// of the same component.
	Diameter int

	// Nearest is the closest pair of words that are not adjacent, with
	// Distance > 1; nil when every distinct pair is adjacent.
	Nearest *Pair
}

// Pair is two words by input index, with their edit distance.
type Pair struct {
	I, J     int
	A, B     string
	Distance int
}

// Summarize computes Stats for r. It runs one BFS per word and one
// edit distance per non-adjacent pair; ties for Nearest go to the pair
// that comes first in input order.
//
// Only WithContext is consulted among opts.
// Complexity: O(n³ + n²·L²).
func Summarize(r *Result, opts ...Option) (*Stats, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	g := r.Graph
	n := g.Size()
	st := &Stats{Words: len(r.Words), Edges: g.Edges()}
	if n == 0 {
		return st, nil
	}

	comps, err := bfs.Components(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	st.Components = len(comps)

	var i, j int
	for i = 0; i < n; i++ {
		res, err := bfs.BFS(g, i, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		st.Diameter = max(st.Diameter, res.Eccentricity())
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.Has(i, j) {
				continue
			}
			d := editdist.Distance(r.Words[i], r.Words[j])
			if d <= 1 || (st.Nearest != nil && d >= st.Nearest.Distance) {
				continue
			}
			st.Nearest = &Pair{I: i, J: j, A: r.Words[i], B: r.Words[j], Distance: d}
		}
	}
	o.Logger.Debug("graph summarised", "components", st.Components, "diameter", st.Diameter)

	return st, nil
}
