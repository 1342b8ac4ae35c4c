// Package wordchain orders a list of words so that each word is one
// character edit away from the next.
//
// The problem is a Hamiltonian path in the "one edit apart" graph:
//
//	words ─► BuildGraph ─► bfs.Connected ─► hamilton.Path ─► words in chain order
//
// A disconnected graph is rejected before the exponential solver runs.
// When no chain exists the result is empty; that is an answer, not an
// error. The only error callers normally need to handle is ErrTooManyWords,
// returned before any table is allocated.
//
// Layout
//
//	editdist/  — OneAway and Levenshtein Distance
//	matrix/    — Adjacency: n×n boolean matrix with checked and unchecked access
//	bfs/       — breadth-first walk, Connected, Components
//	hamilton/  — Path (O(n·2ⁿ) word operations, 4·2ⁿ bytes) and Verify
//	wordchain/ — Solve, Chain, Analyze, Summarize, BuildGraph, Verify
//	render/    — DOT output and SVG rendering
//
// The command in cmd/wordchain reads words from files or stdin and prints
// the chain, or "No solution is possible.".
//
// Usage
//
//	chain, err := wordchain.Chain([]string{"coat", "hat", "hot", "dog", "cat", "hog", "cot", "oat"})
//	if errors.Is(err, wordchain.ErrTooManyWords) {
//	    // split the input or raise the limit with WithMaxWords
//	}
//	if len(chain) == 0 {
//	    // no chain exists
//	}
package wordchain
