package hamilton

import (
	"fmt"

	"github.com/katalvlaran/wordchain/matrix"
)

// ctxPollEvery is the number of subsets processed between context checks.
const ctxPollEvery = 1 << 12

// Path finds one Hamiltonian path of g using the bitmask dynamic program.
//
// HAM[S][i] records whether some path visits exactly the vertices of S
// (bit i of S set ⇔ vertex i ∈ S) and ends at i:
//
//   - Base: HAM[{i}][i] holds for every i.
//   - Step: HAM[S][i] holds iff some j ∈ S\{i} with an edge j→i has
//     HAM[S\{i}][j]. The lowest such j is the recorded predecessor.
//
// Subsets are processed in increasing numeric order; S\{i} < S, so every
// dependency is final before it is read.
//
// The path is rebuilt backward from the lowest valid endpoint of the full
// set and returned start-first. It is one valid Hamiltonian path, not
// necessarily starting at vertex 0. If g has none (or n == 0) the order is
// empty and the error is nil.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrTooManyVertices (before
// allocation), or the context error on cancellation.
//
// Time complexity:   O(n · 2ⁿ) word operations, plus O(n²) to read g
// Memory complexity: O(2ⁿ) words of n bits
func Path(g *matrix.Adjacency, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	if n == 0 {
		return nil, nil
	}
	if n > o.MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices, limit %d", ErrTooManyVertices, n, o.MaxVertices)
	}

	// --- 1. Allocate the table and read in-neighbour masks ---
	in := inMasks(g)
	t := newTable(n)
	full := (1 << n) - 1

	// --- 2. Fill subsets in increasing order ---
	for set := 1; set <= full; set++ {
		if set%ctxPollEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		if set&(set-1) == 0 {
			t.ends[set] = uint32(set) // singleton {i} ends at i
			continue
		}
		var ends uint32
		for rem := uint32(set); rem != 0; rem &= rem - 1 {
			i := lowest(rem)
			if in[i]&t.ends[set^(1<<i)] != 0 {
				ends |= 1 << i
			}
		}
		t.ends[set] = ends
	}

	// --- 3. Pick an endpoint over the full set ---
	if t.ends[full] == 0 {
		return nil, nil
	}

	// --- 4. Walk predecessors back to the start ---
	order := make([]int, n)
	set, v := full, lowest(t.ends[full])
	order[n-1] = v
	for k := n - 2; k >= 0; k-- {
		set ^= 1 << v
		v = lowest(in[v] & t.ends[set])
		order[k] = v
	}

	return order, nil
}
