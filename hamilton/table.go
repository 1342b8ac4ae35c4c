package hamilton

import (
	"math/bits"

	"github.com/katalvlaran/wordchain/matrix"
)

// table is the DP table HAM[S][i] stored as one bit row per subset:
// bit i of ends[S] is set iff some path visits exactly S and ends at i.
//
// The predecessor of i in S is not stored; it is the lowest j with an edge
// j→i whose bit is set in ends[S\{i}], which is exactly the first witness
// an ascending scan over j would record.
type table struct {
	ends []uint32
}

// TableBytes returns the memory, in bytes, of the DP table for n vertices.
// The result is a uint64 so that 4·2³⁰ fits on 32-bit platforms too.
func TableBytes(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return uint64(4) << n
}

func newTable(n int) *table {
	return &table{ends: make([]uint32, 1<<n)}
}

// inMasks returns, for every vertex i, the bitmask of vertices j with an edge j→i.
func inMasks(g *matrix.Adjacency) []uint32 {
	n := g.Size()
	in := make([]uint32, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && g.Has(j, i) {
				in[i] |= 1 << j
			}
		}
	}
	return in
}

// lowest returns the index of the lowest set bit of m; m must be non-zero.
func lowest(m uint32) int {
	return bits.TrailingZeros32(m)
}
