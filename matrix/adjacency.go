package matrix

import "strings"

// Adjacency is a square boolean matrix over vertex indices 0..n-1.
// n is the vertex count and data holds n*n cells in row-major order.
type Adjacency struct {
	n    int
	data []bool
}

// NewAdjacency creates an n×n Adjacency with every cell false.
// Stage 1 (Validate): ensure n ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Adjacency{n: n, data: make([]bool, n*n)}, nil
}

// Build creates an n×n Adjacency and sets cell (i,j) for every ordered
// pair i ≠ j for which adjacent(i, j) returns true. The diagonal stays false.
//
// Build calls adjacent n·(n−1) times; a symmetric predicate yields a
// symmetric matrix.
// Complexity: O(n²) calls of adjacent.
func Build(n int, adjacent func(i, j int) bool) (*Adjacency, error) {
	a, err := NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && adjacent(i, j) {
				a.data[i*n+j] = true
			}
		}
	}

	return a, nil
}

// Size returns the number of vertices n.
// Complexity: O(1).
func (a *Adjacency) Size() int {
	if a == nil {
		return 0
	}
	return a.n
}

// indexOf computes the flat index for (i, j) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (a *Adjacency) indexOf(method string, i, j int) (int, error) {
	if a == nil {
		return 0, adjacencyErrorf(method, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, adjacencyErrorf(method, i, j, ErrIndexOutOfBounds)
	}

	return i*a.n + j, nil
}

// At reports whether the edge i→j is present.
// Complexity: O(1).
func (a *Adjacency) At(i, j int) (bool, error) {
	idx, err := a.indexOf("At", i, j)
	if err != nil {
		return false, err
	}

	return a.data[idx], nil
}

// Set stores v at (i, j). Only the single cell is written; callers that
// want an undirected edge set both (i,j) and (j,i).
// Complexity: O(1).
func (a *Adjacency) Set(i, j int, v bool) error {
	idx, err := a.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// Has is the unchecked form of At for hot loops whose indices are already
// known to be in range. It panics on out-of-range indices like a slice does.
func (a *Adjacency) Has(i, j int) bool {
	return a.data[i*a.n+j]
}

// Neighbors returns every j with At(i, j) == true, in ascending order.
// Complexity: O(n).
func (a *Adjacency) Neighbors(i int) ([]int, error) {
	if a == nil {
		return nil, adjacencyErrorf("Neighbors", i, i, ErrNilMatrix)
	}
	if i < 0 || i >= a.n {
		return nil, adjacencyErrorf("Neighbors", i, i, ErrIndexOutOfBounds)
	}
	row := a.data[i*a.n : (i+1)*a.n]
	out := make([]int, 0, a.n)
	for j, ok := range row {
		if ok {
			out = append(out, j)
		}
	}

	return out, nil
}

// Edges returns the number of unordered pairs {i, j}, i < j, with an edge
// in either direction.
// Complexity: O(n²).
func (a *Adjacency) Edges() int {
	if a == nil {
		return 0
	}
	count := 0
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] || a.data[j*a.n+i] {
				count++
			}
		}
	}

	return count
}

// Symmetric reports whether At(i,j) == At(j,i) for all i, j.
// Complexity: O(n²) on the upper triangle.
func (a *Adjacency) Symmetric() bool {
	if a == nil {
		return true
	}
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy that shares no storage with a.
// Complexity: O(n²).
func (a *Adjacency) Clone() *Adjacency {
	if a == nil {
		return nil
	}
	data := make([]bool, len(a.data))
	copy(data, a.data)

	return &Adjacency{n: a.n, data: data}
}

// String renders the matrix as rows of 0/1, one row per line.
func (a *Adjacency) String() string {
	if a == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.Grow(a.n * (2*a.n + 2))
	var i, j int
	for i = 0; i < a.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if a.data[i*a.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
