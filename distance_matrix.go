package diversity

import (
	"fmt"
	"math"
)

// symmetryEpsilon is the tolerance used when checking square input for
// symmetry and a zero diagonal.
const symmetryEpsilon = 1e-9

// DistanceMatrix is a symmetric, zero-diagonal distance matrix over an
// ordered set of sample IDs. It is stored in condensed form: the row-major
// upper triangle excluding the diagonal, n*(n-1)/2 values for n samples.
type DistanceMatrix struct {
	ids       []string
	index     map[string]int
	condensed []float64
}

// NewDistanceMatrix wraps a condensed distance vector and its positionally
// aligned sample IDs. The vector length must be exactly len(ids choose 2).
// The vector is used directly, not copied.
func NewDistanceMatrix(condensed []float64, ids []string) (*DistanceMatrix, error) {
	n := len(ids)
	if want := condensedLen(n); len(condensed) != want {
		return nil, fmt.Errorf("%w: condensed vector has %d entries, want %d for %d ids",
			ErrInvalidInput, len(condensed), want, n)
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate sample id %q", ErrInvalidInput, id)
		}
		index[id] = i
	}
	return &DistanceMatrix{ids: ids, index: index, condensed: condensed}, nil
}

// NewDistanceMatrixFromSquare builds a DistanceMatrix from a square matrix,
// enforcing symmetry and a zero diagonal within symmetryEpsilon.
func NewDistanceMatrixFromSquare(square [][]float64, ids []string) (*DistanceMatrix, error) {
	n := len(square)
	if n != len(ids) {
		return nil, fmt.Errorf("%w: %d ids for a %dx%d matrix", ErrInvalidInput, len(ids), n, n)
	}
	for i, row := range square {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInput, i, len(row), n)
		}
		if math.Abs(row[i]) > symmetryEpsilon {
			return nil, fmt.Errorf("%w: diagonal entry [%d][%d] is %v, want 0", ErrInvalidInput, i, i, row[i])
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(row[j]-square[j][i]) > symmetryEpsilon {
				return nil, fmt.Errorf("%w: matrix is not symmetric at [%d][%d]", ErrInvalidInput, i, j)
			}
		}
	}

	condensed := make([]float64, condensedLen(n))
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			condensed[k] = square[i][j]
			k++
		}
	}
	return NewDistanceMatrix(condensed, ids)
}

// Len returns the number of samples.
func (m *DistanceMatrix) Len() int { return len(m.ids) }

// IDs returns the sample identifiers in matrix order. The caller must not
// modify the returned slice.
func (m *DistanceMatrix) IDs() []string { return m.ids }

// At returns the distance between samples at positions i and j.
// At(i, i) is always 0 and At(i, j) == At(j, i).
func (m *DistanceMatrix) At(i, j int) float64 {
	if i == j {
		return 0
	}
	if j < i {
		i, j = j, i
	}
	return m.condensed[condensedIndex(len(m.ids), i, j)]
}

// Between returns the distance between two samples by ID.
func (m *DistanceMatrix) Between(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: unknown sample id %q", ErrInvalidInput, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: unknown sample id %q", ErrInvalidInput, b)
	}
	return m.At(i, j), nil
}

// Condensed returns the underlying condensed distance vector (row-major
// upper triangle, diagonal excluded). The caller must not modify it.
func (m *DistanceMatrix) Condensed() []float64 { return m.condensed }

// Dense materializes the full square form of the matrix.
func (m *DistanceMatrix) Dense() [][]float64 {
	n := len(m.ids)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
