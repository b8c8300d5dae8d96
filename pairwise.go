package diversity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PairwiseFunc computes a condensed distance vector over the rows of counts:
// n*(n-1)/2 values in row-major upper-triangle order. It is the pluggable
// backend contract of BetaDiversity; Pdist is the default implementation.
type PairwiseFunc func(counts [][]float64, fn DistanceFunc) ([]float64, error)

// condensedLen returns the length of the condensed form of an n x n
// symmetric matrix: n*(n-1)/2.
func condensedLen(n int) int { return n * (n - 1) / 2 }

// condensedIndex returns the condensed-vector position of entry (i, j) with
// i < j, in row-major upper-triangle order.
func condensedIndex(n, i, j int) int {
	return n*i - i*(i+1)/2 + (j - i - 1)
}

// Pdist computes distances between all pairs of rows and returns them in
// condensed form. Pairs are visited in row-major upper-triangle order, so
// output order is deterministic for any fn.
func Pdist(counts [][]float64, fn DistanceFunc) ([]float64, error) {
	n := len(counts)
	out := make([]float64, condensedLen(n))
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out[k] = fn(counts[i], counts[j])
			k++
		}
	}
	return out, nil
}

// partialPairwise computes distances only for the given ID pairs, in the
// order supplied. Pairs not listed remain 0 in the result: "not computed",
// not "zero distance". Callers choosing this path accept that the two are
// indistinguishable in the output.
//
// Preconditions, each checked before any distance is computed:
// ids must be caller-supplied; every ID referenced by a pair must be a
// member of ids; no pair may appear twice in either orientation (this also
// excludes self-pairs, whose reversal collides with themselves).
func partialPairwise(ids []string, idPairs [][2]string, counts [][]float64, fn DistanceFunc) ([]float64, error) {
	if ids == nil {
		return nil, fmt.Errorf("%w: IDs must be specified when IDPairs is specified", ErrInvalidInput)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	for _, pair := range idPairs {
		for _, id := range pair {
			if _, ok := index[id]; !ok {
				return nil, fmt.Errorf("%w: IDPairs reference %q, which is not in IDs", ErrInvalidInput, id)
			}
		}
	}

	// A pair and its reversal hash to distinct keys, so a duplicate in
	// either orientation (or a self-pair) shrinks the set below 2*len.
	oriented := make(map[[2]string]struct{}, 2*len(idPairs))
	for _, pair := range idPairs {
		oriented[pair] = struct{}{}
		oriented[[2]string{pair[1], pair[0]}] = struct{}{}
	}
	if len(oriented) != 2*len(idPairs) {
		return nil, fmt.Errorf("%w: duplicate ID pairs observed", ErrInvalidInput)
	}

	if fn == nil {
		return nil, fmt.Errorf("%w: restricted pairwise computation requires a resolved metric function", ErrInvalidInput)
	}

	n := len(ids)
	dm := mat.NewDense(n, n, nil)
	for _, pair := range idPairs {
		u, v := index[pair[0]], index[pair[1]]
		dm.Set(u, v, fn(counts[u], counts[v]))
	}

	// Fold into condensed form via M + M^T: each pair wrote exactly one
	// off-diagonal cell, so the sum is the symmetric completion.
	var sym mat.Dense
	sym.Add(dm, dm.T())
	out := make([]float64, condensedLen(n))
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out[k] = sym.At(i, j)
			k++
		}
	}
	return out, nil
}
