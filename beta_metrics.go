package diversity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// betaMetrics maps every registered beta metric name to its parameter
// binder. Populated once, never mutated. The two UniFrac metrics are absent
// on purpose: they need a phylogenetic tree and are dispatched before the
// registry is consulted (see BetaDiversity).
var betaMetrics = map[string]betaBinder{
	"braycurtis":  fixedBeta("braycurtis", BrayCurtis),
	"canberra":    fixedBeta("canberra", Canberra),
	"chebyshev":   fixedBeta("chebyshev", Chebyshev),
	"cityblock":   fixedBeta("cityblock", CityBlock),
	"correlation": fixedBeta("correlation", Correlation),
	"cosine":      fixedBeta("cosine", Cosine),
	"euclidean":   fixedBeta("euclidean", Euclidean),
	"hamming":     fixedBeta("hamming", Hamming),
	"jaccard":     fixedBeta("jaccard", Jaccard),
	"manhattan":   fixedBeta("manhattan", CityBlock),
	"sqeuclidean": fixedBeta("sqeuclidean", SqEuclidean),

	"minkowski": func(p Params) (DistanceFunc, error) {
		if err := checkParams("minkowski", p, "p"); err != nil {
			return nil, err
		}
		order := p.get("p", 2)
		if order < 1 {
			return nil, errParamValue("minkowski", "p", order)
		}
		return func(x, y []float64) float64 { return floats.Distance(x, y, order) }, nil
	},
}

// ListBetaMetrics returns the sorted names accepted as the metric argument
// of BetaDiversity, including the two tree-aware UniFrac metrics.
func ListBetaMetrics() []string {
	names := make([]string, 0, len(betaMetrics)+2)
	for name := range betaMetrics {
		names = append(names, name)
	}
	names = append(names, "unweighted_unifrac", "weighted_unifrac")
	sort.Strings(names)
	return names
}

// Euclidean returns the L2 distance between two count vectors.
func Euclidean(x, y []float64) float64 { return floats.Distance(x, y, 2) }

// SqEuclidean returns the squared L2 distance.
func SqEuclidean(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return d * d
}

// CityBlock returns the L1 (Manhattan) distance.
func CityBlock(x, y []float64) float64 { return floats.Distance(x, y, 1) }

// Chebyshev returns the L-infinity distance.
func Chebyshev(x, y []float64) float64 { return floats.Distance(x, y, math.Inf(1)) }

// BrayCurtis returns the Bray-Curtis dissimilarity:
// sum|x-y| / sum(x+y). Zero when both samples are empty.
func BrayCurtis(x, y []float64) float64 {
	var num, den float64
	for i := range x {
		num += math.Abs(x[i] - y[i])
		den += x[i] + y[i]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Canberra returns the Canberra distance. Coordinates where both entries are
// zero contribute nothing.
func Canberra(x, y []float64) float64 {
	var sum float64
	for i := range x {
		den := math.Abs(x[i]) + math.Abs(y[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(x[i]-y[i]) / den
	}
	return sum
}

// Cosine returns the cosine distance, 1 - cos(x, y). NaN when either vector
// is all zeros.
func Cosine(x, y []float64) float64 {
	return 1 - floats.Dot(x, y)/(floats.Norm(x, 2)*floats.Norm(y, 2))
}

// Correlation returns 1 minus the Pearson correlation of the two vectors.
func Correlation(x, y []float64) float64 {
	return 1 - stat.Correlation(x, y, nil)
}

// Hamming returns the fraction of coordinates at which the vectors disagree.
func Hamming(x, y []float64) float64 {
	var n float64
	for i := range x {
		if x[i] != y[i] {
			n++
		}
	}
	return n / float64(len(x))
}

// Jaccard returns the presence/absence Jaccard distance: the fraction of
// features observed in either sample that are not observed in both. Zero
// when neither sample observed anything.
func Jaccard(x, y []float64) float64 {
	var diff, union float64
	for i := range x {
		px, py := x[i] > 0, y[i] > 0
		if px || py {
			union++
			if px != py {
				diff++
			}
		}
	}
	if union == 0 {
		return 0
	}
	return diff / union
}
