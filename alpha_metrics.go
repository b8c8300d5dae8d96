package diversity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// alphaMetrics maps every registered alpha metric name to its parameter
// binder. The map is populated once at init and never mutated afterwards.
// faith_pd is absent on purpose: it needs a phylogenetic tree and is
// dispatched before the registry is consulted (see AlphaDiversity).
var alphaMetrics = map[string]alphaBinder{
	"berger_parker_d": fixedAlpha("berger_parker_d", BergerParkerD),
	"brillouin_d":     fixedAlpha("brillouin_d", BrillouinD),
	"dominance":       fixedAlpha("dominance", Dominance),
	"doubles":         fixedAlpha("doubles", Doubles),
	"enspie":          fixedAlpha("enspie", ENSPIE),
	"fisher_alpha":    fixedAlpha("fisher_alpha", FisherAlpha),
	"gini_index":      fixedAlpha("gini_index", GiniIndex),
	"goods_coverage":  fixedAlpha("goods_coverage", GoodsCoverage),
	"heip_e":          fixedAlpha("heip_e", HeipE),
	"margalef":        fixedAlpha("margalef", Margalef),
	"mcintosh_d":      fixedAlpha("mcintosh_d", McIntoshD),
	"mcintosh_e":      fixedAlpha("mcintosh_e", McIntoshE),
	"menhinick":       fixedAlpha("menhinick", Menhinick),
	"observed_otus":   fixedAlpha("observed_otus", ObservedOTUs),
	"pielou_e":        fixedAlpha("pielou_e", PielouE),
	"robbins":         fixedAlpha("robbins", Robbins),
	"simpson":         fixedAlpha("simpson", Simpson),
	"simpson_e":       fixedAlpha("simpson_e", SimpsonE),
	"singles":         fixedAlpha("singles", Singles),
	"strong":          fixedAlpha("strong", Strong),

	"ace": func(p Params) (AlphaMetric, error) {
		if err := checkParams("ace", p, "rare_threshold"); err != nil {
			return nil, err
		}
		thr := p.get("rare_threshold", 10)
		return func(counts []float64) float64 { return ACE(counts, thr) }, nil
	},
	"chao1": func(p Params) (AlphaMetric, error) {
		if err := checkParams("chao1", p, "bias_corrected"); err != nil {
			return nil, err
		}
		corrected := p.get("bias_corrected", 1) != 0
		return func(counts []float64) float64 { return Chao1(counts, corrected) }, nil
	},
	"kempton_taylor_q": func(p Params) (AlphaMetric, error) {
		if err := checkParams("kempton_taylor_q", p, "lower_quantile", "upper_quantile"); err != nil {
			return nil, err
		}
		lower := p.get("lower_quantile", 0.25)
		upper := p.get("upper_quantile", 0.75)
		return func(counts []float64) float64 { return KemptonTaylorQ(counts, lower, upper) }, nil
	},
	"shannon": func(p Params) (AlphaMetric, error) {
		if err := checkParams("shannon", p, "base"); err != nil {
			return nil, err
		}
		base := p.get("base", 2)
		return func(counts []float64) float64 { return Shannon(counts, base) }, nil
	},
}

// ListAlphaMetrics returns the sorted names accepted as the metric argument
// of AlphaDiversity. The tree-aware faith_pd is included even though it is
// not a registry entry.
func ListAlphaMetrics() []string {
	names := make([]string, 0, len(alphaMetrics)+1)
	for name := range alphaMetrics {
		names = append(names, name)
	}
	names = append(names, "faith_pd")
	sort.Strings(names)
	return names
}

// observed returns the number of features with non-zero counts.
func observed(counts []float64) float64 {
	var s float64
	for _, v := range counts {
		if v > 0 {
			s++
		}
	}
	return s
}

// frequency returns the number of features observed exactly k times.
// Count-based estimators assume integral abundances.
func frequency(counts []float64, k float64) float64 {
	var s float64
	for _, v := range counts {
		if v == k {
			s++
		}
	}
	return s
}

// ObservedOTUs returns the number of distinct features observed (richness).
func ObservedOTUs(counts []float64) float64 { return observed(counts) }

// Singles returns the number of features observed exactly once.
func Singles(counts []float64) float64 { return frequency(counts, 1) }

// Doubles returns the number of features observed exactly twice.
func Doubles(counts []float64) float64 { return frequency(counts, 2) }

// Dominance returns the Simpson dominance index: the probability that two
// individuals drawn with replacement belong to the same feature.
func Dominance(counts []float64) float64 {
	total := floats.Sum(counts)
	var d float64
	for _, v := range counts {
		p := v / total
		d += p * p
	}
	return d
}

// Simpson returns the Simpson diversity index, 1 - dominance.
func Simpson(counts []float64) float64 { return 1 - Dominance(counts) }

// ENSPIE returns the effective number of species derived from the
// probability of intraspecific encounter: 1 / dominance.
func ENSPIE(counts []float64) float64 { return 1 / Dominance(counts) }

// SimpsonE returns Simpson's evenness: ENS_PIE divided by observed richness.
func SimpsonE(counts []float64) float64 { return ENSPIE(counts) / observed(counts) }

// BergerParkerD returns the fraction of the sample accounted for by the most
// abundant feature.
func BergerParkerD(counts []float64) float64 {
	return floats.Max(counts) / floats.Sum(counts)
}

// BrillouinD returns Brillouin's index: (ln N! - sum ln n_i!) / N, computed
// with log-gamma to stay stable for large counts.
func BrillouinD(counts []float64) float64 {
	total := floats.Sum(counts)
	nf, _ := math.Lgamma(total + 1)
	var sum float64
	for _, v := range counts {
		if v > 0 {
			lg, _ := math.Lgamma(v + 1)
			sum += lg
		}
	}
	return (nf - sum) / total
}

// Shannon returns the Shannon entropy of the sample's relative abundances in
// the given logarithm base (2 yields bits, e yields nats).
func Shannon(counts []float64, base float64) float64 {
	total := floats.Sum(counts)
	p := make([]float64, len(counts))
	for i, v := range counts {
		p[i] = v / total
	}
	return stat.Entropy(p) / math.Log(base)
}

// PielouE returns Pielou's evenness: Shannon entropy scaled by the maximum
// entropy attainable at the observed richness. NaN for single-feature
// samples (0/0).
func PielouE(counts []float64) float64 {
	return Shannon(counts, math.E) / math.Log(observed(counts))
}

// HeipE returns Heip's evenness: (e^H - 1) / (S - 1) with H in nats.
func HeipE(counts []float64) float64 {
	return (math.Exp(Shannon(counts, math.E)) - 1) / (observed(counts) - 1)
}

// Margalef returns Margalef's richness index: (S - 1) / ln N.
func Margalef(counts []float64) float64 {
	return (observed(counts) - 1) / math.Log(floats.Sum(counts))
}

// Menhinick returns Menhinick's richness index: S / sqrt(N).
func Menhinick(counts []float64) float64 {
	return observed(counts) / math.Sqrt(floats.Sum(counts))
}

// McIntoshD returns McIntosh dominance: (N - U) / (N - sqrt(N)) where U is
// the Euclidean norm of the counts vector.
func McIntoshD(counts []float64) float64 {
	total := floats.Sum(counts)
	u := math.Sqrt(floats.Dot(counts, counts))
	return (total - u) / (total - math.Sqrt(total))
}

// McIntoshE returns McIntosh evenness:
// U / sqrt((N - S + 1)^2 + S - 1).
func McIntoshE(counts []float64) float64 {
	total := floats.Sum(counts)
	s := observed(counts)
	u := math.Sqrt(floats.Dot(counts, counts))
	return u / math.Sqrt((total-s+1)*(total-s+1)+s-1)
}

// GoodsCoverage returns Good's coverage estimator: 1 - F1/N, the estimated
// fraction of the community represented in the sample.
func GoodsCoverage(counts []float64) float64 {
	return 1 - Singles(counts)/floats.Sum(counts)
}

// Robbins returns the Robbins (1968) estimator of the probability of an
// unobserved feature: F1 / (N + 1).
func Robbins(counts []float64) float64 {
	return Singles(counts) / (floats.Sum(counts) + 1)
}

// Strong returns Strong's dominance index: the maximum departure of the
// cumulative abundance curve from the evenness diagonal.
func Strong(counts []float64) float64 {
	total := floats.Sum(counts)
	s := observed(counts)
	sorted := append([]float64(nil), counts...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	var cum, maxD float64
	for i, v := range sorted {
		cum += v
		if d := cum/total - float64(i+1)/s; d > maxD {
			maxD = d
		}
	}
	return maxD
}

// GiniIndex returns the Gini inequality index of the counts distribution,
// computed from the Lorenz curve with trapezoidal integration. 0 means
// perfectly even, values approach 1 as a single feature dominates.
func GiniIndex(counts []float64) float64 {
	n := len(counts)
	total := floats.Sum(counts)
	sorted := append([]float64(nil), counts...)
	sort.Float64s(sorted)

	var cum, area, prev float64
	for _, v := range sorted {
		cum += v
		y := cum / total
		area += (prev + y) / (2 * float64(n))
		prev = y
	}
	return 1 - 2*area
}

// FisherAlpha returns Fisher's alpha, the a of the logseries model solving
// S = a * ln(1 + N/a). Solved by bracketing bisection; NaN when no finite
// solution exists (e.g., every feature a singleton).
func FisherAlpha(counts []float64) float64 {
	total := floats.Sum(counts)
	s := observed(counts)
	if s <= 0 || total <= 0 || s >= total {
		return math.NaN()
	}

	f := func(a float64) float64 { return a*math.Log(1+total/a) - s }

	lo, hi := 1e-12, 1.0
	for f(hi) < 0 {
		hi *= 2
		if hi > 1e12 {
			return math.NaN()
		}
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// KemptonTaylorQ returns the Kempton-Taylor Q index: the slope of the
// cumulative abundance curve between the given quantiles (defaults in the
// registry: 0.25 and 0.75).
func KemptonTaylorQ(counts []float64, lowerQuantile, upperQuantile float64) float64 {
	n := len(counts)
	sorted := append([]float64(nil), counts...)
	sort.Float64s(sorted)

	lower := int(math.Ceil(float64(n) * lowerQuantile))
	upper := int(float64(n) * upperQuantile)
	if lower < 0 || upper >= n || sorted[lower] <= 0 {
		return math.NaN()
	}
	return float64(upper-lower) / math.Log(sorted[upper]/sorted[lower])
}

// Chao1 returns the Chao1 richness estimator. With biasCorrected (the
// registry default), or whenever F1 or F2 is zero, the small-sample form
// S + F1*(F1-1) / (2*(F2+1)) is used; otherwise the classic S + F1^2/(2*F2).
func Chao1(counts []float64, biasCorrected bool) float64 {
	s := observed(counts)
	f1 := Singles(counts)
	f2 := Doubles(counts)

	if biasCorrected || f1 == 0 || f2 == 0 {
		return s + f1*(f1-1)/(2*(f2+1))
	}
	return s + f1*f1/(2*f2)
}

// ACE returns the abundance-based coverage estimator of richness. Features
// with counts at or below rareThreshold (registry default 10) form the rare
// group used to estimate sample coverage. NaN when the rare group consists
// entirely of singletons (coverage estimate is zero).
func ACE(counts []float64, rareThreshold float64) float64 {
	var sRare, sAbund, nRare float64
	for _, v := range counts {
		switch {
		case v > rareThreshold:
			sAbund++
		case v > 0:
			sRare++
			nRare += v
		}
	}
	if sRare == 0 {
		return sAbund
	}

	f1 := Singles(counts)
	if f1 == nRare {
		return math.NaN()
	}
	cAce := 1 - f1/nRare

	var sumIF float64
	for i := 1.0; i <= rareThreshold; i++ {
		sumIF += i * (i - 1) * frequency(counts, i)
	}
	gamma := sRare/cAce*sumIF/(nRare*(nRare-1)) - 1
	if gamma < 0 {
		gamma = 0
	}
	return sAbund + sRare/cAce + f1/cAce*gamma
}
