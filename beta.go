package diversity

import "fmt"

// BetaConfig controls BetaDiversity. The zero value validates input,
// assigns positional sample IDs, and computes all pairs serially with the
// default backend.
type BetaConfig struct {
	// IDs are the sample identifiers, one per counts row. Defaults to the
	// row positions rendered as strings. Must be caller-supplied when
	// IDPairs is used.
	IDs []string

	// SkipValidation disables input and tree validation. See
	// AlphaConfig.SkipValidation.
	SkipValidation bool

	// Func supplies a custom pairwise metric. Mutually exclusive with a
	// non-empty metric name; custom functions take no Params.
	Func DistanceFunc

	// Params carries metric-specific parameters (e.g. Params{"p": 3} for
	// minkowski). Keys the resolved metric does not recognize are an error.
	Params Params

	// OTUIDs and Tree are required by (and only accepted for) the
	// tree-aware UniFrac metrics. OTUIDs name the feature columns and must
	// each resolve to a tip of Tree.
	OTUIDs []string
	Tree   *TreeNode

	// Normalized scales weighted_unifrac into [0, 1]. Only accepted for
	// that metric. Default false.
	Normalized bool

	// PairwiseFunc replaces the default all-pairs backend. Mutually
	// exclusive with IDPairs.
	PairwiseFunc PairwiseFunc

	// IDPairs restricts computation to the given sample-ID pairs; every
	// pair not listed reads as 0 in the result, meaning "not computed"
	// rather than "zero distance". Pairs must reference members of IDs,
	// and no pair may appear twice in either orientation.
	IDPairs [][2]string

	// Workers sets the number of goroutines used by the default all-pairs
	// backend. <= 1 means serial. Ignored for custom backends and IDPairs.
	Workers int
}

// BetaDiversity computes distances between all pairs of sample rows (or the
// pairs named by cfg.IDPairs) and returns a symmetric, zero-diagonal
// DistanceMatrix keyed by sample ID.
//
// Metric resolution, in priority order: the tree-aware "unweighted_unifrac"
// and "weighted_unifrac" (require cfg.OTUIDs and cfg.Tree), a custom
// cfg.Func, then the registry (see ListBetaMetrics). An unrecognized name
// yields ErrUnknownMetric.
func BetaDiversity(metric string, counts [][]float64, cfg *BetaConfig) (*DistanceMatrix, error) {
	if cfg == nil {
		cfg = &BetaConfig{}
	}
	if !cfg.SkipValidation {
		if err := validateCounts(counts, cfg.IDs); err != nil {
			return nil, err
		}
	}
	ids := defaultIDs(cfg.IDs, len(counts))

	var fn DistanceFunc
	switch {
	case metric == "unweighted_unifrac" || metric == "weighted_unifrac":
		if cfg.Func != nil {
			return nil, fmt.Errorf("%w: metric %q and Func are mutually exclusive", ErrInvalidInput, metric)
		}
		if cfg.OTUIDs == nil || cfg.Tree == nil {
			return nil, fmt.Errorf("%w: metric %q requires OTUIDs and Tree", ErrInvalidInput, metric)
		}
		if err := checkParams(metric, cfg.Params); err != nil {
			return nil, err
		}

		var nodeCounts [][]float64
		var err error
		if metric == "weighted_unifrac" {
			fn, nodeCounts, err = setupWeightedUniFrac(counts, cfg.OTUIDs, cfg.Tree, cfg.Normalized, !cfg.SkipValidation)
		} else {
			if cfg.Normalized {
				return nil, fmt.Errorf("%w: metric %q does not accept Normalized", ErrParameter, metric)
			}
			fn, nodeCounts, err = setupUnweightedUniFrac(counts, cfg.OTUIDs, cfg.Tree, !cfg.SkipValidation)
		}
		if err != nil {
			return nil, err
		}
		counts = nodeCounts

	case cfg.Func != nil:
		if metric != "" {
			return nil, fmt.Errorf("%w: metric name %q and Func are mutually exclusive", ErrInvalidInput, metric)
		}
		if len(cfg.Params) != 0 {
			return nil, fmt.Errorf("%w: custom metric functions take no Params", ErrParameter)
		}
		if err := rejectBetaExtras("a custom metric", cfg); err != nil {
			return nil, err
		}
		fn = cfg.Func

	default:
		binder, ok := betaMetrics[metric]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
		}
		if err := rejectBetaExtras(fmt.Sprintf("metric %q", metric), cfg); err != nil {
			return nil, err
		}
		var err error
		fn, err = binder(cfg.Params)
		if err != nil {
			return nil, err
		}
	}

	if cfg.IDPairs != nil && cfg.PairwiseFunc != nil {
		return nil, fmt.Errorf("%w: PairwiseFunc is not compatible with IDPairs", ErrInvalidInput)
	}

	var condensed []float64
	var err error
	switch {
	case cfg.IDPairs != nil:
		// cfg.IDs, not the positional defaults: a restricted computation
		// is meaningless without caller-known identifiers.
		condensed, err = partialPairwise(cfg.IDs, cfg.IDPairs, counts, fn)
	case cfg.PairwiseFunc != nil:
		condensed, err = cfg.PairwiseFunc(counts, fn)
	case cfg.Workers > 1:
		condensed, err = PdistParallel(counts, fn, cfg.Workers)
	default:
		condensed, err = Pdist(counts, fn)
	}
	if err != nil {
		return nil, err
	}
	return NewDistanceMatrix(condensed, ids)
}

// rejectBetaExtras errors when tree inputs or the Normalized flag accompany
// a metric that takes neither.
func rejectBetaExtras(what string, cfg *BetaConfig) error {
	if cfg.OTUIDs != nil || cfg.Tree != nil {
		return fmt.Errorf("%w: %s does not accept OTUIDs or Tree", ErrParameter, what)
	}
	if cfg.Normalized {
		return fmt.Errorf("%w: %s does not accept Normalized", ErrParameter, what)
	}
	return nil
}
