package diversity

import "fmt"

// AlphaConfig controls AlphaDiversity. The zero value validates input and
// assigns positional sample IDs.
type AlphaConfig struct {
	// IDs are the sample identifiers, one per counts row. Defaults to the
	// row positions rendered as strings.
	IDs []string

	// SkipValidation disables input and tree validation. Validation can be
	// costly on large inputs, but invalid data then produces wrong results
	// or opaque errors, so only skip it when inputs were validated
	// elsewhere.
	SkipValidation bool

	// Func supplies a custom metric. Mutually exclusive with a non-empty
	// metric name; custom functions take no Params (close over any
	// configuration instead).
	Func AlphaMetric

	// Params carries metric-specific parameters. Keys the resolved metric
	// does not recognize are an error.
	Params Params

	// OTUIDs and Tree are required by (and only accepted for) the
	// tree-aware faith_pd metric. OTUIDs name the feature columns and must
	// each resolve to a tip of Tree.
	OTUIDs []string
	Tree   *TreeNode
}

// AlphaDiversity computes the named alpha diversity metric for every sample
// row of counts and returns the scores keyed by sample ID, in row order.
//
// Metric resolution, in priority order: the tree-aware "faith_pd" (requires
// cfg.OTUIDs and cfg.Tree), a custom cfg.Func, then the registry (see
// ListAlphaMetrics). An unrecognized name yields ErrUnknownMetric.
//
// A panicking metric function is not intercepted.
func AlphaDiversity(metric string, counts [][]float64, cfg *AlphaConfig) (*SampleSeries, error) {
	if cfg == nil {
		cfg = &AlphaConfig{}
	}
	if !cfg.SkipValidation {
		if err := validateCounts(counts, cfg.IDs); err != nil {
			return nil, err
		}
	}
	ids := defaultIDs(cfg.IDs, len(counts))

	var fn AlphaMetric
	switch {
	case metric == "faith_pd":
		if cfg.Func != nil {
			return nil, fmt.Errorf("%w: metric %q and Func are mutually exclusive", ErrInvalidInput, metric)
		}
		if cfg.OTUIDs == nil || cfg.Tree == nil {
			return nil, fmt.Errorf("%w: metric %q requires OTUIDs and Tree", ErrInvalidInput, metric)
		}
		if err := checkParams(metric, cfg.Params); err != nil {
			return nil, err
		}
		nodeCounts, brlens, err := countsByNode(counts, cfg.OTUIDs, cfg.Tree, !cfg.SkipValidation)
		if err != nil {
			return nil, err
		}
		counts = nodeCounts
		fn = func(c []float64) float64 { return faithPD(c, brlens) }

	case cfg.Func != nil:
		if metric != "" {
			return nil, fmt.Errorf("%w: metric name %q and Func are mutually exclusive", ErrInvalidInput, metric)
		}
		if len(cfg.Params) != 0 {
			return nil, fmt.Errorf("%w: custom metric functions take no Params", ErrParameter)
		}
		if err := rejectPhylo("a custom metric", cfg.OTUIDs, cfg.Tree); err != nil {
			return nil, err
		}
		fn = cfg.Func

	default:
		binder, ok := alphaMetrics[metric]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
		}
		if err := rejectPhylo(fmt.Sprintf("metric %q", metric), cfg.OTUIDs, cfg.Tree); err != nil {
			return nil, err
		}
		var err error
		fn, err = binder(cfg.Params)
		if err != nil {
			return nil, err
		}
	}

	scores := make([]float64, len(counts))
	for i, row := range counts {
		scores[i] = fn(row)
	}
	return &SampleSeries{IDs: ids, Scores: scores}, nil
}

// AlphaDiversityVector computes a metric for a single sample vector. It is
// the one-row convenience form of AlphaDiversity.
func AlphaDiversityVector(metric string, counts []float64, cfg *AlphaConfig) (float64, error) {
	series, err := AlphaDiversity(metric, [][]float64{counts}, cfg)
	if err != nil {
		return 0, err
	}
	return series.Scores[0], nil
}

// rejectPhylo errors when phylogenetic inputs accompany a metric that takes
// none. Extra configuration is never silently ignored.
func rejectPhylo(what string, otuIDs []string, tree *TreeNode) error {
	if otuIDs != nil || tree != nil {
		return fmt.Errorf("%w: %s does not accept OTUIDs or Tree", ErrParameter, what)
	}
	return nil
}
