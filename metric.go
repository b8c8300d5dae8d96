package diversity

import "fmt"

// AlphaMetric computes a scalar diversity score for a single sample's
// feature counts. Degenerate inputs (e.g., an empty sample for metrics that
// divide by the total count) yield NaN rather than an error.
type AlphaMetric func(counts []float64) float64

// DistanceFunc computes a dissimilarity between two samples' feature counts.
// Both slices have equal length; implementations must not modify them.
type DistanceFunc func(x, y []float64) float64

// Params carries metric-specific numeric parameters by name, e.g.
// Params{"base": 10} for shannon or Params{"p": 3} for minkowski.
//
// Parameters are bound once when the metric name is resolved. A key the
// resolved metric does not recognize is an error (ErrParameter), never
// silently ignored. Boolean parameters (e.g. chao1's "bias_corrected") are
// encoded as 0 (false) or non-zero (true).
type Params map[string]float64

// get returns the value for key, or def if the key is absent.
func (p Params) get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// checkParams rejects any key of p outside the recognized set for metric.
func checkParams(metric string, p Params, recognized ...string) error {
	for key := range p {
		ok := false
		for _, r := range recognized {
			if key == r {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: metric %q does not accept parameter %q", ErrParameter, metric, key)
		}
	}
	return nil
}

// errParamValue reports a recognized parameter carrying an out-of-range value.
func errParamValue(metric, key string, v float64) error {
	return fmt.Errorf("%w: metric %q parameter %q has invalid value %v", ErrParameter, metric, key, v)
}

// alphaBinder resolves Params into a ready-to-call AlphaMetric.
type alphaBinder func(p Params) (AlphaMetric, error)

// betaBinder resolves Params into a ready-to-call DistanceFunc.
type betaBinder func(p Params) (DistanceFunc, error)

// fixedAlpha wraps a parameterless alpha metric into a binder that rejects
// every parameter.
func fixedAlpha(name string, fn AlphaMetric) alphaBinder {
	return func(p Params) (AlphaMetric, error) {
		if err := checkParams(name, p); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

// fixedBeta wraps a parameterless distance function into a binder that
// rejects every parameter.
func fixedBeta(name string, fn DistanceFunc) betaBinder {
	return func(p Params) (DistanceFunc, error) {
		if err := checkParams(name, p); err != nil {
			return nil, err
		}
		return fn, nil
	}
}
