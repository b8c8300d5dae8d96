package diversity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphaDiversityObservedOTUs(t *testing.T) {
	counts := [][]float64{{1, 3}, {1, 1}, {0, 1}}
	ids := []string{"s1", "s2", "s3"}

	series, err := AlphaDiversity("observed_otus", counts, &AlphaConfig{IDs: ids})
	require.NoError(t, err)

	require.Equal(t, ids, series.IDs)
	require.Equal(t, []float64{2, 2, 1}, series.Scores)

	score, ok := series.Score("s3")
	require.True(t, ok)
	require.Equal(t, 1.0, score)

	_, ok = series.Score("nope")
	require.False(t, ok)
}

func TestAlphaDiversityDefaultIDs(t *testing.T) {
	series, err := AlphaDiversity("shannon", [][]float64{{1, 1}, {4, 0}}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, series.IDs)
	require.Len(t, series.Scores, 2)
}

func TestAlphaDiversityAllRegistryMetrics(t *testing.T) {
	counts := [][]float64{
		{1, 3, 0, 2, 5},
		{2, 2, 2, 2, 2},
		{0, 0, 1, 0, 9},
	}
	for _, name := range ListAlphaMetrics() {
		if name == "faith_pd" {
			continue
		}
		series, err := AlphaDiversity(name, counts, nil)
		require.NoError(t, err, "metric %s", name)
		require.Len(t, series.Scores, len(counts), "metric %s", name)
	}
}

func TestAlphaDiversityUnknownMetric(t *testing.T) {
	_, err := AlphaDiversity("not_a_metric", [][]float64{{1, 2}}, nil)
	require.ErrorIs(t, err, ErrUnknownMetric)
	require.ErrorContains(t, err, "not_a_metric")
}

func TestAlphaDiversityParams(t *testing.T) {
	counts := [][]float64{{2, 2, 2, 2}}

	series, err := AlphaDiversity("shannon", counts, &AlphaConfig{Params: Params{"base": 4}})
	require.NoError(t, err)
	require.InDelta(t, 1.0, series.Scores[0], metricTolerance)

	// Unrecognized parameters are rejected, never dropped.
	_, err = AlphaDiversity("shannon", counts, &AlphaConfig{Params: Params{"bogus": 1}})
	require.ErrorIs(t, err, ErrParameter)

	_, err = AlphaDiversity("observed_otus", counts, &AlphaConfig{Params: Params{"base": 2}})
	require.ErrorIs(t, err, ErrParameter)
}

func TestAlphaDiversityCustomFunc(t *testing.T) {
	counts := [][]float64{{1, 3}, {0, 1}}
	totals := func(c []float64) float64 {
		var s float64
		for _, v := range c {
			s += v
		}
		return s
	}

	series, err := AlphaDiversity("", counts, &AlphaConfig{Func: totals})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 1}, series.Scores)

	// A name and a custom function cannot both be supplied.
	_, err = AlphaDiversity("shannon", counts, &AlphaConfig{Func: totals})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Custom functions close over configuration; Params stay rejected.
	_, err = AlphaDiversity("", counts, &AlphaConfig{Func: totals, Params: Params{"base": 2}})
	require.ErrorIs(t, err, ErrParameter)
}

func TestAlphaDiversityFaithPDRequiresTree(t *testing.T) {
	counts := [][]float64{{1, 2}}

	_, err := AlphaDiversity("faith_pd", counts, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = AlphaDiversity("faith_pd", counts, &AlphaConfig{OTUIDs: []string{"a", "b"}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAlphaDiversityRejectsTreeForPlainMetrics(t *testing.T) {
	tree, err := ParseNewick("((a:1,b:1):1,(c:1,d:1):1):0;")
	require.NoError(t, err)

	_, err = AlphaDiversity("shannon", [][]float64{{1, 2}}, &AlphaConfig{
		OTUIDs: []string{"a", "b"},
		Tree:   tree,
	})
	require.ErrorIs(t, err, ErrParameter)
}

func TestAlphaDiversityFaithPD(t *testing.T) {
	tree, err := ParseNewick("((a:1,b:1):1,(c:1,d:1):1):0;")
	require.NoError(t, err)

	counts := [][]float64{
		{1, 2, 0, 3},
		{1, 1, 1, 1},
	}
	series, err := AlphaDiversity("faith_pd", counts, &AlphaConfig{
		IDs:    []string{"s1", "s2"},
		OTUIDs: []string{"a", "b", "c", "d"},
		Tree:   tree,
	})
	require.NoError(t, err)
	require.InDelta(t, 5.0, series.Scores[0], metricTolerance)
	require.InDelta(t, 6.0, series.Scores[1], metricTolerance)
}

func TestAlphaDiversityValidation(t *testing.T) {
	_, err := AlphaDiversity("shannon", [][]float64{{1, -2}}, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Validation can be skipped when inputs were checked elsewhere.
	series, err := AlphaDiversity("observed_otus", [][]float64{{1, 0}}, &AlphaConfig{SkipValidation: true})
	require.NoError(t, err)
	require.Equal(t, []float64{1}, series.Scores)
}

func TestAlphaDiversityVector(t *testing.T) {
	got, err := AlphaDiversityVector("simpson", []float64{1, 3}, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.375, got, metricTolerance)
}

func TestAlphaDiversityNaNPropagation(t *testing.T) {
	// Degenerate samples yield NaN from the metric, not an error.
	series, err := AlphaDiversity("pielou_e", [][]float64{{0, 7, 0}}, nil)
	require.NoError(t, err)
	require.True(t, math.IsNaN(series.Scores[0]))
}
