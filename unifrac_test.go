package diversity

import (
	"testing"
)

func TestUnweightedUniFrac(t *testing.T) {
	tree := testTree(t)
	otus := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		u, v []float64
		want float64
	}{
		// Disjoint clades: every branch with any cover is unique to one side.
		{"disjoint", []float64{1, 1, 0, 0}, []float64{0, 0, 1, 1}, 1},
		{"identical", []float64{1, 1, 0, 0}, []float64{2, 5, 0, 0}, 0},
		// u covers a+b (branches a,b,ab), v covers a only. Shared: a, ab.
		// Unique: b. Covered: a, b, ab -> 1/3.
		{"nested", []float64{1, 1, 0, 0}, []float64{1, 0, 0, 0}, 1.0 / 3},
		{"both empty", []float64{0, 0, 0, 0}, []float64{0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm, err := BetaDiversity("unweighted_unifrac", [][]float64{tt.u, tt.v}, &BetaConfig{
				IDs:    []string{"u", "v"},
				OTUIDs: otus,
				Tree:   tree,
			})
			if err != nil {
				t.Fatal(err)
			}
			got, err := dm.Between("u", "v")
			if err != nil {
				t.Fatal(err)
			}
			if !almostEqual(got, tt.want, metricTolerance) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeightedUniFrac(t *testing.T) {
	tree := testTree(t)
	otus := []string{"a", "b", "c", "d"}
	u := []float64{1, 1, 0, 0}
	v := []float64{0, 0, 1, 1}

	// Unnormalized: sum over nodes of brlen * |u_prop - v_prop|.
	// a: 1*0.5, b: 1*0.5, ab: 1*1, c: 1*0.5, d: 1*0.5, cd: 1*1, root: 0.
	dm, err := BetaDiversity("weighted_unifrac", [][]float64{u, v}, &BetaConfig{
		IDs:    []string{"u", "v"},
		OTUIDs: otus,
		Tree:   tree,
	})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := dm.Between("u", "v")
	if !almostEqual(got, 4, metricTolerance) {
		t.Errorf("unnormalized: got %v, want 4", got)
	}

	// Normalized by abundance-weighted tip depths (2 per tip here): the
	// maximally distinct pair lands exactly at 1.
	dm, err = BetaDiversity("weighted_unifrac", [][]float64{u, v}, &BetaConfig{
		IDs:        []string{"u", "v"},
		OTUIDs:     otus,
		Tree:       tree,
		Normalized: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	got, _ = dm.Between("u", "v")
	if !almostEqual(got, 1, metricTolerance) {
		t.Errorf("normalized: got %v, want 1", got)
	}
}

func TestWeightedUniFracNormalizedRange(t *testing.T) {
	tree := testTree(t)
	otus := []string{"a", "b", "c", "d"}
	counts := [][]float64{
		{1, 3, 0, 2},
		{0, 1, 4, 1},
		{2, 2, 2, 2},
		{5, 0, 0, 1},
	}

	dm, err := BetaDiversity("weighted_unifrac", counts, &BetaConfig{
		OTUIDs:     otus,
		Tree:       tree,
		Normalized: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range dm.Condensed() {
		if d < 0 || d > 1 {
			t.Errorf("normalized distance %v outside [0, 1]", d)
		}
	}
}

func TestWeightedUniFracIdentical(t *testing.T) {
	tree := testTree(t)
	otus := []string{"a", "b", "c", "d"}
	// Proportionally identical samples are at distance 0.
	counts := [][]float64{{1, 2, 1, 0}, {2, 4, 2, 0}}

	for _, normalized := range []bool{false, true} {
		dm, err := BetaDiversity("weighted_unifrac", counts, &BetaConfig{
			OTUIDs:     otus,
			Tree:       tree,
			Normalized: normalized,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := dm.At(0, 1); !almostEqual(got, 0, metricTolerance) {
			t.Errorf("normalized=%v: got %v, want 0", normalized, got)
		}
	}
}
