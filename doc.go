// Package diversity computes ecological diversity statistics over
// sample-by-feature abundance tables: per-sample alpha diversity scores and
// pairwise beta diversity dissimilarities, including phylogenetically aware
// metrics (Faith's PD, UniFrac) that restructure abundances against a
// rooted tree.
//
// Alpha diversity:
//
//	counts := [][]float64{{1, 3}, {1, 1}, {0, 1}}
//	series, err := diversity.AlphaDiversity("observed_otus", counts,
//		&diversity.AlphaConfig{IDs: []string{"s1", "s2", "s3"}})
//	// series.Scores is one scalar per sample, in row order
//
// Beta diversity:
//
//	dm, err := diversity.BetaDiversity("braycurtis", counts,
//		&diversity.BetaConfig{IDs: []string{"s1", "s2", "s3"}})
//	// dm is symmetric with a zero diagonal; dm.Between("s1", "s3")
//
// Tree-aware metrics take the feature-to-tip mapping and the tree through
// the config:
//
//	tree, _ := diversity.ParseNewick("((o1:0.5,o2:0.5):1,(o3:1,o4:1):0.5):0;")
//	dm, err := diversity.BetaDiversity("weighted_unifrac", counts,
//		&diversity.BetaConfig{
//			IDs:        ids,
//			OTUIDs:     []string{"o1", "o2", "o3", "o4"},
//			Tree:       tree,
//			Normalized: true,
//		})
//
// # Pairwise backends
//
// BetaDiversity computes all sample pairs by default. Set BetaConfig.Workers
// to parallelize the default backend, supply a PairwiseFunc to replace it,
// or set IDPairs to compute only a chosen subset of pairs (unlisted pairs
// read as 0, meaning "not computed").
//
// ListAlphaMetrics and ListBetaMetrics enumerate the registered metric
// names; custom metrics plug in through AlphaConfig.Func and
// BetaConfig.Func.
package diversity
