package diversity

import "math"

// setupUnweightedUniFrac restructures counts against the tree and returns a
// pairwise function bound to the node branch lengths, together with the
// node-level counts the function must be applied to. Both UniFrac setups
// share the countsByNode adapter with the faith_pd alpha path.
func setupUnweightedUniFrac(counts [][]float64, otuIDs []string, tree *TreeNode, validate bool) (DistanceFunc, [][]float64, error) {
	nodeCounts, brlens, err := countsByNode(counts, otuIDs, tree, validate)
	if err != nil {
		return nil, nil, err
	}
	fn := func(u, v []float64) float64 { return unweightedUniFrac(u, v, brlens) }
	return fn, nodeCounts, nil
}

// setupWeightedUniFrac is the weighted counterpart of
// setupUnweightedUniFrac. With normalized set, distances are scaled by the
// abundance-weighted tip-to-root distance so results lie in [0, 1].
func setupWeightedUniFrac(counts [][]float64, otuIDs []string, tree *TreeNode, normalized, validate bool) (DistanceFunc, [][]float64, error) {
	nodeCounts, brlens, err := countsByNode(counts, otuIDs, tree, validate)
	if err != nil {
		return nil, nil, err
	}

	// Tip-to-root distances, aligned with the node order; internal nodes
	// stay 0 and therefore never contribute to the normalization term.
	var tipDepths []float64
	if normalized {
		tipDepths = make([]float64, len(brlens))
		for i, n := range tree.Postorder() {
			if n.IsTip() {
				tipDepths[i] = n.depth()
			}
		}
	}

	fn := func(u, v []float64) float64 {
		return weightedUniFrac(u, v, brlens, tipDepths, normalized)
	}
	return fn, nodeCounts, nil
}

// unweightedUniFrac returns the fraction of branch length unique to one of
// the two samples, over the branch length covered by either. Zero when
// neither sample observed anything.
func unweightedUniFrac(u, v, brlens []float64) float64 {
	var unique, total float64
	for i, b := range brlens {
		pu, pv := u[i] > 0, v[i] > 0
		if !pu && !pv {
			continue
		}
		total += b
		if pu != pv {
			unique += b
		}
	}
	if total == 0 {
		return 0
	}
	return unique / total
}

// weightedUniFrac returns the branch-length-weighted difference in relative
// abundance between two node-level count rows. The root column is the last
// postorder position and holds each sample's total count.
func weightedUniFrac(u, v, brlens, tipDepths []float64, normalized bool) float64 {
	uTotal := u[len(u)-1]
	vTotal := v[len(v)-1]

	prop := func(x, total float64) float64 {
		if total == 0 {
			return 0
		}
		return x / total
	}

	var sum float64
	for i, b := range brlens {
		sum += b * math.Abs(prop(u[i], uTotal)-prop(v[i], vTotal))
	}
	if !normalized {
		return sum
	}

	var den float64
	for i, d := range tipDepths {
		den += d * (prop(u[i], uTotal) + prop(v[i], vTotal))
	}
	if den == 0 {
		return 0
	}
	return sum / den
}
