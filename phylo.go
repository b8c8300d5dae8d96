package diversity

import (
	"fmt"
	"math"
)

// countsByNode restructures tip-level abundance rows into node-level rows
// against a rooted tree: one output column per tree node in postorder, where
// each node's value is the summed abundance of all tips below it (tips keep
// their own counts, and the root column equals the sample total). The
// returned branch-length vector is positionally aligned with the columns;
// the root contributes length 0 unless the tree specified one.
//
// Every OTU ID must resolve to a tip regardless of the validate flag, since
// silently dropping a column would corrupt the cumulative sums. validate
// additionally runs the full tree consistency checks.
func countsByNode(counts [][]float64, otuIDs []string, tree *TreeNode, validate bool) ([][]float64, []float64, error) {
	if len(counts) > 0 && len(otuIDs) != len(counts[0]) {
		return nil, nil, fmt.Errorf("%w: %d OTU ids for %d features",
			ErrInvalidInput, len(otuIDs), len(counts[0]))
	}
	if validate {
		if err := validateTree(tree, otuIDs); err != nil {
			return nil, nil, err
		}
	}

	nodes := tree.Postorder()
	pos := make(map[*TreeNode]int, len(nodes))
	for i, n := range nodes {
		pos[n] = i
	}

	tipPos := make(map[string]int)
	for _, n := range nodes {
		if n.IsTip() {
			tipPos[n.Name] = pos[n]
		}
	}
	otuPos := make([]int, len(otuIDs))
	for c, otu := range otuIDs {
		i, ok := tipPos[otu]
		if !ok {
			return nil, nil, fmt.Errorf("%w: OTU %q is not a tip in the tree", ErrLookup, otu)
		}
		otuPos[c] = i
	}

	brlens := make([]float64, len(nodes))
	for i, n := range nodes {
		switch {
		case n.Parent == nil && math.IsNaN(n.Length):
			brlens[i] = 0
		default:
			brlens[i] = n.Length
		}
	}

	nodeCounts := make([][]float64, len(counts))
	for s, row := range counts {
		nc := make([]float64, len(nodes))
		for c, v := range row {
			nc[otuPos[c]] = v
		}
		// Postorder guarantees children are filled before their parent.
		for i, n := range nodes {
			for _, child := range n.Children {
				nc[i] += nc[pos[child]]
			}
		}
		nodeCounts[s] = nc
	}
	return nodeCounts, brlens, nil
}

// faithPD returns Faith's phylogenetic diversity for one node-level count
// row: the total branch length of the tree spanned by the observed tips.
func faithPD(nodeCounts, brlens []float64) float64 {
	var pd float64
	for i, v := range nodeCounts {
		if v > 0 {
			pd += brlens[i]
		}
	}
	return pd
}
