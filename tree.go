package diversity

import (
	"fmt"
	"math"
)

// TreeNode is a node in a rooted phylogenetic tree. Tips carry the names
// that abundance columns (OTU IDs) are matched against.
type TreeNode struct {
	// Name is the node label. Required on tips referenced by OTU IDs;
	// optional on internal nodes.
	Name string

	// Length is the branch length to the parent. NaN when the source tree
	// did not specify one; validation rejects NaN on non-root nodes.
	Length float64

	Parent   *TreeNode
	Children []*TreeNode
}

// IsTip reports whether the node has no children.
func (t *TreeNode) IsTip() bool { return len(t.Children) == 0 }

// Postorder returns all nodes in postorder: every node appears after all of
// its descendants, and the root is last. This is the canonical node order
// used for node-level count vectors and branch-length vectors.
func (t *TreeNode) Postorder() []*TreeNode {
	var nodes []*TreeNode
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		for _, c := range n.Children {
			walk(c)
		}
		nodes = append(nodes, n)
	}
	walk(t)
	return nodes
}

// Tips returns the tip nodes in postorder.
func (t *TreeNode) Tips() []*TreeNode {
	var tips []*TreeNode
	for _, n := range t.Postorder() {
		if n.IsTip() {
			tips = append(tips, n)
		}
	}
	return tips
}

// depth returns the sum of branch lengths from the node up to (excluding)
// the root.
func (t *TreeNode) depth() float64 {
	var d float64
	for n := t; n.Parent != nil; n = n.Parent {
		d += n.Length
	}
	return d
}

// validateTree checks the tree/OTU consistency contract: the tree must be
// rooted (bifurcating at the root), every non-root node must carry a finite
// non-negative branch length, tip names must be unique, and every OTU ID
// must name a tip.
func validateTree(tree *TreeNode, otuIDs []string) error {
	if len(tree.Children) != 2 {
		return fmt.Errorf("%w: tree must be rooted (root has %d children, want 2)",
			ErrInvalidInput, len(tree.Children))
	}

	tips := make(map[string]struct{})
	for _, n := range tree.Postorder() {
		if n.Parent != nil {
			if math.IsNaN(n.Length) {
				return fmt.Errorf("%w: node %q has no branch length", ErrInvalidInput, n.Name)
			}
			if math.IsInf(n.Length, 0) || n.Length < 0 {
				return fmt.Errorf("%w: node %q has invalid branch length %v", ErrInvalidInput, n.Name, n.Length)
			}
		}
		if n.IsTip() {
			if _, dup := tips[n.Name]; dup {
				return fmt.Errorf("%w: duplicate tip name %q", ErrLookup, n.Name)
			}
			tips[n.Name] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(otuIDs))
	for _, otu := range otuIDs {
		if _, dup := seen[otu]; dup {
			return fmt.Errorf("%w: duplicate OTU id %q", ErrInvalidInput, otu)
		}
		seen[otu] = struct{}{}
		if _, ok := tips[otu]; !ok {
			return fmt.Errorf("%w: OTU %q is not a tip in the tree", ErrLookup, otu)
		}
	}
	return nil
}
