package supportfn

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

// ErrDimensionMismatch indicates mismatched dimensions inside the tree.
var ErrDimensionMismatch = errors.New("supportfn: dimension mismatch")

// ErrUnsupportedIntersectChild indicates an Intersect node's child was
// not a Leaf (see doc.go for the scope limitation).
var ErrUnsupportedIntersectChild = errors.New("supportfn: intersect node requires a leaf child")

func sfErrorf(tag string, err error) error {
	return fmt.Errorf("supportfn.%s: %w", tag, err)
}

// Kind discriminates a Node's evaluation rule (spec §4.6's table).
type Kind int

const (
	// KindLeaf wraps a concrete geom.Set.
	KindLeaf Kind = iota
	// KindAffine applies (M, b) to a single child.
	KindAffine
	// KindMinkowskiSum sums the supports of its children.
	KindMinkowskiSum
	// KindIntersect restricts a single child by half-spaces.
	KindIntersect
	// KindUnion takes the max support over its children.
	KindUnion
)

// Node is one node of the lazy support-function tree (spec §3 "Support
// function(n)"). Only the fields relevant to Kind are populated.
type Node struct {
	Kind Kind

	Leaf geom.Set

	Child *Node
	M     *matrix.Dense
	B     matrix.Vector

	Children []*Node

	Halfspaces []geom.Halfspace

	concretized geom.Set // memoized intersection result for KindIntersect
}

// NewLeaf wraps a concrete set as a tree leaf.
func NewLeaf(s geom.Set) *Node { return &Node{Kind: KindLeaf, Leaf: s} }

// NewAffine wraps child under the affine map x -> M*x + b.
func NewAffine(child *Node, m *matrix.Dense, b matrix.Vector) *Node {
	return &Node{Kind: KindAffine, Child: child, M: m, B: b}
}

// NewMinkowskiSum sums the supports of children.
func NewMinkowskiSum(children ...*Node) *Node {
	return &Node{Kind: KindMinkowskiSum, Children: children}
}

// NewIntersect restricts child by hs. child must evaluate to KindLeaf
// (see doc.go).
func NewIntersect(child *Node, hs []geom.Halfspace) *Node {
	return &Node{Kind: KindIntersect, Child: child, Halfspaces: hs}
}

// NewUnion takes the max support over children.
func NewUnion(children ...*Node) *Node {
	return &Node{Kind: KindUnion, Children: children}
}

// Dim returns the ambient dimension, inferred from the first leaf
// reachable from n; an Affine node reports its matrix's row count.
func (n *Node) Dim() (int, error) {
	switch n.Kind {
	case KindLeaf:
		return n.Leaf.Dim(), nil
	case KindAffine:
		return n.M.Rows(), nil
	case KindMinkowskiSum, KindUnion:
		if len(n.Children) == 0 {
			return 0, sfErrorf("Dim", errors.New("supportfn: empty children"))
		}
		return n.Children[0].Dim()
	case KindIntersect:
		return n.Child.Dim()
	}
	return 0, sfErrorf("Dim", errors.New("supportfn: unknown kind"))
}

// Evaluate descends the tree and combines child answers per spec
// §4.6's table.
func (n *Node) Evaluate(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	switch n.Kind {
	case KindLeaf:
		return n.Leaf.Support(d)

	case KindAffine:
		mt, err := matrix.Transpose(n.M)
		if err != nil {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
		}
		mtDense, ok := mt.(*matrix.Dense)
		if !ok {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", errors.New("supportfn: Transpose did not return a *Dense"))
		}
		pulled, err := matrix.MatVec(mtDense, d)
		if err != nil {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
		}
		childVal, childArg, status, err := n.Child.Evaluate(matrix.Vector(pulled))
		if err != nil || status != geom.Feasible {
			return 0, nil, status, err
		}
		bias, err := d.Dot(n.B)
		if err != nil {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
		}
		argmaxRaw, err := matrix.MatVec(n.M, childArg)
		if err != nil {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
		}
		argmax, err := matrix.Vector(argmaxRaw).Add(n.B)
		if err != nil {
			return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
		}
		return childVal + bias, argmax, geom.Feasible, nil

	case KindMinkowskiSum:
		total := 0.0
		var sumArg matrix.Vector
		for i, c := range n.Children {
			val, arg, status, err := c.Evaluate(d)
			if err != nil {
				return 0, nil, geom.Infeasible, err
			}
			if status != geom.Feasible {
				return 0, nil, status, nil
			}
			total += val
			if i == 0 {
				sumArg = arg.Clone()
			} else {
				sumArg, err = sumArg.Add(arg)
				if err != nil {
					return 0, nil, geom.Infeasible, sfErrorf("Evaluate", err)
				}
			}
		}
		return total, sumArg, geom.Feasible, nil

	case KindIntersect:
		set, err := n.ensureConcretized()
		if err != nil {
			return 0, nil, geom.Infeasible, err
		}
		return set.Support(d)

	case KindUnion:
		best := math.Inf(-1)
		var bestArg matrix.Vector
		sawFeasible := false
		for _, c := range n.Children {
			val, arg, status, err := c.Evaluate(d)
			if err != nil {
				return 0, nil, geom.Infeasible, err
			}
			if status == geom.Unbounded {
				return math.Inf(1), nil, geom.Unbounded, nil
			}
			if status != geom.Feasible {
				continue
			}
			sawFeasible = true
			if val > best {
				best = val
				bestArg = arg
			}
		}
		if !sawFeasible {
			return 0, nil, geom.Infeasible, nil
		}
		return best, bestArg, geom.Feasible, nil
	}
	return 0, nil, geom.Infeasible, sfErrorf("Evaluate", errors.New("supportfn: unknown kind"))
}

func (n *Node) ensureConcretized() (geom.Set, error) {
	if n.concretized != nil {
		return n.concretized, nil
	}
	if n.Child.Kind != KindLeaf {
		return nil, sfErrorf("ensureConcretized", ErrUnsupportedIntersectChild)
	}
	set, err := n.Child.Leaf.IntersectHalfspaces(n.Halfspaces)
	if err != nil {
		return nil, sfErrorf("ensureConcretized", err)
	}
	n.concretized = set
	return set, nil
}

// MultiEvaluate returns the vector of values for each direction row in
// directions (spec §4.6 "multi_evaluate(D)"). Each direction is
// evaluated independently; the Intersect node's memoized concrete set
// is the only structural caching shared across rows, matching the
// spec's "must not return different values for the same direction."
func (n *Node) MultiEvaluate(directions []matrix.Vector) ([]float64, []matrix.Vector, []geom.Status, error) {
	values := make([]float64, len(directions))
	argmaxes := make([]matrix.Vector, len(directions))
	statuses := make([]geom.Status, len(directions))
	for i, d := range directions {
		v, arg, status, err := n.Evaluate(d)
		if err != nil {
			return nil, nil, nil, sfErrorf("MultiEvaluate", err)
		}
		values[i] = v
		argmaxes[i] = arg
		statuses[i] = status
	}
	return values, argmaxes, statuses, nil
}
