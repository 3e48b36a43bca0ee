// Package supportfn implements the Support function(n) representation
// (spec §3, §4.6): a lazy expression tree whose leaves are concrete
// geom.Set values and whose internal nodes are affine-image,
// Minkowski-sum, intersect-with-half-spaces, and union. Its one
// primitive query is Evaluate(direction) -> (value, argmax, status).
//
// The spec's "the tree owns its children exclusively; multi-arity
// nodes share children by reference counting" is supplied for free by
// Go's garbage collector: a Node's children are ordinary *Node
// pointers, and sharing a child across two parents is just sharing the
// pointer — there is no manual refcount to maintain, leaning on Go's
// memory model rather than hand-rolled lifetime tracking.
//
// The Intersect node is the one place the spec's generality is scoped
// down: "solve LP: maximise d.x subject to x in H and x in child" is
// only mechanically meaningful when the child ultimately resolves to a
// representation that knows how to intersect itself with half-spaces
// (geom.Set.IntersectHalfspaces). This implementation requires an
// Intersect node's child to be a Leaf and memoizes the intersected
// concrete set on first evaluation — see DESIGN.md.
package supportfn
