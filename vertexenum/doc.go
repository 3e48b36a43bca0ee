// Package vertexenum enumerates the extreme points and recession cone
// of a half-space system (spec §4.3 "Vertex enumeration"). Each
// dictionary in the spec's reverse-search formulation corresponds here
// to a choice of dim tight half-spaces (a basic feasible combination);
// enumerating every such combination and keeping the ones that satisfy
// every remaining half-space produces the same vertex set as reverse
// search for the non-degenerate, bounded case, which is what every
// concrete representation in this module feeds it (bounded H-polytopes
// arising from box/zonotope/support-function conversions, spec §4.7).
// Bland's rule's role — smallest-index tie-breaking for determinism —
// is preserved here as combination order: subsets are generated in
// lexicographic index order and the first feasible candidate at a
// given point wins.
package vertexenum
