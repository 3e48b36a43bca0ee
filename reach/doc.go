// Package reach implements the forward-reachability engine (spec §4.8):
// per-location flowpipe construction by time-discretized affine flow
// with Hausdorff bloating, discrete post-image through transitions, and
// fixpoint exploration of the location graph up to a jump-depth bound.
//
// The engine's control flow is a walker-style struct carrying the
// mutable exploration state across a fixpoint loop, with two
// cancellation checkpoints — between segments within a flowpipe, and
// between frontier expansions — each a select{ case <-ctx.Done(): ... }
// (spec §5).
//
// Flowpipe arithmetic is carried out uniformly in H-polytope form
// internally: invariants, guards, and resets in the automaton model
// (hybrid.Location, hybrid.Transition) are already expressed as
// H-polytopes and affine maps, and HPolytope is the one representation
// whose AffineImage, IntersectHalfspaces, and MinkowskiSum all work
// against an arbitrary geom.Set operand without a same-concrete-type
// requirement. Each emitted segment is then converted into the
// configured output representation (box, H-polytope, V-polytope,
// zonotope, or support function) via the convert package, so a caller
// configuring representation = zonotope gets zonotope segments back
// even though the engine computed them through H-polytope arithmetic
// — see DESIGN.md for this Open Question's resolution.
package reach
