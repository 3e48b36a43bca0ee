// Package optimizer provides the single entry point for
// direction-maximisation over linear constraints (spec §4.1 "Linear
// optimiser"): evaluate, is_feasible, contains, redundant_rows. The
// floating-point presolver is a standard two-phase primal simplex
// using Bland's rule for anti-cycling, loosely following the
// dictionary/tableau bookkeeping of gonum's lp package (see
// _examples/other_examples for the reference file); unlike gonum's
// affine-scaling solver this one needs Bland's rule specifically
// because spec §4.1 requires determinism on degenerate inputs.
//
// Free variables (the polytope's x is unrestricted in sign) are
// handled by the standard x = x+ - x- splitting rather than a bounded-
// variable simplex, trading some performance for a tableau simplex
// that's easy to verify. The vertexenum package does not share this
// tableau: it enumerates combinations of tight half-spaces directly.
package optimizer
