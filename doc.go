// Package hyreach computes forward reachability for hybrid automata:
// finite-dimensional continuous states evolving under per-location
// linear flow, punctuated by discrete jumps guarded and reset by
// affine maps.
//
// Package layout mirrors the layering of the problem itself:
//
//	geom/       — shared convex-set vocabulary (Point, Halfspace, Status)
//	matrix/     — dense linear algebra and the matrix exponential
//	scalar/     — exact-rational / floating scalar abstraction
//	optimizer/  — two-phase simplex LP solver over Ax<=b
//	box/        — axis-aligned box representation
//	hpolytope/  — half-space intersection representation
//	vpolytope/  — vertex-set (V-polytope) representation
//	zonotope/   — center + generator-matrix representation
//	orthopoly/  — coloured-lattice (orthogonal polyhedron) representation
//	supportfn/  — lazy support-function expression tree
//	vertexenum/ — extreme point and recession cone enumeration
//	convert/    — pairwise conversions between the representations above
//	hybrid/     — the automaton data model (Location, Transition, Automaton)
//	reach/      — the forward-reachability engine
//	scenarios/  — canned automata used by tests and the demo CLI
//	cmd/hyreach-demo/ — a command-line front end
package hyreach
