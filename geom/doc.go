// Package geom provides the half-space and point primitives (spec §3
// "Point(n)", "Half-space(n)") that every convex-set representation in
// this module (box, hpolytope, vpolytope, zonotope, orthopoly,
// supportfn) is built from.
package geom
