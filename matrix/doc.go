// Package matrix is the Number/linear-algebra facade hyreach's geometry
// and reachability packages are built on.
//
// It provides:
//
//   - Dense, a row-major float64 matrix implementing the Matrix interface,
//     with the canonical kernels (Add, Sub, Mul, Transpose, Scale, Hadamard,
//     MatVec), LU/QR/Eigen decompositions, and a matrix-exponential bridge
//     via gonum for evaluating continuous flow semantics exp(A*delta).
//   - Vector, the flat-slice counterpart of Dense used for points,
//     direction vectors and generator columns throughout the geometry
//     packages (box, hpolytope, vpolytope, zonotope, supportfn).
//   - Column-statistics helpers (CenterColumns, Covariance, ...); no other
//     package of this module calls them.
//
// Matrices and vectors here carry no domain semantics of their own —
// location dynamics, constraint systems and generator sets are built on
// top of this package by the geometry and reach packages.
package matrix
