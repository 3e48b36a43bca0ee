// Package matrix provides the Number/linear-algebra facade hyreach builds
// on: a row-major Dense matrix, the canonical kernels (Add/Sub/Mul/
// Transpose/Scale/Hadamard/MatVec), LU/QR/Eigen decompositions, a matrix
// exponential bridge via gonum, and the Vector primitive the geometric
// representations share.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of float64 values, enabling the geometry packages (box,
//	hpolytope, vpolytope, zonotope, supportfn) and the reachability engine
//	to operate generically over any implementation — in practice always
//	*Dense, kept as an interface so algorithms never assume layout.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
