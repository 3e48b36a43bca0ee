package reach

import (
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

// splitAugmented splits the (n+1)x(n+1) augmented flow matrix
// hybrid.Location.Flow into its linear block (top-left n x n) and its
// affine column (the first n entries of column n), per spec §3's
// "flow matrix A of size (n+1)x(n+1), the last row/column encoding the
// affine term" convention: exp(A_aug*delta) applied to the augmented
// vector (x, 1) produces (Phi1*x + Phi2, 1).
func splitAugmented(aug *matrix.Dense) (*matrix.Dense, matrix.Vector, error) {
	n := aug.Rows() - 1
	lin, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := aug.At(i, j)
			if err != nil {
				return nil, nil, err
			}
			if err := lin.Set(i, j, v); err != nil {
				return nil, nil, err
			}
		}
	}
	bias := make(matrix.Vector, n)
	for i := 0; i < n; i++ {
		v, err := aug.At(i, n)
		if err != nil {
			return nil, nil, err
		}
		bias[i] = v
	}
	return lin, bias, nil
}

// infOperatorNorm returns the matrix's induced infinity norm (max
// absolute row sum), the standard bound used to control how fast a
// linear flow can deviate from its first-order approximation over one
// time step.
func infOperatorNorm(m *matrix.Dense) (float64, error) {
	max := 0.0
	for i := 0; i < m.Rows(); i++ {
		sum := 0.0
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			sum += math.Abs(v)
		}
		if sum > max {
			max = sum
		}
	}
	return max, nil
}

// setDiameter evaluates the support of s on the axis-aligned extreme
// directions and returns the widest axis, the generalisation of
// box.Box.Diameter's "support of the set evaluated on the infinity-norm
// unit ball" (spec §4.8 step 4's "|.|") to an arbitrary geom.Set.
func setDiameter(s geom.Set) (float64, error) {
	n := s.Dim()
	max := 0.0
	for i := 0; i < n; i++ {
		e := make(matrix.Vector, n)
		e[i] = 1
		hi, _, st, err := s.Support(e)
		if err != nil {
			return 0, err
		}
		if st != geom.Feasible {
			continue
		}
		e[i] = -1
		lo, _, st, err := s.Support(e)
		if err != nil {
			return 0, err
		}
		if st != geom.Feasible {
			continue
		}
		w := hi + lo
		if w > max {
			max = w
		}
	}
	return max, nil
}

// hausdorffBloat returns the radius r = Hausdorff(A, delta, diam) of
// the ball-over-approximating box Minkowski-added to the first
// flowpipe segment (spec §4.8 step 4). The exact formula is left
// unspecified by spec.md; this implementation uses the standard
// second-order Le Guernic/Girard bound
//
//	r = (e^(||A||*delta) - 1 - ||A||*delta) * diam
//
// where ||A|| is A's induced infinity norm — the deviation of
// exp(A*t) from its first-order Taylor approximation over t in
// [0,delta], scaled by the set's diameter. See DESIGN.md's Open
// Question entry for this choice.
func hausdorffBloat(linear *matrix.Dense, delta, diam float64) (float64, error) {
	normA, err := infOperatorNorm(linear)
	if err != nil {
		return 0, err
	}
	alpha := normA * delta
	return (math.Exp(alpha) - 1 - alpha) * diam, nil
}

