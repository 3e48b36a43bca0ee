package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/reach"
	"github.com/arkweave/hyreach/scenarios"
)

func TestComputeForwardReachability_NilAutomaton(t *testing.T) {
	res, err := reach.ComputeForwardReachability(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, reach.ErrAutomatonNil)
}

func TestComputeForwardReachability_OptionViolation(t *testing.T) {
	a, err := scenarios.Build("bouncing-ball")
	assert.NoError(t, err)
	res, err := reach.ComputeForwardReachability(a, reach.WithJumpDepth(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, reach.ErrOptionViolation)
}

// bouncingBallRun runs spec §8 scenario 1 with its exact parameters:
// T=3, delta=0.01, K=3, representation=H-polytope.
func bouncingBallRun(t *testing.T, opts ...reach.Option) *reach.Result {
	t.Helper()
	a, err := scenarios.Build("bouncing-ball")
	assert.NoError(t, err)

	base := []reach.Option{
		reach.WithTimeHorizon(3),
		reach.WithTimeStep(0.01),
		reach.WithJumpDepth(3),
		reach.WithRepresentation(reach.RepHPolytope),
	}
	res, err := reach.ComputeForwardReachability(a, append(base, opts...)...)
	assert.NoError(t, err)
	assert.NotNil(t, res)
	return res
}

func TestBouncingBall_ProducesMultipleFlowpipes(t *testing.T) {
	res := bouncingBallRun(t)
	assert.True(t, res.WasComplete)
	assert.Nil(t, res.CancellationReason)
	assert.GreaterOrEqual(t, len(res.Flowpipes), 4, "spec §8 scenario 1 expects at least 4 flowpipes")
}

func TestBouncingBall_FirstFlowpipeHeightNeverExceedsInitialSup(t *testing.T) {
	res := bouncingBallRun(t)

	// id 0 is the first-built flowpipe, seeded from the initial state.
	fp, ok := res.Flowpipes[0]
	assert.True(t, ok)
	assert.NotEmpty(t, fp)

	for _, seg := range fp {
		s, ok := seg.(geom.Set)
		assert.True(t, ok)
		sup, _, status, err := s.Support(matrix.Vector{1, 0})
		assert.NoError(t, err)
		assert.Equal(t, geom.Feasible, status)
		assert.LessOrEqual(t, sup, 10.2+1e-6, "sup(h) in the first flowpipe must stay at or below the initial bound")
	}
}

func TestEmptyIntersection_NoExploration(t *testing.T) {
	a, err := scenarios.Build("empty-intersection")
	assert.NoError(t, err)

	res, err := reach.ComputeForwardReachability(a,
		reach.WithTimeHorizon(1),
		reach.WithTimeStep(0.1),
		reach.WithJumpDepth(3),
	)
	assert.NoError(t, err)
	assert.True(t, res.WasComplete)
	assert.Len(t, res.Flowpipes, 1, "one empty flowpipe per initial location, no further exploration")

	fp := res.Flowpipes[0]
	assert.Len(t, fp, 1, "an empty entry/invariant intersection yields a one-segment empty flowpipe")
}

func TestBouncingBall_JumpDepthZero_OneFlowpipePerInitial(t *testing.T) {
	res := bouncingBallRun(t, reach.WithJumpDepth(0))
	assert.Len(t, res.Flowpipes, 1, "spec §8 scenario 6: K=0 yields exactly one flowpipe per initial location")
}
