package reach

// Flowpipe is one ordered sequence of convex sets (spec §3
// "Flowpipe(n)"), one per (location, entry-set) pair explored. Each
// element's concrete type matches the Config's Representation:
// *hpolytope.HPolytope, *box.Box, *vpolytope.VPolytope,
// *zonotope.Zonotope, or *supportfn.Node.
type Flowpipe []interface{}

// Result is the engine's main-call return value (spec §6 "Engine
// output", §7 "a result object carrying (flowpipes, was_complete,
// optional_cancellation_reason)"). Incompleteness is never silent: a
// caller that ignores CancellationReason can always check WasComplete.
type Result struct {
	// Flowpipes maps a monotonic engine-assigned flowpipe id to its
	// segment sequence.
	Flowpipes map[int]Flowpipe

	// FlowpipeLocation maps a flowpipe id to the location it was
	// computed in.
	FlowpipeLocation map[int]int

	// WasComplete is false iff the run ended early because Ctx was
	// cancelled before the frontier emptied or the jump-depth bound
	// was reached.
	WasComplete bool

	// CancellationReason holds Ctx.Err() when WasComplete is false,
	// and is nil otherwise.
	CancellationReason error
}

func newResult() *Result {
	return &Result{
		Flowpipes:        make(map[int]Flowpipe),
		FlowpipeLocation: make(map[int]int),
		WasComplete:      true,
	}
}
