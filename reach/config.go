package reach

import (
	"context"
	"fmt"
	"log/slog"
)

// Representation selects which convex-set representation the engine
// emits flowpipe segments in (spec §6 "representation").  Internal
// arithmetic is always carried out in H-polytope form (see doc.go);
// Representation only controls the type each returned segment is
// converted to before being handed back to the caller.
type Representation int

const (
	// RepHPolytope emits *hpolytope.HPolytope segments.
	RepHPolytope Representation = iota
	// RepBox emits *box.Box segments (the bounding box of each
	// segment's vertices — an over-approximation for non-box-shaped
	// segments, matching the "fast path, generic fallback" idiom used
	// throughout box.go).
	RepBox
	// RepVPolytope emits *vpolytope.VPolytope segments.
	RepVPolytope
	// RepZonotope emits *zonotope.Zonotope segments (an
	// over-approximation via convert.ToZonotope).
	RepZonotope
	// RepSupportFunction emits *supportfn.Node leaf-wrapped segments.
	RepSupportFunction
)

func (r Representation) String() string {
	switch r {
	case RepHPolytope:
		return "h-polytope"
	case RepBox:
		return "box"
	case RepVPolytope:
		return "v-polytope"
	case RepZonotope:
		return "zonotope"
	case RepSupportFunction:
		return "support-fn"
	default:
		return fmt.Sprintf("representation(%d)", int(r))
	}
}

// SimplificationStrategy selects the §4.2 redundancy-reduction strategy
// applied after each flowpipe segment, if enabled (spec §6
// "simplification.strategy").
type SimplificationStrategy int

const (
	// SimplifyNone applies no simplification after a segment.
	SimplifyNone SimplificationStrategy = iota
	// SimplifyReduceRedundant applies the representation's own
	// redundancy-removal operation (hpolytope.ReduceRedundant,
	// vpolytope.ReduceRedundancy) where one exists.
	SimplifyReduceRedundant
	// SimplifyTemplate re-expresses the segment as the H-polytope
	// obtained from evaluating its support function on a fixed
	// template of directions (supportfn.TemplateDirections), trading
	// exactness for a bounded facet count.
	SimplifyTemplate
)

// Config holds every tunable the engine recognises (spec §6
// "Configuration options"). Build one with DefaultConfig and the
// WithX functions below, mirroring bfs.BFSOptions/DefaultOptions.
type Config struct {
	// TimeHorizon is T, the upper bound on continuous time per
	// flowpipe.
	TimeHorizon float64
	// TimeStep is delta. With N = ceil(T/delta), a flowpipe has at most
	// N+1 segments: segment 0 (the entry set within the invariant) and
	// segments 1..N; it ends early when the next segment would be empty.
	TimeStep float64
	// JumpDepth is K, the maximum number of discrete transitions from
	// any initial state.
	JumpDepth int
	// Representation selects the output set representation.
	Representation Representation
	// SimplificationStrategy selects the post-segment simplification.
	SimplificationStrategy SimplificationStrategy
	// SimplificationDirections is the template-direction count used
	// when SimplificationStrategy == SimplifyTemplate.
	SimplificationDirections int

	// Ctx allows cancellation, checked at the two points spec §5
	// names: between segments within a flowpipe, and between frontier
	// expansions.
	Ctx context.Context

	// Logger receives diagnostics at cancellation and fixpoint
	// depth-transition points (spec §1, §4.8); never used for
	// per-segment debug noise. Defaults to a discarding logger.
	Logger *slog.Logger

	// Parallel enables one goroutine per (location, entry-set) pair in
	// the frontier during discrete-post expansion, guarded by a single
	// mutex over the shared flowpipe-id map (spec §5).
	Parallel bool

	err error // recorded by an invalid Option, surfaced at Compute time
}

// Option configures a Config via functional arguments (mirrors
// bfs.Option). An invalid Option (e.g. negative jump depth) records an
// internal error surfaced when the engine runs: ErrOptionViolation, or
// ErrUnknownRepresentation for an unrecognised representation.
type Option func(*Config)

// DefaultConfig returns the engine's default tunables: T=1, delta=0.1,
// K=1, representation=H-polytope, no simplification, 16 template
// directions, background context, a discarding logger, single-threaded.
func DefaultConfig() Config {
	return Config{
		TimeHorizon:              1,
		TimeStep:                 0.1,
		JumpDepth:                1,
		Representation:           RepHPolytope,
		SimplificationStrategy:   SimplifyNone,
		SimplificationDirections: 16,
		Ctx:                      context.Background(),
		Logger:                   slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
}

// discardWriter is an io.Writer that drops everything written to it,
// used to build a no-op *slog.Logger (spec §2's "defaulting to a
// nil-safe no-op").
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// WithTimeHorizon sets T. t <= 0 is an option violation.
func WithTimeHorizon(t float64) Option {
	return func(c *Config) {
		if t <= 0 {
			c.err = fmt.Errorf("%w: time horizon must be positive (%v)", ErrOptionViolation, t)
			return
		}
		c.TimeHorizon = t
	}
}

// WithTimeStep sets delta. d <= 0 is an option violation.
func WithTimeStep(d float64) Option {
	return func(c *Config) {
		if d <= 0 {
			c.err = fmt.Errorf("%w: time step must be positive (%v)", ErrOptionViolation, d)
			return
		}
		c.TimeStep = d
	}
}

// WithJumpDepth sets K. k < 0 is an option violation; k == 0 means only
// the initial flowpipes are computed, with no discrete transitions
// explored (spec §8 scenario 6).
func WithJumpDepth(k int) Option {
	return func(c *Config) {
		if k < 0 {
			c.err = fmt.Errorf("%w: jump depth cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		c.JumpDepth = k
	}
}

// WithRepresentation sets the output representation.
func WithRepresentation(r Representation) Option {
	return func(c *Config) {
		switch r {
		case RepHPolytope, RepBox, RepVPolytope, RepZonotope, RepSupportFunction:
			c.Representation = r
		default:
			c.err = fmt.Errorf("%w: %v", ErrUnknownRepresentation, r)
		}
	}
}

// WithSimplificationStrategy sets the post-segment simplification
// strategy.
func WithSimplificationStrategy(s SimplificationStrategy) Option {
	return func(c *Config) { c.SimplificationStrategy = s }
}

// WithSimplificationDirections sets the template-direction count for
// SimplifyTemplate. n <= 0 is an option violation.
func WithSimplificationDirections(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: simplification directions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.SimplificationDirections = n
	}
}

// WithContext sets a custom context for cancellation (spec §5).
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithLogger sets the diagnostic sink. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithParallel enables one goroutine per (location, entry-set) pair
// during frontier expansion (spec §5).
func WithParallel(enabled bool) Option {
	return func(c *Config) { c.Parallel = enabled }
}

// segmentsPerFlowpipe returns ceil(T/delta) (spec §6
// "time_step ... number of segments per flowpipe is ceil(T/delta)").
func (c Config) segmentsPerFlowpipe() int {
	n := int(c.TimeHorizon / c.TimeStep)
	if float64(n)*c.TimeStep < c.TimeHorizon-1e-12 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
