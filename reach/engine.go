package reach

import (
	"context"
	"errors"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/hybrid"
	"github.com/arkweave/hyreach/matrix"
)

// frontierItem pairs a flowpipe id with the location it was computed
// in, the unit of work the fixpoint loop expands one step at a time.
type frontierItem struct {
	id       int
	location int
}

// engine carries the mutable exploration state for one
// ComputeForwardReachability call, playing the role bfs.walker plays
// for bfs.BFS.
type engine struct {
	automaton *hybrid.Automaton
	cfg       Config
	ctx       context.Context

	mu       sync.Mutex
	nextID   int
	explored mapset.Set[int]
	internal map[int][]*hpolytope.HPolytope
	res      *Result
}

// ComputeForwardReachability computes forward reachable sets for a
// (spec §4.8's entry point). A nil automaton returns ErrAutomatonNil;
// any other automaton goes through a.MustValidate(), so an invalid one
// is treated as a programming error (spec §7) and panics with
// *hybrid.InvalidAutomatonError.
func ComputeForwardReachability(a *hybrid.Automaton, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	a.MustValidate()
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(a.Initial) == 0 {
		return nil, ErrNoInitialStates
	}

	e := &engine{
		automaton: a,
		cfg:       cfg,
		ctx:       cfg.Ctx,
		explored:  mapset.NewSet[int](),
		internal:  make(map[int][]*hpolytope.HPolytope),
		res:       newResult(),
	}
	if err := e.run(); err != nil {
		return nil, reachErrorf("ComputeForwardReachability", err)
	}
	return e.res, nil
}

// run seeds the frontier with one flowpipe per initial (location, set)
// pair, then expands it by discrete post-image up to cfg.JumpDepth
// (spec §4.8 "Fixpoint loop").
func (e *engine) run() error {
	frontier := make([]frontierItem, 0, len(e.automaton.Initial))
	for _, is := range e.automaton.Initial {
		loc := e.automaton.Location(is.Location)
		id, err := e.buildFlowpipe(loc, is.Set)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				e.res.WasComplete = false
				e.res.CancellationReason = err
				e.cfg.Logger.Debug("reachability cancelled", "depth", 0, "reason", err)
				return nil
			}
			return err
		}
		frontier = append(frontier, frontierItem{id: id, location: is.Location})
		e.explored.Add(id)
	}

	for depth := 0; len(frontier) > 0 && depth < e.cfg.JumpDepth; depth++ {
		select {
		case <-e.ctx.Done():
			e.res.WasComplete = false
			e.res.CancellationReason = e.ctx.Err()
			e.cfg.Logger.Debug("reachability cancelled", "depth", depth, "reason", e.ctx.Err())
			return nil
		default:
		}

		e.cfg.Logger.Debug("fixpoint depth transition", "depth", depth, "frontier_size", len(frontier))

		next, err := e.expandFrontier(frontier)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				e.res.WasComplete = false
				e.res.CancellationReason = err
				e.cfg.Logger.Debug("reachability cancelled", "depth", depth, "reason", err)
				return nil
			}
			return err
		}

		filtered := next[:0]
		for _, it := range next {
			if !e.explored.Contains(it.id) {
				filtered = append(filtered, it)
				e.explored.Add(it.id)
			}
		}
		frontier = filtered
	}
	return nil
}

// expandFrontier runs discrete post-image over every item in frontier,
// sequentially by default or one goroutine per item when cfg.Parallel
// is set (spec §5: "one worker per (location, entry-set) pair in the
// frontier ... permissible because flowpipe construction is a pure
// function of its entry set").
func (e *engine) expandFrontier(frontier []frontierItem) ([]frontierItem, error) {
	if !e.cfg.Parallel {
		var out []frontierItem
		for _, it := range frontier {
			next, err := e.discretePost(it)
			if err != nil {
				return nil, err
			}
			out = append(out, next...)
		}
		return out, nil
	}

	var g errgroup.Group
	results := make([][]frontierItem, len(frontier))
	for i, it := range frontier {
		i, it := i, it
		g.Go(func() error {
			next, err := e.discretePost(it)
			if err != nil {
				return err
			}
			results[i] = next
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []frontierItem
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// discretePost implements spec §4.8's "Discrete post from a flowpipe":
// for each outgoing transition of the flowpipe's location, scan every
// segment for a non-empty intersection with the guard, transform the
// enabling points by the reset map, and build the target location's
// entry set as their convex hull — then recursively build that
// target's flowpipe.
func (e *engine) discretePost(item frontierItem) ([]frontierItem, error) {
	loc := e.automaton.Location(item.location)
	e.mu.Lock()
	segments := e.internal[item.id]
	e.mu.Unlock()

	var out []frontierItem
	for _, tr := range loc.Transitions {
		enabling, err := e.enablingSets(segments, tr)
		if err != nil {
			return nil, err
		}
		if len(enabling) == 0 {
			continue // transition never fires (spec §4.8: "fires iff at least one segment enabled it")
		}
		entry, err := convexHullOfHPolytopes(enabling)
		if err != nil {
			return nil, err
		}
		target := e.automaton.Location(tr.Target)
		newID, err := e.buildFlowpipe(target, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, frontierItem{id: newID, location: tr.Target})
	}
	return out, nil
}

// enablingSets scans segments for those whose intersection with tr's
// guard is non-empty, returning each such intersection transformed by
// tr's reset map.
func (e *engine) enablingSets(segments []*hpolytope.HPolytope, tr *hybrid.Transition) ([]*hpolytope.HPolytope, error) {
	var enabling []*hpolytope.HPolytope
	for _, seg := range segments {
		select {
		case <-e.ctx.Done():
			return nil, e.ctx.Err()
		default:
		}
		interRaw, err := seg.IntersectHalfspaces(tr.Guard.Halfspaces)
		if err != nil {
			return nil, err
		}
		inter := interRaw.(*hpolytope.HPolytope)
		empty, err := inter.IsEmpty()
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		mappedRaw, err := inter.AffineImage(tr.Reset.M, tr.Reset.B)
		if err != nil {
			return nil, err
		}
		enabling = append(enabling, mappedRaw.(*hpolytope.HPolytope))
	}
	return enabling, nil
}

// buildFlowpipe constructs and registers a new flowpipe for entry in
// loc, assigning it a fresh monotonic id (spec §4.8 "the flowpipe id
// counter is monotonic"; "the shared id map is ... guarded by a single
// mutex in a parallel implementation").
func (e *engine) buildFlowpipe(loc *hybrid.Location, entry *hpolytope.HPolytope) (int, error) {
	segments, err := e.flowpipeSegments(loc, entry)
	if err != nil {
		return 0, err
	}
	converted := make(Flowpipe, len(segments))
	for i, seg := range segments {
		c, err := convertSegment(seg, e.cfg.Representation)
		if err != nil {
			return 0, err
		}
		converted[i] = c
	}

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.internal[id] = segments
	e.res.Flowpipes[id] = converted
	e.res.FlowpipeLocation[id] = loc.ID
	e.mu.Unlock()
	return id, nil
}

// flowpipeSegments runs the per-location flowpipe construction
// algorithm (spec §4.8, steps 1-5) for entry set entry in loc.
func (e *engine) flowpipeSegments(loc *hybrid.Location, entry *hpolytope.HPolytope) ([]*hpolytope.HPolytope, error) {
	interRaw, err := entry.IntersectHalfspaces(loc.Invariant.Halfspaces)
	if err != nil {
		return nil, err
	}
	seg0 := interRaw.(*hpolytope.HPolytope)
	empty, err := seg0.IsEmpty()
	if err != nil {
		return nil, err
	}
	if empty {
		return []*hpolytope.HPolytope{seg0}, nil // spec §4.8 step 1: "return an empty flowpipe"
	}

	augRaw, err := matrix.Exp(loc.Flow, e.cfg.TimeStep)
	if err != nil {
		return nil, err
	}
	aug, ok := augRaw.(*matrix.Dense)
	if !ok {
		return nil, fmt.Errorf("reach: matrix.Exp did not return *matrix.Dense")
	}
	phi1, phi2, err := splitAugmented(aug)
	if err != nil {
		return nil, err
	}
	linear, _, err := splitAugmented(loc.Flow)
	if err != nil {
		return nil, err
	}

	seg1, err := e.bloatedFirstSegment(seg0, phi1, phi2, linear)
	if err != nil {
		return nil, err
	}
	segments := []*hpolytope.HPolytope{seg0, seg1}

	cur := seg1
	n := e.cfg.segmentsPerFlowpipe()
	for i := 1; i < n; i++ {
		select {
		case <-e.ctx.Done():
			return segments, e.ctx.Err()
		default:
		}
		next, done, err := e.nextSegment(cur, phi1, phi2, loc)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		segments = append(segments, next)
		cur = next
	}
	return segments, nil
}

// bloatedFirstSegment implements spec §4.8 step 4: the convex hull of
// seg0 and Phi*seg0, Minkowski-added with a ball-over-approximating
// box of the Hausdorff-bloat radius.
func (e *engine) bloatedFirstSegment(seg0 *hpolytope.HPolytope, phi1 *matrix.Dense, phi2 matrix.Vector, linear *matrix.Dense) (*hpolytope.HPolytope, error) {
	phiSeg0Raw, err := seg0.AffineImage(phi1, phi2)
	if err != nil {
		return nil, err
	}
	phiSeg0 := phiSeg0Raw.(*hpolytope.HPolytope)

	hull, err := convexHullOfHPolytopes([]*hpolytope.HPolytope{seg0, phiSeg0})
	if err != nil {
		return nil, err
	}

	diam, err := setDiameter(seg0)
	if err != nil {
		return nil, err
	}
	r, err := hausdorffBloat(linear, e.cfg.TimeStep, diam)
	if err != nil {
		return nil, err
	}

	zero := make(matrix.Vector, phi1.Rows())
	bloatBox := box.Ball(zero, r)
	bloatH, err := convert.BoxToHPolytope(bloatBox)
	if err != nil {
		return nil, err
	}
	seg1Raw, err := hull.MinkowskiSum(bloatH)
	if err != nil {
		return nil, err
	}
	return e.simplify(seg1Raw.(*hpolytope.HPolytope))
}

// nextSegment implements spec §4.8 step 5: segment_{i+1} = invariant(l)
// intersected with (Phi1 * segment_i + Phi2). done is true when the
// intersection is empty (the flowpipe ends there).
func (e *engine) nextSegment(cur *hpolytope.HPolytope, phi1 *matrix.Dense, phi2 matrix.Vector, loc *hybrid.Location) (*hpolytope.HPolytope, bool, error) {
	imgRaw, err := cur.AffineImage(phi1, phi2)
	if err != nil {
		return nil, false, err
	}
	img := imgRaw.(*hpolytope.HPolytope)
	nextRaw, err := img.IntersectHalfspaces(loc.Invariant.Halfspaces)
	if err != nil {
		return nil, false, err
	}
	next := nextRaw.(*hpolytope.HPolytope)
	empty, err := next.IsEmpty()
	if err != nil {
		return nil, false, err
	}
	if empty {
		return nil, true, nil
	}
	next, err = e.simplify(next)
	if err != nil {
		return nil, false, err
	}
	return next, false, nil
}
