// Package scenarios provides canned hybrid automata matching spec.md
// §8's concrete end-to-end test scenarios: one factory function per
// fixture, declared centrally, each returning a fully-formed
// *hybrid.Automaton ready for reach.ComputeForwardReachability.
//
// A scenario has no constructor composition — spec §8's fixtures are
// each a single fixed automaton, not a mutable graph assembled from
// independent pieces — so every factory here is a thin, self-contained
// function rather than a closure handed to an orchestrator. Build
// resolves a factory by name for callers
// (notably cmd/hyreach-demo) that select a scenario at runtime.
package scenarios
