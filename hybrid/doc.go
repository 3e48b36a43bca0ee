// Package hybrid defines the automaton data model the reachability
// engine operates over (spec §3): Location(n), Transition(n), and
// Hybrid automaton(n). Locations and transitions are created up front
// and live for the whole run (spec §3 "Lifecycles").
//
// Validation follows a graph-construction discipline of sentinel
// errors for missing vertices, generalised to the stricter failure
// mode spec §7 calls for: it classifies "transition
// referencing an unknown location" and "mismatched dimensions" as
// programming errors that "abort the run with a diagnostic — never
// caught" — here that is Validate returning an error that the engine's
// entry point is expected to treat as fatal (panic via
// InvalidAutomatonError), not a recoverable result.
package hybrid
