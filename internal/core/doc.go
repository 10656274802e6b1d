// Package core owns the startup locale negotiation, the resulting encoding
// policy, and the startup diagnostics.
//
// # Overview
//
// The core package models the coercion sequence as a small state machine
// plus a once-initialized State describing the process-wide character-
// classification locale. The sequence runs exactly once, single-threaded,
// before any application code or text I/O exists; afterwards State is
// read-only and every consumer observes the same committed value.
//
// # Lifecycle
//
// Phase reflects the negotiation progress:
//
//	start          -> governing-read
//	governing-read -> disabled | skipped | attempting
//	attempting     -> coerced | unavailable
//
// advance enforces these transitions; terminal phases have no outgoing
// edges. Negotiator.Run drives the machine from a captured env.View,
// probing UTF-8 candidates in priority order through a probe.Activator and
// committing at most one of them. Candidate exhaustion is the unavailable
// outcome — degraded but valid, never an error.
//
// # Encoding Policy
//
// ResolveEncoding derives the filesystem encoding and the per-stream
// encoding/error-mode pairs from the terminal Snapshot. The policy is
// fixed: streams share the filesystem encoding; stdin/stdout use
// surrogateescape so undecodable bytes round-trip losslessly; stderr uses
// backslashreplace so diagnostics always print. Platform codeset spellings
// (ANSI_X3.4-1968, US-ASCII, UTF8) normalize to the canonical lowercase
// names.
//
// # Diagnostics
//
// Emitter writes at most one advisory line per process start: the coercion
// notice on success, or — when enabled at build level — the standalone
// degenerate-locale advisory when the process ends up ASCII-classified.
// Both templates are byte-exact contracts with external harnesses.
package core
