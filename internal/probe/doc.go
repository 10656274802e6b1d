// Package probe owns the UTF-8 locale candidate list and the OS locale
// primitive used by the startup negotiation.
//
// # Overview
//
// Locale availability cannot be known statically or cross-platform: alias
// tables differ, and the binary locale-archive hides entries from the
// filesystem. The only reliable answer comes from asking the host, so the
// probe package provides bounded, deterministic checks against the live
// locale subsystem. Probes accept a context, enforce a timeout, are
// attempted at most once per candidate per process start, and leave no
// side effect on failure.
//
// # Candidate List
//
// Candidates() exposes the fixed, ordered list of UTF-8-capable locale
// names: "C.UTF-8", "C.utf8", "UTF-8". Order is priority; selection stops
// at the first name the OS accepts. The list is immutable.
//
// # Activator
//
// The Activator interface is the narrow seam between negotiation policy and
// the OS:
//
//   - Probe(ctx, name):  availability only, no lasting side effect.
//   - Commit(name):      make name the process-wide LC_CTYPE locale. No
//     other locale category is ever touched.
//   - Charmap(ctx):      the nl_langinfo-style codeset of the ambient
//     locale, for names carrying no codeset suffix.
//
// SystemActivator implements it against the host: a compiled-locale
// directory check as fast path, then a cached "locale -a" listing with
// spelling-insensitive matching, and "locale charmap" for codeset queries.
// Tests substitute a fake Activator and never touch the real locale state.
//
// # Error Model
//
// An individual rejected candidate is not an error; it is absorbed by the
// caller moving to the next candidate. Subprocess failures surface as
// wrapped errors from Charmap and degrade Probe to "not available".
package probe
