// Package env captures the locale-relevant process environment at startup.
//
// # Overview
//
// The env package provides a read-only snapshot (View) of the three POSIX
// locale variables that govern character classification — LC_ALL, LC_CTYPE,
// LANG — plus the coercion opt-out switch. The snapshot is taken exactly once
// before any text I/O is configured; everything downstream reads the View,
// never the live environment, so repeated runs with the same environment are
// guaranteed to make identical decisions.
//
// # Governing Value
//
// Governing() applies POSIX precedence: the first of LC_ALL, LC_CTYPE, LANG
// that is both set and non-empty is the governing value. If all three are
// unset or empty the governing value is reported as unset, which means the
// system default locale (typically "C") is in effect.
//
// # Opt-Out Switch
//
// CoercionDisabled() is true only for the exact literal "0". Any other value
// enables coercion — including the empty string, which is "set and enabling"
// rather than unset. Porting efforts routinely get this edge wrong; the tests
// pin it explicitly.
package env
