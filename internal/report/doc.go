// Package report exposes the startup encoding configuration to external
// consumers.
//
// Separation of Concerns
//
// The report package defines public view types (decoupled from core), maps
// the terminal core snapshot plus resolved encoding policy into them, and
// renders the result. The core package remains unaware of output formats.
//
// Formats
//
// - text: the spawning-harness contract — four bare lines, the filesystem
// encoding followed by stdin/stdout/stderr as "encoding:errors".
// - json, yaml: the full structured view including locale provenance
// (governing variable, negotiation phase, coercion target).
//
// GeneratedAt uses RFC3339; TimeNow is the test seam for it.
package report
