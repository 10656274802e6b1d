package core

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/sanverite/locale-shim/internal/probe"
)

// Canonical encoding names reported by the policy.
const (
	EncodingUTF8  = "utf-8"
	EncodingASCII = "ascii"
)

// Error-handling modes attached to the standard streams. Stdin and stdout
// round-trip otherwise-unrepresentable bytes losslessly through surrogate
// escaping; stderr visibly escapes unencodable characters so diagnostics
// can never fail to print.
const (
	ErrorsSurrogateEscape  = "surrogateescape"
	ErrorsBackslashReplace = "backslashreplace"
)

// StreamSpec pairs a character encoding with an error-handling mode for one
// standard stream.
type StreamSpec struct {
	Encoding string
	Errors   string
}

// String renders the spec in the "encoding:errors" form external harnesses
// consume.
func (sp StreamSpec) String() string {
	return sp.Encoding + ":" + sp.Errors
}

// EncodingConfig is the fully-resolved encoding policy for the process:
// the filesystem encoding plus one spec per standard stream. Derived
// deterministically from a negotiation Snapshot; never configurable per
// invocation.
type EncodingConfig struct {
	FSEncoding string
	Stdin      StreamSpec
	Stdout     StreamSpec
	Stderr     StreamSpec
}

// Platform spellings folded into the canonical names. ANSI_X3.4-1968 and
// US-ASCII are how some hosts report the C locale's codeset.
var (
	utf8Spellings  = []string{"utf-8", "utf8"}
	asciiSpellings = []string{"ascii", "us-ascii", "ansi_x3.4-1968", "646"}
)

// NormalizeCodeset folds a platform codeset spelling into its canonical
// lowercase name ("utf-8", "ascii"). Unknown codesets are passed through
// lowercased.
func NormalizeCodeset(codeset string) string {
	c := strings.ToLower(strings.TrimSpace(codeset))
	switch {
	case lo.Contains(utf8Spellings, c):
		return EncodingUTF8
	case lo.Contains(asciiSpellings, c):
		return EncodingASCII
	default:
		return c
	}
}

// localeCodeset extracts the codeset suffix from a locale name of the form
// lang_REGION.CODESET[@modifier]. Empty when the name carries no suffix.
func localeCodeset(locale string) string {
	name, _, _ := strings.Cut(locale, "@")
	_, codeset, ok := strings.Cut(name, ".")
	if !ok {
		return ""
	}
	return codeset
}

// ResolveEncoding computes the encoding policy for the final negotiation
// state. The activator's Charmap is consulted only for a named, non-
// degenerate locale that carries no codeset suffix; it may be nil in tests
// that never hit that path.
func ResolveEncoding(ctx context.Context, snap Snapshot, activator probe.Activator) EncodingConfig {
	fs := fsEncoding(ctx, snap, activator)
	return EncodingConfig{
		FSEncoding: fs,
		Stdin:      StreamSpec{Encoding: fs, Errors: ErrorsSurrogateEscape},
		Stdout:     StreamSpec{Encoding: fs, Errors: ErrorsSurrogateEscape},
		Stderr:     StreamSpec{Encoding: fs, Errors: ErrorsBackslashReplace},
	}
}

func fsEncoding(ctx context.Context, snap Snapshot, activator probe.Activator) string {
	if snap.Phase == PhaseCoerced {
		return EncodingUTF8
	}
	if DegenerateGoverning(snap.GoverningValue, snap.GoverningSet) {
		// The C/POSIX default persists (disabled or no candidate).
		// Hosts spell its codeset ANSI_X3.4-1968 or US-ASCII; both
		// normalize to ascii, so report the canonical name directly.
		return EncodingASCII
	}
	if codeset := localeCodeset(snap.EffectiveLocale); codeset != "" {
		return NormalizeCodeset(codeset)
	}
	if activator != nil {
		if charmap, err := activator.Charmap(ctx); err == nil && charmap != "" {
			return NormalizeCodeset(charmap)
		}
	}
	// A named locale whose codeset cannot be determined gets the safe
	// ASCII floor rather than an optimistic utf-8.
	return EncodingASCII
}
