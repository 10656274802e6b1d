package core

import (
	"fmt"
	"io"
)

// The two fixed diagnostic templates. Wording is byte-for-byte what the
// wrapped runtime itself prints, because spawning harnesses compare child
// stderr exactly; do not reword.
const (
	coercionWarningFmt = "Python detected LC_CTYPE=C: LC_CTYPE coerced to %s " +
		"(set another locale or PYTHONCOERCECLOCALE=0 to disable this " +
		"locale coercion behavior)."

	cLocaleWarning = "Python runtime initialized with LC_CTYPE=C (a locale " +
		"with default ASCII encoding), which may cause Unicode " +
		"compatibility problems. Using C.UTF-8, C.utf8, or UTF-8 (if " +
		"available) as alternative Unicode-compatible locales is " +
		"recommended."
)

// Emitter writes at most one startup diagnostic line to the error stream.
// A process start gets a single emission; Emit is a no-op afterwards.
type Emitter struct {
	w             io.Writer
	warnOnCLocale bool
	emitted       bool
}

// NewEmitter constructs an emitter. warnOnCLocale gates the standalone
// degenerate-locale advisory (a build-level switch, see internal/build);
// the coercion notice is always compiled in.
func NewEmitter(w io.Writer, warnOnCLocale bool) *Emitter {
	if w == nil {
		panic("core.NewEmitter: writer is nil")
	}
	return &Emitter{w: w, warnOnCLocale: warnOnCLocale}
}

// Emit writes the single diagnostic appropriate for the final negotiation
// outcome:
//
//   - coerced: the coercion notice naming the committed candidate.
//   - any other terminal phase that leaves the process ASCII-classified
//     (unavailable, disabled, or a skipped locale whose codeset resolves to
//     ascii), when the degenerate-locale advisory is enabled: the advisory.
//   - otherwise: nothing.
func (e *Emitter) Emit(snap Snapshot, enc EncodingConfig) {
	if e.emitted {
		return
	}
	switch {
	case snap.Phase == PhaseCoerced:
		fmt.Fprintf(e.w, coercionWarningFmt+"\n", snap.CoercedTo)
		e.emitted = true
	case e.warnOnCLocale && snap.Phase.Terminal() && enc.FSEncoding == EncodingASCII:
		fmt.Fprintln(e.w, cLocaleWarning)
		e.emitted = true
	}
}
