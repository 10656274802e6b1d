package report

import (
	"time"

	"github.com/sanverite/locale-shim/internal/core"
)

// FromCoreSnapshot converts the terminal negotiation snapshot and resolved
// encoding policy into the public Report.
func FromCoreSnapshot(snap core.Snapshot, enc core.EncodingConfig) Report {
	return Report{
		FSEncoding: enc.FSEncoding,
		Stdin:      fromStreamSpec(enc.Stdin),
		Stdout:     fromStreamSpec(enc.Stdout),
		Stderr:     fromStreamSpec(enc.Stderr),
		Locale: LocaleView{
			Phase:           string(snap.Phase),
			GoverningVar:    snap.GoverningVar,
			GoverningValue:  snap.GoverningValue,
			EffectiveLocale: snap.EffectiveLocale,
			CoercedTo:       snap.CoercedTo,
		},
		GeneratedAt: TimeNow().UTC().Format(time.RFC3339),
	}
}

func fromStreamSpec(sp core.StreamSpec) StreamView {
	return StreamView{Encoding: sp.Encoding, Errors: sp.Errors}
}
