package env

import "os"

// Names of the environment variables consulted during startup.
const (
	VarLCAll   = "LC_ALL"
	VarLCCtype = "LC_CTYPE"
	VarLang    = "LANG"

	// VarCoerce is the opt-out switch honored by the runtimes this shim
	// fronts. Only the exact literal "0" disables coercion.
	VarCoerce = "PYTHONCOERCECLOCALE"
)

// Value is a single captured environment variable. Set distinguishes an
// unset variable from one set to the empty string; the two are not
// interchangeable for the opt-out switch.
type Value struct {
	Set   bool
	Value string
}

// View is an immutable snapshot of the locale-relevant environment, taken
// once at process start. All later decisions read from the snapshot, never
// from the live environment, so a run is a pure function of its View.
type View struct {
	LCAll   Value
	LCCtype Value
	Lang    Value
	Coerce  Value
}

// Snapshot captures the current values of LC_ALL, LC_CTYPE, LANG and the
// coercion opt-out switch. Pure read; no side effects.
func Snapshot() View {
	return View{
		LCAll:   lookup(VarLCAll),
		LCCtype: lookup(VarLCCtype),
		Lang:    lookup(VarLang),
		Coerce:  lookup(VarCoerce),
	}
}

func lookup(key string) Value {
	v, ok := os.LookupEnv(key)
	return Value{Set: ok, Value: v}
}

// Governing returns the governing locale value and the variable that carried
// it, following POSIX precedence: LC_ALL first, then LC_CTYPE, then LANG.
// The first variable that is both set and non-empty wins. If none qualifies,
// ok is false and the system default (typically the C locale) is in effect.
func (v View) Governing() (value string, variable string, ok bool) {
	ordered := []struct {
		name string
		val  Value
	}{
		{VarLCAll, v.LCAll},
		{VarLCCtype, v.LCCtype},
		{VarLang, v.Lang},
	}
	for _, entry := range ordered {
		if entry.val.Set && entry.val.Value != "" {
			return entry.val.Value, entry.name, true
		}
	}
	return "", "", false
}

// CoercionDisabled reports whether the opt-out switch disables coercion.
// True only when the variable is set to the exact literal "0". Every other
// state enables coercion, including the empty string: an empty value counts
// as "set and enabling", not as unset. The asymmetry is intentional and
// load-bearing; callers must not "fix" it by treating "" like unset.
func (v View) CoercionDisabled() bool {
	return v.Coerce.Set && v.Coerce.Value == "0"
}
