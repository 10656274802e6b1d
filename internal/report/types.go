package report

import "time"

// Public view types rendered for external consumers. These are intentionally
// decoupled from the internal core types so the startup internals can change
// without breaking the printed contract.

// Report is the top-level view of the startup encoding configuration.
type Report struct {
	FSEncoding  string     `json:"fsencoding" yaml:"fsencoding"`
	Stdin       StreamView `json:"stdin" yaml:"stdin"`
	Stdout      StreamView `json:"stdout" yaml:"stdout"`
	Stderr      StreamView `json:"stderr" yaml:"stderr"`
	Locale      LocaleView `json:"locale" yaml:"locale"`
	GeneratedAt string     `json:"generated_at" yaml:"generated_at"` // RFC3339
}

// StreamView is one standard stream's encoding and error-handling mode.
type StreamView struct {
	Encoding string `json:"encoding" yaml:"encoding"`
	Errors   string `json:"errors" yaml:"errors"`
}

// String renders the stream in the "encoding:errors" form the text format
// prints line by line.
func (v StreamView) String() string {
	return v.Encoding + ":" + v.Errors
}

// LocaleView summarizes how the locale configuration was arrived at.
type LocaleView struct {
	Phase           string `json:"phase" yaml:"phase"`
	GoverningVar    string `json:"governing_var,omitempty" yaml:"governing_var,omitempty"`
	GoverningValue  string `json:"governing_value,omitempty" yaml:"governing_value,omitempty"`
	EffectiveLocale string `json:"effective_locale,omitempty" yaml:"effective_locale,omitempty"`
	CoercedTo       string `json:"coerced_to,omitempty" yaml:"coerced_to,omitempty"`
}

// TimeNow abstracts time for tests; overridden in tests.
var TimeNow = func() time.Time { return time.Now() }
