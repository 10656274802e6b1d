package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects a rendering of the Report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
	}
}

// Render writes the report to w in the requested format.
//
// The text format is the harness contract: exactly four bare lines — the
// filesystem encoding, then stdin, stdout and stderr each as
// "encoding:errors" — with nothing else on stdout. The structured formats
// carry the full view including locale provenance.
func Render(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n",
			r.FSEncoding, r.Stdin, r.Stdout, r.Stderr)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}
