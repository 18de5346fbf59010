// Package report renders operation results for the CLI and the HTTP API.
package report

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Format names a result rendering format.
type Format string

// Supported output formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, YAML:
		return Format(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "report: unknown output format %q", s)
}

// Render writes v to w in the requested format. JSON output is indented
// for terminal readability.
func Render(w io.Writer, v any, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		if err := enc.Close(); err != nil {
			return eris.Wrap(err, "report: close yaml encoder")
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "report: encode json")
		}
		return nil
	}
}
