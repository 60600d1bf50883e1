// Package export encodes device reports as JSON, YAML or XML property lists.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"howett.net/plist"

	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Plist Format = "plist"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a case-insensitive name to a Format. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "plist":
		return Plist, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension for f, without the dot. The agent uses
// it to name reports written into a directory.
func (f Format) Extension() string {
	return string(f)
}

// Encode writes report to w in format f.
func Encode(w io.Writer, f Format, report *models.DeviceReport) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	case Plist:
		enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
		enc.Indent("\t")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode plist: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return nil
}
