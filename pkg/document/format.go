package document

import (
	"path/filepath"
	"strings"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat normalizes a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported document format %q (use json, yaml or toml)", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidFormat, "cannot infer document format of %s: no extension", path)
	}
	return ParseFormat(ext)
}
