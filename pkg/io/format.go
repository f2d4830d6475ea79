package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// Format is a description document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// StdinPath is the path that denotes standard input.
const StdinPath = "-"

var extensions = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// FormatFromPath infers the document format from the file extension.
// Standard input is read as YAML.
func FormatFromPath(path string) (Format, error) {
	if path == StdinPath {
		return FormatYAML, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format of %q (use .json, .yaml, .yml or .toml)", path)
}

// ParseFormat resolves a format name such as "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", s)
}
