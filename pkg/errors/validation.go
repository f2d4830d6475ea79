package errors

import (
	"strings"
	"unicode"
)

// maxFormatLength bounds format names accepted from flags and config files.
const maxFormatLength = 32

// ValidateFormatName validates an output format name for safety.
// Format names are short lowercase identifiers (e.g., "xml", "json").
// Whether the format is actually supported is decided by the caller.
func ValidateFormatName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format name cannot be empty")
	}
	if len(name) > maxFormatLength {
		return New(ErrCodeInvalidFormat, "format name too long (max %d characters)", maxFormatLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidFormat, "format name contains invalid characters: %q", name)
		}
		if unicode.IsUpper(r) {
			return New(ErrCodeInvalidFormat, "format name must be lowercase: %q", name)
		}
	}
	return nil
}

// ValidatePath validates an input file path for safety.
// The special path "-" denotes standard input and is always accepted.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidInput, "path contains invalid characters")
	}
	return nil
}
