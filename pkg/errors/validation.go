package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// sampleNameRegex matches sample graph names such as "petersen" or "odd-cycle".
var sampleNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateSampleName validates a sample graph name before lookup.
// Existence is checked by the samples registry; this only rejects malformed input.
func ValidateSampleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSample, "sample name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidSample, "sample name too long (max 64 characters)")
	}
	if !sampleNameRegex.MatchString(name) {
		return New(ErrCodeInvalidSample, "invalid sample name: %q", name)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a palette entry.
func ValidateHexColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidConfig, "invalid palette color: %q (want #rrggbb)", c)
	}
	return nil
}
