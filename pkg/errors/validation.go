package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// configExtensions maps accepted config file extensions to their format.
var configExtensions = map[string]string{
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
}

// ConfigFormat validates a config file path and returns its format
// ("toml" or "yaml") derived from the extension.
func ConfigFormat(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := configExtensions[ext]
	if !ok {
		return "", New(ErrCodeInvalidFormat, "unsupported config file %q (want .toml, .yaml or .yml)", filepath.Base(path))
	}
	return format, nil
}

// ValidateFinite rejects NaN and infinite values for the named quantity.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	return nil
}
