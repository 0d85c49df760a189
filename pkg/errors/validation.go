package errors

import (
	"strings"
	"unicode"
)

// ValidateKey validates a key name used to select path values.
// Keys are compared byte-for-byte with object member names, so the rules only
// reject names that can never appear in a sensible project file:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "key cannot be empty")
	}

	if len(key) > 256 {
		return New(ErrCodeInvalidKey, "key too long (max 256 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "key %q contains control characters", key)
		}
	}

	return nil
}

// ValidatePath validates a target file path given on the command line or in
// the config file.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - No null bytes or control characters
//   - Must not name a directory-like target ("." or a trailing separator)
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if path == "." || path == ".." || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path %q must name a file", path)
	}

	return nil
}
