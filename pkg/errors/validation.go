package errors

import (
	"strings"
	"unicode"
)

// ValidateMissionName validates a mission name for safety and correctness.
// Mission names end up in cache keys, file names, and store queries, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
func ValidateMissionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidMission, "mission name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidMission, "mission name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMission, "mission name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidMission, "mission name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateStepID validates a step identifier. Step IDs flow into rendered
// SVG, DOT output, and cache keys; structural problems (dangling references,
// duplicates) are the plan package's concern, this only rejects unsafe
// content:
//   - No empty IDs
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateStepID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPlan, "step id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidPlan, "step id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlan, "step id contains invalid control characters")
		}
	}

	return nil
}
