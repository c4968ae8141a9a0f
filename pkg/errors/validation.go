package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// archRegex matches Debian architecture tokens (dpkg architecture
// grammar: lowercase alphanumerics and hyphens, e.g. "amd64",
// "kfreebsd-i386", "all").
var archRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateArch validates an architecture token before it is used to
// build a mirror URL. It rejects tokens that could be used for path
// traversal as well as tokens dpkg would not accept.
//
// The validation rules are intentionally conservative:
//   - No empty tokens
//   - Lowercase alphanumerics and hyphens only
//   - Maximum length of 32 characters
//
// Whether the mirror actually publishes the architecture is only known
// after talking to it; a well-formed but unknown token surfaces later
// as a not-found error.
func ValidateArch(arch string) error {
	if arch == "" {
		return New(ErrCodeInvalidArch, "architecture cannot be empty")
	}

	if len(arch) > 32 {
		return New(ErrCodeInvalidArch, "architecture too long (max 32 characters)")
	}

	if !archRegex.MatchString(arch) {
		return New(ErrCodeInvalidArch, "invalid architecture: %q (expected something like amd64, arm64, mips)", arch)
	}

	return nil
}

// suiteRegex matches suite and component names as they appear under
// dists/ (e.g. "stable", "bookworm-updates", "non-free").
var suiteRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateSuite validates a suite name used in mirror paths.
func ValidateSuite(suite string) error {
	if suite == "" {
		return New(ErrCodeInvalidInput, "suite cannot be empty")
	}
	if !suiteRegex.MatchString(suite) || strings.Contains(suite, "..") {
		return New(ErrCodeInvalidInput, "invalid suite: %q", suite)
	}
	return nil
}

// ValidateComponent validates a component name used in mirror paths.
func ValidateComponent(component string) error {
	if component == "" {
		return New(ErrCodeInvalidInput, "component cannot be empty")
	}
	if !suiteRegex.MatchString(component) || strings.Contains(component, "..") {
		return New(ErrCodeInvalidInput, "invalid component: %q", component)
	}
	return nil
}

// ValidateMirrorURL validates a mirror base URL for safety.
// It ensures the URL has a safe scheme (http or https) and carries no
// control characters.
func ValidateMirrorURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidMirror, "mirror URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidMirror, "mirror URL must use http or https scheme")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMirror, "mirror URL contains invalid control characters")
		}
	}

	return nil
}

// ValidateTop validates the requested ranking size.
func ValidateTop(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidInput, "top must be a positive number, got %d", n)
	}
	return nil
}
