// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. Error messages can carry connection
// strings, credentials, tokens, or raw SQL; passing them through this package
// keeps that data out of log output.
package redact

import "regexp"

// Placeholders substituted for matched sensitive content.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled patterns, applied in order.
var redactions = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Database connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), RedactedCredentialPlaceholder},

	// Passwords in key=value or key: value form
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},

	// API keys, secrets, and bearer tokens
	{regexp.MustCompile(`(?i)(api[_-]?key|secret|token|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},

	// JWT tokens (three base64url segments, first two starting with eyJ)
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},

	// Filesystem paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},

	// SQL fragments leaked from driver errors
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)[\s\w,*()='"]*`), "[REDACTED_SQL]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range redactions {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
