// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Provider error messages
// and transport errors may echo the API credential back (for example "Incorrect
// API key provided: sk-..."), so everything crossing a logging boundary passes
// through here first.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder   = "[REDACTED]"
	RedactedKeyPlaceholder = "[REDACTED_KEY]"
	RedactedJWTPlaceholder = "[REDACTED_JWT]"
	RedactedEmail          = "[REDACTED_EMAIL]"
)

// rule pairs a precompiled pattern with its replacement. Rules run in order,
// so the more specific ones come first.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var rules = []rule{
	// Bearer credentials in headers or dumped requests; the scheme is kept.
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=*]{8,}`), "${1}" + RedactedKeyPlaceholder},
	// OpenAI style secret keys, including project keys (sk-proj-...) and
	// partially masked echoes such as sk-abc***wxyz.
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_\-*]{6,}`), RedactedKeyPlaceholder},
	// JWT token pattern - the standard three-part base64url-encoded format
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	// key=value and key: value assignments of credentials
	{
		regexp.MustCompile(`(?i)(api[_-]?key|openai[_-]?sk|secret|token|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmail},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Secret removes every literal occurrence of secret from input before the
// pattern based rules run. It covers credentials that do not look like keys.
func Secret(input, secret string) string {
	if secret == "" {
		return String(input)
	}
	return String(strings.ReplaceAll(input, secret, RedactionPlaceholder))
}
