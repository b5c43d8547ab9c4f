// Package redact removes credentials from strings before they are logged or
// returned in error details. Upstream errors often echo request URLs and
// headers, which carry the language model API key and the chat webhook secret.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedWebhookPlaceholder    = "[REDACTED_WEBHOOK]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; webhook URLs go first so their path segments are not
// half-matched by the key patterns.
var rules = []rule{
	{regexp.MustCompile(`https://hooks\.slack\.com/[A-Za-z0-9/_-]+`), RedactedWebhookPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`sk-[A-Za-z0-9_-]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`), RedactedKeyPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)\s*[:=]\s*['"]?[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`://[^/\s:@]+:[^/\s@]+@`), "://" + RedactedCredentialPlaceholder + "@"},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllLiteralString(result, r.placeholder)
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
