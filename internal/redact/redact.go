// Package redact masks candidate contact details and internal diagnostics in
// strings before they are logged or returned in error responses.
//
// Candidate names and student IDs are left intact so audit lines stay useful.
// Email addresses and phone numbers are personal contact data and are always
// masked.
package redact

import (
	"regexp"
)

// Redaction placeholders
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPhonePlaceholder = "[REDACTED_PHONE]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order. Stack traces go first so the paths inside them are not
// redacted piecemeal.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// JSON phone fields are masked whatever their length.
	{regexp.MustCompile(`"phone"\s*:\s*"[^"]*"`), `"phone":"` + RedactedPhonePlaceholder + `"`},
	{regexp.MustCompile(`\+?\b\d{6,}\b`), RedactedPhonePlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
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
