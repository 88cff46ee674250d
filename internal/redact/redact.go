// Package redact strips sensitive fragments from strings before they are
// logged: connection strings, bearer tokens, and SQL text. Error messages
// from the database layer routinely embed all three.
package redact

import "regexp"

// RedactionPlaceholder replaces any matched sensitive fragment.
const RedactionPlaceholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with inline credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),

	// JWT tokens (three base64url segments starting with eyJ)
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),

	// Bearer credentials in header-ish text
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+`),

	// SQL statements leaked into driver errors
	regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\S]{0,200}?(FROM|INTO|SET|WHERE)\s\S+`),
}

// String returns s with every sensitive fragment replaced.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
