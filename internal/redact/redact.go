// Package redact scrubs connection strings, credentials, file paths, SQL
// fragments, and similar internal detail out of strings before they are
// logged or embedded in error responses. The database layer, the catalog
// loader, and the configuration layer all produce errors that can quote
// exactly that kind of detail.
package redact

import "regexp"

// Placeholders substituted for matched spans.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// rule pairs a pattern with its replacement. Rules apply in order, so the
// credential patterns run before the generic path and host ones.
type rule struct {
	re          *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Connection URLs with embedded credentials.
	{regexp.MustCompile(`(?i)(postgres|mysql|mongodb|db|database|connection)://[^@]+@`),
		RedactedCredentialPlaceholder},

	// Passwords and keys in key=value or key: value form.
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder},

	// File paths, Unix and Windows.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	// Stack traces.
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	// SQL statements.
	{regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|GRANT)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|DATABASE|SCHEMA|VIEW)(?:[\s\w,*()='"]+)?`,
	), "[REDACTED_SQL]"},

	// Parser and driver detail that narrows down internal structure.
	{regexp.MustCompile(`(?:at )?line ?\d+`), "[REDACTED_LINE_NUMBER]"},
	{regexp.MustCompile(`(?i)syntax error|syntax problem|parse error`), "[REDACTED_SYNTAX_ERROR]"},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		"[REDACTED_HOST]"},
	{regexp.MustCompile(`(?i)(?:no such file|file not found|can't open|cannot open|file error)`),
		"[REDACTED_FILE_ERROR]"},
}

// String returns input with every rule's matches replaced by its placeholder.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts err's Error() output. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
