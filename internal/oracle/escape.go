package oracle

import "strings"

// EscapeDiagnostic makes an engine diagnostic safe for single-line
// transport. Backslashes are doubled before newlines are rewritten to
// the two-character sequence `\n`; in that order, a literal
// backslash-n in the message stays distinct from a real newline.
func EscapeDiagnostic(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "\n", `\n`)
}
