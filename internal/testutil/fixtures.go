package testutil

import "strings"

// Script joins protocol lines into newline-terminated input, the shape
// a harness writes to the oracle's stdin.
func Script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// TestLine prefixes s with the TEST: protocol marker.
func TestLine(s string) string {
	return "TEST:" + s
}
