// Package testutil provides shared test utilities for rxprobe.
//
// The fixtures.go file builds protocol input for oracle and CLI tests:
//
//   - Script(lines...) - joins lines into newline-terminated input
//   - TestLine(s) - prefixes a test string with the TEST: marker
//
// The timeout.go file provides ContextWithTestDeadline, which derives
// a context from the test's own deadline so cancellation tests cannot
// hang the suite.
package testutil
