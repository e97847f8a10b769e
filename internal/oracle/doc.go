// Package oracle implements the line protocol a regex conformance
// harness drives over a pipe. The harness writes pattern and test
// lines; the oracle answers each with a single verdict line, flushed
// immediately so the harness never blocks on a buffered reply.
//
// The protocol has two variants:
//
//   - Interactive (Loop.Run): lines alternate between patterns and
//     "TEST:"-prefixed test strings, with one optional pending pattern
//     as the only session state.
//   - Compile-only (Loop.RunCompileOnly): every line is an independent
//     pattern, no session state.
//
// Verdicts are the fixed tokens "success" and "test good", or an
// engine diagnostic escaped for single-line transport (see
// EscapeDiagnostic).
package oracle
