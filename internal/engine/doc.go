// Package engine abstracts over the regex flavors the oracle can speak
// for. Each flavor is an Engine that compiles pattern text into a
// Regexp; the oracle only ever needs compilation and an anchored match
// check, so the interfaces stay that narrow.
//
// Two flavors are built in:
//
//   - "go" - the standard library regexp package (RE2 syntax). This is
//     the default.
//   - "pcre" - dlclark/regexp2, a backtracking engine that accepts
//     Perl constructs RE2 rejects (lookaround, backreferences, atomic
//     groups).
package engine
