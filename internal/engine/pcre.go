package engine

import "github.com/dlclark/regexp2"

// pcreEngine is the Perl-compatible flavor backed by dlclark/regexp2.
type pcreEngine struct{}

func (pcreEngine) Name() string { return "pcre" }

func (pcreEngine) Compile(pattern string) (Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	return pcreRegexp{pattern: pattern, re: re}, nil
}

type pcreRegexp struct {
	pattern string
	re      *regexp2.Regexp
}

func (r pcreRegexp) Pattern() string { return r.pattern }

// MatchesStart scans candidate positions left to right, so the first
// match sits at index 0 exactly when the pattern matches at the start.
// The error branch is only reachable with a match timeout configured,
// which the oracle does not set.
func (r pcreRegexp) MatchesStart(input string) (bool, error) {
	m, err := r.re.FindStringMatch(input)
	if err != nil {
		return false, err
	}
	return m != nil && m.Index == 0, nil
}
