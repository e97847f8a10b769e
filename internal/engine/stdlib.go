package engine

import "regexp"

// goEngine is the RE2 flavor backed by the standard library.
type goEngine struct{}

func (goEngine) Name() string { return "go" }

func (goEngine) Compile(pattern string) (Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return goRegexp{re: re}, nil
}

type goRegexp struct {
	re *regexp.Regexp
}

func (r goRegexp) Pattern() string { return r.re.String() }

// MatchesStart relies on leftmost-match semantics: if the pattern
// matches anywhere, the leftmost match begins at offset 0 exactly when
// the pattern matches at the start.
func (r goRegexp) MatchesStart(input string) (bool, error) {
	loc := r.re.FindStringIndex(input)
	return loc != nil && loc[0] == 0, nil
}
