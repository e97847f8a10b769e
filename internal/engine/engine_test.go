package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownFlavors(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		eng, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, eng.Name())
	}
}

func TestLookup_UnknownFlavor(t *testing.T) {
	t.Parallel()

	_, err := Lookup("perl6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown regex flavor "perl6"`)
	assert.Contains(t, err.Error(), "go, pcre")
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"go", "pcre"}, Names())
}

func TestDefaultFlavor_Exists(t *testing.T) {
	t.Parallel()

	_, err := Lookup(DefaultFlavor)
	assert.NoError(t, err)
}

func TestGoEngine_CompileError(t *testing.T) {
	t.Parallel()

	eng, err := Lookup("go")
	require.NoError(t, err)

	_, err = eng.Compile("(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing closing")
}

func TestGoEngine_MatchesStart(t *testing.T) {
	t.Parallel()

	eng, err := Lookup("go")
	require.NoError(t, err)

	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{name: "match at start", pattern: "a+", input: "aaa", want: true},
		{name: "partial match at start", pattern: "a+", input: "aab", want: true},
		{name: "match only mid-string", pattern: "b+", input: "abb", want: false},
		{name: "no match at all", pattern: "a+", input: "xyz", want: false},
		{name: "empty match at start", pattern: "a*", input: "bbb", want: true},
		{name: "empty input", pattern: "a+", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			re, err := eng.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, re.Pattern())

			got, err := re.MatchesStart(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPCREEngine_AcceptsLookaround(t *testing.T) {
	t.Parallel()

	pcre, err := Lookup("pcre")
	require.NoError(t, err)

	re, err := pcre.Compile("a(?=b)")
	require.NoError(t, err)

	ok, err := re.MatchesStart("ab")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = re.MatchesStart("ac")
	require.NoError(t, err)
	assert.False(t, ok)

	// The RE2 flavor rejects the same construct.
	goEng, err := Lookup("go")
	require.NoError(t, err)
	_, err = goEng.Compile("a(?=b)")
	assert.Error(t, err)
}

func TestPCREEngine_Backreference(t *testing.T) {
	t.Parallel()

	pcre, err := Lookup("pcre")
	require.NoError(t, err)

	re, err := pcre.Compile(`(a)\1`)
	require.NoError(t, err)
	assert.Equal(t, `(a)\1`, re.Pattern())

	ok, err := re.MatchesStart("aa")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = re.MatchesStart("ab")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPCREEngine_CompileError(t *testing.T) {
	t.Parallel()

	pcre, err := Lookup("pcre")
	require.NoError(t, err)

	_, err = pcre.Compile("(")
	assert.Error(t, err)
}

func TestPCREEngine_MatchAnchoredAtStart(t *testing.T) {
	t.Parallel()

	pcre, err := Lookup("pcre")
	require.NoError(t, err)

	re, err := pcre.Compile("b+")
	require.NoError(t, err)

	ok, err := re.MatchesStart("abb")
	require.NoError(t, err)
	assert.False(t, ok)
}
