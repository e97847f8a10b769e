package engine

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultFlavor is used when neither a flag nor the config file picks
// an engine.
const DefaultFlavor = "go"

// Regexp is a compiled pattern in some flavor.
type Regexp interface {
	// Pattern returns the source text the expression was compiled from.
	Pattern() string

	// MatchesStart reports whether the expression matches input starting
	// at offset 0. The match does not need to consume the whole input.
	MatchesStart(input string) (bool, error)
}

// Engine compiles patterns for a single regex flavor. Implementations
// must be safe for concurrent use; they hold no state beyond the
// flavor identity.
type Engine interface {
	// Name returns the flavor name as used in flags and config.
	Name() string

	// Compile parses pattern and returns a compiled Regexp. The error
	// message of a failed compile is reported verbatim to the harness,
	// so it should be the underlying engine's own diagnostic.
	Compile(pattern string) (Regexp, error)
}

var flavors = map[string]Engine{
	"go":   goEngine{},
	"pcre": pcreEngine{},
}

// Lookup returns the engine for the named flavor.
func Lookup(name string) (Engine, error) {
	eng, ok := flavors[name]
	if !ok {
		return nil, fmt.Errorf("unknown regex flavor %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return eng, nil
}

// Names returns the supported flavor names in sorted order.
func Names() []string {
	names := make([]string, 0, len(flavors))
	for name := range flavors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
