// Package flags extracts include paths, defines and language standards from
// compiler command line flags.
package flags

import (
	"regexp"
	"slices"

	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// IncludePrefix selects -I options.
	IncludePrefix = "I"
	// DefinePrefix selects -D options.
	DefinePrefix = "D"
)

var standardPattern = regexp.MustCompile(`(?s)^-std=(.+)$`)

// Set holds the tokenized C and C++ flags of one run.
type Set struct {
	C   []string
	CXX []string
}

// Tokenize splits both flag strings with tok.
func Tokenize(tok ports.Tokenizer, cflags, cxxflags string) (Set, error) {
	c, err := tok.Split(cflags)
	if err != nil {
		return Set{}, zerr.With(err, "option", "cflags")
	}
	cxx, err := tok.Split(cxxflags)
	if err != nil {
		return Set{}, zerr.With(err, "option", "cxxflags")
	}
	return Set{C: c, CXX: cxx}, nil
}

// Combined returns the C flags followed by the C++ flags.
func (s Set) Combined() []string {
	combined := make([]string, 0, len(s.C)+len(s.CXX))
	combined = append(combined, s.C...)
	return append(combined, s.CXX...)
}

// ExtractOption returns the sorted, unique values of the -<prefix> option.
// Both the glued form (-Ivalue) and the separated form (-I value) are
// recognized. A separated flag consumes the following token; a trailing
// flag without a value is ignored.
func ExtractOption(tokens []string, prefix string) []string {
	seen := make(map[string]struct{})

	glued := regexp.MustCompile(`(?s)^-` + regexp.QuoteMeta(prefix) + `(.+)$`)
	for _, token := range tokens {
		if m := glued.FindStringSubmatch(token); m != nil {
			seen[m[1]] = struct{}{}
		}
	}

	flag := "-" + prefix
	for i := 0; i < len(tokens); {
		if tokens[i] == flag && i+1 < len(tokens) {
			seen[tokens[i+1]] = struct{}{}
			i += 2
			continue
		}
		i++
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)

	return values
}

// ExtractStandard returns the value of the first -std= flag.
// Later -std= flags are ignored.
func ExtractStandard(tokens []string) (string, bool) {
	for _, token := range tokens {
		if m := standardPattern.FindStringSubmatch(token); m != nil {
			return m[1], true
		}
	}
	return "", false
}
