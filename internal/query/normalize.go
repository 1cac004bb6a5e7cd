// Package query turns the words typed on the command line into the token
// sequence the matcher works with.
package query

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyQuery is returned when no search terms were given.
var ErrEmptyQuery = errors.New("no search terms used")

// fillers are dropped from every query.
var fillers = map[string]struct{}{
	"a":   {},
	"an":  {},
	"the": {},
}

// Normalize lowercases tokens and drops the articles "a", "an" and "the",
// keeping the order of the remaining tokens. It fails only when tokens is
// empty; a query made entirely of articles normalizes to an empty, non-nil
// slice.
func Normalize(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyQuery
	}
	// a Caser keeps state between calls, so each call gets its own
	lower := cases.Lower(language.Und)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = lower.String(tok)
		if IsFiller(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

// IsFiller reports whether an already lowercased token is an article.
func IsFiller(tok string) bool {
	_, ok := fillers[tok]
	return ok
}
