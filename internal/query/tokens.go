package query

import (
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
)

// Sanitize removes control characters and the zero-width characters that
// copy/paste tends to introduce, then trims surrounding whitespace.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' {
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			continue
		}
		out = append(out, r)
	}
	return strings.TrimSpace(string(out))
}

// Tokens splits command line arguments into words, so that a quoted
// argument such as "add a commit" yields the same tokens as three separate
// arguments. Arguments are split with shell quoting rules; an argument with
// unbalanced quotes falls back to whitespace splitting. Empty words are
// dropped.
func Tokens(args []string) []string {
	var out []string
	for _, arg := range args {
		arg = Sanitize(arg)
		if arg == "" {
			continue
		}
		words, err := shellquote.Split(arg)
		if err != nil {
			words = strings.Fields(arg)
		}
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}
