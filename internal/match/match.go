// Package match implements the two-phase lookup of a normalized query in the
// reference tree: a primary option is picked from the first token, its
// secondary and tertiary options are expanded into candidate phrases, and the
// candidates are ranked by how many query tokens they contain.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VoxDroid/gitexplore/internal/options"
)

var (
	// ErrNoMatch is matched by both no-match errors.
	ErrNoMatch = errors.New("no match found")
	// ErrNoPrimaryMatch means no primary option contains the first token.
	ErrNoPrimaryMatch = fmt.Errorf("%w: no primary option", ErrNoMatch)
	// ErrNoSecondaryMatch means the primary option expanded to no candidate
	// that scored.
	ErrNoSecondaryMatch = fmt.Errorf("%w: no candidate phrase", ErrNoMatch)
)

// Mode selects how a token is looked for in a candidate phrase.
type Mode int

const (
	// ModeSubstring counts a token when it appears anywhere in the phrase,
	// including inside an unrelated word ("ran" hits "branch").
	ModeSubstring Mode = iota
	// ModeWord counts a token only when it equals a whole word of the phrase.
	ModeWord
)

func (m Mode) String() string {
	switch m {
	case ModeSubstring:
		return "substring"
	case ModeWord:
		return "word"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "substring" or "word". The empty string is ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return ModeSubstring, nil
	case "word":
		return ModeWord, nil
	default:
		return 0, fmt.Errorf("invalid match mode %q (want substring or word)", s)
	}
}

// Primary returns the first primary option whose label contains token.
// Earlier entries win; there is no best-match search.
func Primary(tree *options.Tree, token string) (*options.Node, error) {
	for i := range tree.Primary {
		if strings.Contains(tree.Primary[i].Label, token) {
			return &tree.Primary[i], nil
		}
	}
	return nil, ErrNoPrimaryMatch
}
