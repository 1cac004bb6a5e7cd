package match

import (
	"strings"

	"github.com/VoxDroid/gitexplore/internal/options"
)

// Candidate is a phrase built along one path through the tiers, tied to the
// node that supplies its usage.
type Candidate struct {
	Phrase string
	Score  int
	Source *options.Node
}

// Combine expands the secondary options under key into candidate phrases.
// A Leaf secondary option is replaced by one phrase per tertiary option
// under its value; any other secondary option yields one phrase of its own.
// Phrases are "key secondary-label [tertiary-label]". A key with no secondary
// entry, or a leaf with no tertiary entry, contributes nothing. Candidates
// come back unscored, in tree order.
func Combine(tree *options.Tree, key string) []Candidate {
	secondary, ok := tree.Secondary[key]
	if !ok {
		return nil
	}
	var out []Candidate
	for i := range secondary {
		s := &secondary[i]
		if s.Kind != options.Leaf {
			out = append(out, Candidate{
				Phrase: strings.Join([]string{key, s.Label}, " "),
				Source: s,
			})
			continue
		}
		tertiary, ok := tree.Tertiary[s.Value]
		if !ok {
			continue
		}
		for j := range tertiary {
			out = append(out, Candidate{
				Phrase: strings.Join([]string{key, s.Label, tertiary[j].Label}, " "),
				Source: &tertiary[j],
			})
		}
	}
	return out
}
