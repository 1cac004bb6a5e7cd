package match

import (
	"cmp"
	"slices"
	"strings"
)

// Score counts the tokens found in phrase. Each entry of tokens adds at most
// one point however often it occurs in the phrase.
func Score(phrase string, tokens []string, mode Mode) int {
	var words []string
	if mode == ModeWord {
		words = strings.Fields(phrase)
	}
	score := 0
	for _, tok := range tokens {
		var hit bool
		if mode == ModeWord {
			hit = slices.Contains(words, tok)
		} else {
			hit = strings.Contains(phrase, tok)
		}
		if hit {
			score++
		}
	}
	return score
}

// Rank scores candidates in place and sorts them by descending score.
// The sort is stable: equal scores keep their Combine order.
func Rank(candidates []Candidate, tokens []string, mode Mode) []Candidate {
	for i := range candidates {
		candidates[i].Score = Score(candidates[i].Phrase, tokens, mode)
	}
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return candidates
}

// TieSet returns the leading candidates that share the top score of a
// ranked slice.
func TieSet(ranked []Candidate) []Candidate {
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0].Score
	n := 1
	for n < len(ranked) && ranked[n].Score == top {
		n++
	}
	return ranked[:n]
}
