package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/gitexplore/internal/options"
)

func leaf(label, value string) options.Node {
	return options.Node{Kind: options.Leaf, Label: label, Value: value}
}

func usage(label, value, u string) options.Node {
	return options.Node{Kind: options.WithUsage, Label: label, Value: value, Usage: u}
}

func noted(label, value, u, note string) options.Node {
	return options.Node{Kind: options.WithUsageAndNote, Label: label, Value: value, Usage: u, Note: note}
}

// testTree is a small synthetic reference with one of each awkward case.
func testTree() *options.Tree {
	return &options.Tree{
		Primary: []options.Node{
			leaf("add", "add"),
			leaf("address book", "address"),
			leaf("delete", "delete"),
			leaf("orphan", "orphan"),
		},
		Secondary: map[string][]options.Node{
			"add": {
				usage("new changes", "new-changes", "git add <file>"),
				leaf("new branch", "new-branch"),
				leaf("dangling", "missing-tertiary"),
				noted("annotated tag", "tag", "git tag -a <t>", "needs a message"),
			},
			"delete": {
				usage("local branch", "local", "git branch -d <b>"),
				usage("remote branch", "remote", "git push <r> --delete <b>"),
				usage("file", "file", "git rm <f>"),
			},
		},
		Tertiary: map[string][]options.Node{
			"new-branch": {
				usage("and remain on the current branch", "stay", "git branch <b>"),
				usage("and switch to the new branch", "switch", "git checkout -b <b>"),
			},
		},
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, m)
	m, err = ParseMode("Word")
	require.NoError(t, err)
	assert.Equal(t, ModeWord, m)
	_, err = ParseMode("fuzzy")
	assert.Error(t, err)
	assert.Equal(t, "substring", ModeSubstring.String())
	assert.Equal(t, "word", ModeWord.String())
}

func TestPrimaryFirstMatchWins(t *testing.T) {
	tree := testTree()

	// "add" is also inside "address book"; the earlier entry wins
	n, err := Primary(tree, "add")
	require.NoError(t, err)
	assert.Same(t, &tree.Primary[0], n)

	n, err = Primary(tree, "addr")
	require.NoError(t, err)
	assert.Equal(t, "address", n.Value)

	again, err := Primary(tree, "addr")
	require.NoError(t, err)
	assert.Same(t, n, again)

	_, err = Primary(tree, "weird")
	assert.ErrorIs(t, err, ErrNoPrimaryMatch)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestPrimaryIsCaseSensitive(t *testing.T) {
	_, err := Primary(testTree(), "ADD")
	assert.ErrorIs(t, err, ErrNoPrimaryMatch)
}

func TestCombine(t *testing.T) {
	tree := testTree()
	got := Combine(tree, "add")

	phrases := make([]string, 0, len(got))
	for _, c := range got {
		phrases = append(phrases, c.Phrase)
		assert.Zero(t, c.Score)
		assert.True(t, c.Source.HasUsage(), "%q has no usage", c.Phrase)
	}
	assert.Equal(t, []string{
		"add new changes",
		"add new branch and remain on the current branch",
		"add new branch and switch to the new branch",
		"add annotated tag",
	}, phrases)

	assert.Same(t, &tree.Secondary["add"][0], got[0].Source)
	assert.Same(t, &tree.Tertiary["new-branch"][1], got[2].Source)
	assert.Same(t, &tree.Secondary["add"][3], got[3].Source)
}

func TestCombineMissingKey(t *testing.T) {
	assert.Empty(t, Combine(testTree(), "orphan"))
	assert.Empty(t, Combine(testTree(), "nothing"))
}

func TestScoreModes(t *testing.T) {
	phrase := "delete local branch"
	assert.Equal(t, 3, Score(phrase, []string{"delete", "local", "branch"}, ModeSubstring))
	assert.Equal(t, 3, Score(phrase, []string{"delete", "local", "branch"}, ModeWord))

	// "ran" is not a word of the phrase but sits inside "branch"
	assert.Equal(t, 1, Score(phrase, []string{"ran"}, ModeSubstring))
	assert.Equal(t, 0, Score(phrase, []string{"ran"}, ModeWord))

	// each token scores once however many times it occurs
	assert.Equal(t, 1, Score("branch branch branch", []string{"branch"}, ModeSubstring))
	assert.Equal(t, 0, Score(phrase, nil, ModeSubstring))
}

func TestRankIsStable(t *testing.T) {
	cands := []Candidate{
		{Phrase: "x one"},
		{Phrase: "x two y"},
		{Phrase: "x three"},
		{Phrase: "x four y"},
	}
	ranked := Rank(cands, []string{"x", "y"}, ModeSubstring)
	got := make([]string, 0, len(ranked))
	for _, c := range ranked {
		got = append(got, c.Phrase)
	}
	assert.Equal(t, []string{"x two y", "x four y", "x one", "x three"}, got)
	assert.Equal(t, []int{2, 2, 1, 1}, []int{ranked[0].Score, ranked[1].Score, ranked[2].Score, ranked[3].Score})

	tied := TieSet(ranked)
	require.Len(t, tied, 2)
	assert.Equal(t, "x two y", tied[0].Phrase)
	assert.Equal(t, "x four y", tied[1].Phrase)
	assert.Nil(t, TieSet(nil))
}

func TestRunDefinitive(t *testing.T) {
	r := NewRunner(testTree(), ModeSubstring, nil)
	out, err := r.Run([]string{"add", "new", "branch", "remain", "current"})
	require.NoError(t, err)
	assert.Equal(t, Definitive, out.Kind)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "git branch <b>", out.Results[0].Source.Usage)
	assert.Equal(t, 5, out.Results[0].Score)
	assert.Equal(t, "add", out.Primary.Value)
	assert.Equal(t, 4, out.Considered)
}

func TestRunAmbiguous(t *testing.T) {
	r := NewRunner(testTree(), ModeSubstring, nil)
	out, err := r.Run([]string{"delete", "branch"})
	require.NoError(t, err)
	assert.Equal(t, Ambiguous, out.Kind)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "delete local branch", out.Results[0].Phrase)
	assert.Equal(t, "delete remote branch", out.Results[1].Phrase)
}

func TestRunNoteCarried(t *testing.T) {
	r := NewRunner(testTree(), ModeSubstring, nil)
	out, err := r.Run([]string{"add", "tag"})
	require.NoError(t, err)
	assert.Equal(t, Definitive, out.Kind)
	assert.True(t, out.Results[0].Source.HasNote())
	assert.Equal(t, "needs a message", out.Results[0].Source.Note)
}

func TestRunNoMatch(t *testing.T) {
	r := NewRunner(testTree(), ModeSubstring, nil)

	out, err := r.Run([]string{"weird", "commit"})
	assert.ErrorIs(t, err, ErrNoPrimaryMatch)
	assert.Equal(t, NoMatch, out.Kind)
	assert.Nil(t, out.Primary)

	out, err = r.Run([]string{"orphan"})
	assert.ErrorIs(t, err, ErrNoSecondaryMatch)
	assert.Equal(t, NoMatch, out.Kind)
	assert.Equal(t, "orphan", out.Primary.Value)
	assert.Zero(t, out.Considered)

	_, err = r.Run([]string{})
	assert.ErrorIs(t, err, ErrNoPrimaryMatch)
}

func TestRunZeroScoreIsNoMatch(t *testing.T) {
	// "dele" selects delete, but in word mode no phrase contains it as a word
	r := NewRunner(testTree(), ModeWord, nil)
	out, err := r.Run([]string{"dele"})
	assert.ErrorIs(t, err, ErrNoSecondaryMatch)
	assert.Equal(t, 3, out.Considered)
	assert.Empty(t, out.Results)
}

func TestRunWordModeDropsFalseHit(t *testing.T) {
	tree := testTree()
	sub, err := NewRunner(tree, ModeSubstring, nil).Run([]string{"delete", "ran", "file"})
	require.NoError(t, err)
	word, err := NewRunner(tree, ModeWord, nil).Run([]string{"delete", "ran", "file"})
	require.NoError(t, err)

	// in substring mode "ran" lifts both branch phrases level with "delete file"
	assert.Equal(t, Ambiguous, sub.Kind)
	assert.Len(t, sub.Results, 3)
	assert.Equal(t, Definitive, word.Kind)
	assert.Equal(t, "git rm <f>", word.Results[0].Source.Usage)
}

func TestRunTieProperty(t *testing.T) {
	r := NewRunner(testTree(), ModeSubstring, nil)
	queries := [][]string{
		{"add"},
		{"add", "new"},
		{"add", "new", "branch", "switch"},
		{"delete"},
		{"delete", "remote"},
	}
	for _, q := range queries {
		out, err := r.Run(q)
		require.NoError(t, err, "query %q", q)
		ranked := Rank(Combine(r.tree, out.Primary.Value), q, ModeSubstring)
		top := ranked[0].Score
		var want []string
		for _, c := range ranked {
			if c.Score == top {
				want = append(want, c.Phrase)
			}
		}
		var got []string
		for _, c := range out.Results {
			got = append(got, c.Phrase)
		}
		assert.Equal(t, want, got, "query %q", q)
		if len(want) == 1 {
			assert.Equal(t, Definitive, out.Kind)
		} else {
			assert.Equal(t, Ambiguous, out.Kind)
		}
	}
}
