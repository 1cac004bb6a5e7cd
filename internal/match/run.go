package match

import (
	"io"
	"log/slog"

	"github.com/VoxDroid/gitexplore/internal/options"
)

// Kind is the terminal state of a query.
type Kind int

const (
	// NoMatch means either phase found nothing.
	NoMatch Kind = iota
	// Definitive means exactly one candidate had the top score.
	Definitive
	// Ambiguous means several candidates shared the top score.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Definitive:
		return "definitive"
	case Ambiguous:
		return "ambiguous"
	default:
		return "no-match"
	}
}

// Outcome is the result of one query.
type Outcome struct {
	Kind       Kind
	// Primary is the phase-one match, nil when phase one failed.
	Primary    *options.Node
	// Results holds the tie set: one candidate when Definitive, several when
	// Ambiguous, none otherwise.
	Results    []Candidate
	// Considered is the number of candidates phase two scored.
	Considered int
}

// Runner runs queries against a tree. A Runner holds no per-query state and
// may be used from several goroutines at once.
type Runner struct {
	tree   *options.Tree
	mode   Mode
	logger *slog.Logger
}

// NewRunner returns a Runner over tree. A nil logger discards log output.
func NewRunner(tree *options.Tree, mode Mode, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{tree: tree, mode: mode, logger: logger}
}

// Mode returns the scoring mode the Runner was built with.
func (r *Runner) Mode() Mode { return r.mode }

// Run matches a normalized query. When nothing matches it returns an Outcome
// of kind NoMatch together with ErrNoPrimaryMatch or ErrNoSecondaryMatch; no
// other error is returned.
func (r *Runner) Run(tokens []string) (Outcome, error) {
	// a query of nothing but articles has no first token to match on
	if len(tokens) == 0 {
		r.logger.Debug("empty query after normalization")
		return Outcome{Kind: NoMatch}, ErrNoPrimaryMatch
	}

	primary, err := Primary(r.tree, tokens[0])
	if err != nil {
		r.logger.Debug("no primary option", "token", tokens[0])
		return Outcome{Kind: NoMatch}, err
	}
	r.logger.Debug("primary option", "token", tokens[0], "label", primary.Label, "key", primary.Value)

	ranked := Rank(Combine(r.tree, primary.Value), tokens, r.mode)
	out := Outcome{Kind: NoMatch, Primary: primary, Considered: len(ranked)}
	for _, c := range ranked {
		r.logger.Debug("candidate", "phrase", c.Phrase, "score", c.Score)
	}
	if len(ranked) == 0 || ranked[0].Score == 0 {
		r.logger.Debug("no scoring candidate", "key", primary.Value, "candidates", len(ranked))
		return out, ErrNoSecondaryMatch
	}

	out.Results = TieSet(ranked)
	if len(out.Results) == 1 {
		out.Kind = Definitive
	} else {
		out.Kind = Ambiguous
	}
	r.logger.Debug("query resolved", "outcome", out.Kind, "score", ranked[0].Score, "tied", len(out.Results))
	return out, nil
}
