// Package history keeps a log of the queries that were run and what they
// resolved to.
package history

import (
	"database/sql"
	"strings"

	"github.com/VoxDroid/gitexplore/internal/match"
)

// Entry is one logged query.
type Entry struct {
	ID         int64
	Raw        string
	Normalized string
	Outcome    string
	// Usage holds the usage of every result, one per line; it is NULL when
	// nothing matched.
	Usage      sql.NullString
	Mode       string
	DataDigest string
	CreatedAt  string
}

// NewEntry describes the outcome of a query as a log entry.
func NewEntry(raw, tokens []string, out match.Outcome, mode match.Mode, digest string) Entry {
	e := Entry{
		Raw:        strings.Join(raw, " "),
		Normalized: strings.Join(tokens, " "),
		Outcome:    out.Kind.String(),
		Mode:       mode.String(),
		DataDigest: digest,
	}
	if len(out.Results) > 0 {
		usages := make([]string, 0, len(out.Results))
		for _, c := range out.Results {
			usages = append(usages, c.Source.Usage)
		}
		e.Usage = sql.NullString{String: strings.Join(usages, "\n"), Valid: true}
	}
	return e
}
