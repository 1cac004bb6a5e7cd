// Package present renders query outcomes for the terminal.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/VoxDroid/gitexplore/internal/match"
	"github.com/VoxDroid/gitexplore/internal/options"
)

// NoMatchText is printed when a query found nothing.
const NoMatchText = "no match found"

// Printer writes outcomes to an io.Writer. Styling follows the color
// profile detected for the writer; with color disabled the output is plain
// text.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	usage   lipgloss.Style
	note    lipgloss.Style
	dim     lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4")),
		usage:   r.NewStyle().Bold(true),
		note:    r.NewStyle().Foreground(lipgloss.Color("#fde047")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
	}
}

// Outcome writes the result of a query.
func (p *Printer) Outcome(out match.Outcome) error {
	var b strings.Builder
	switch out.Kind {
	case match.Definitive:
		p.writeNode(&b, "", out.Results[0].Source)
	case match.Ambiguous:
		b.WriteString(p.heading.Render(fmt.Sprintf("%d options match equally well:", len(out.Results))) + "\n")
		for i, c := range out.Results {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p.dim.Render(c.Phrase))
			p.writeNode(&b, "   ", c.Source)
		}
	default:
		b.WriteString(NoMatchText + "\n")
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) writeNode(b *strings.Builder, indent string, n *options.Node) {
	for _, line := range strings.Split(n.Usage, "\n") {
		b.WriteString(indent + p.usage.Render(line) + "\n")
	}
	if n.HasNote() {
		b.WriteString(indent + p.note.Render("NB: "+n.Note) + "\n")
	}
}

// Primaries lists the primary options of a tree with the key each one
// expands.
func (p *Printer) Primaries(nodes []options.Node) error {
	width := 0
	for _, n := range nodes {
		width = max(width, len(n.Label))
	}
	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "%-*s  %s\n", width, n.Label, p.dim.Render(n.Value))
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Candidates lists expanded phrases with their usage.
func (p *Printer) Candidates(cands []match.Candidate) error {
	var b strings.Builder
	for _, c := range cands {
		b.WriteString(p.heading.Render(c.Phrase) + "\n")
		p.writeNode(&b, "  ", c.Source)
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}
