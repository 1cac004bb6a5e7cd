// Package options holds the reference tree of git options that queries are
// matched against.
package options

import "fmt"

// Kind tags the shape of a Node. The set is closed.
type Kind int

const (
	// Leaf nodes carry no usage; at the secondary tier they point into the
	// tertiary tier through their Value.
	Leaf Kind = iota
	// WithUsage nodes carry a usage string.
	WithUsage
	// WithUsageAndNote nodes carry a usage string and a caveat.
	WithUsageAndNote
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case WithUsage:
		return "usage"
	case WithUsageAndNote:
		return "usage+note"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one entry of the reference tree.
type Node struct {
	Kind  Kind
	Label string
	Value string
	Usage string
	Note  string
}

// HasUsage reports whether the node supplies a usage string.
func (n *Node) HasUsage() bool {
	return n.Kind == WithUsage || n.Kind == WithUsageAndNote
}

// HasNote reports whether the node supplies a note.
func (n *Node) HasNote() bool {
	return n.Kind == WithUsageAndNote
}

// Classify decides a node's Kind from which optional fields were present in
// the source document: a note wins over a usage, and neither means Leaf.
func Classify(hasUsage, hasNote bool) Kind {
	switch {
	case hasNote:
		return WithUsageAndNote
	case hasUsage:
		return WithUsage
	default:
		return Leaf
	}
}
