package options

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

//go:embed data/options.json
var defaultData []byte

// ErrDataCorrupt is returned when a reference document fails structural
// validation. Callers treat it as fatal.
var ErrDataCorrupt = errors.New("reference data corrupted")

// Format identifies the encoding of a reference document.
type Format int

const (
	// FormatJSON is JSON, with JSONC comments and trailing commas allowed.
	FormatJSON Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

// Tree is the three-tier reference. It is built once by Default, Parse or
// ReadFile and must not be modified afterwards; it is safe to share between
// goroutines.
type Tree struct {
	Primary   []Node
	Secondary map[string][]Node
	Tertiary  map[string][]Node
	// Digest identifies the source document (xxhash64, hex).
	Digest    string
}

// Default returns the tree built from the bundled reference document.
func Default() (*Tree, error) {
	return Parse(defaultData, FormatJSON)
}

// FormatFor picks the format of a reference file from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported reference data extension %q", filepath.Ext(path))
	}
}

// ReadFile reads and parses a reference document from disk.
func ReadFile(path string) (*Tree, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a reference document. Every decoding or
// validation failure wraps ErrDataCorrupt.
func Parse(data []byte, format Format) (*Tree, error) {
	var (
		raw *rawTree
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = decodeJSON(data)
	case FormatYAML:
		raw, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrDataCorrupt, int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataCorrupt, err)
	}
	t, err := raw.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataCorrupt, err)
	}
	t.Digest = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return t, nil
}

// Len returns the number of nodes across all tiers.
func (t *Tree) Len() int {
	n := len(t.Primary)
	for _, nodes := range t.Secondary {
		n += len(nodes)
	}
	for _, nodes := range t.Tertiary {
		n += len(nodes)
	}
	return n
}
