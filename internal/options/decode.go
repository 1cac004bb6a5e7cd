package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// rawNode mirrors a node as written in the document. Pointers record field
// presence, which is what decides the node's Kind.
type rawNode struct {
	Label *string `json:"label" yaml:"label"`
	Value *string `json:"value" yaml:"value"`
	Usage *string `json:"usage" yaml:"usage"`
	NB    *string `json:"nb" yaml:"nb"`
}

type rawTree struct {
	Primary   *[]rawNode            `json:"primary" yaml:"primary"`
	Secondary *map[string][]rawNode `json:"secondary" yaml:"secondary"`
	Tertiary  *map[string][]rawNode `json:"tertiary" yaml:"tertiary"`
}

func decodeJSON(data []byte) (*rawTree, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	var raw rawTree
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return &raw, nil
}

func decodeYAML(data []byte) (*rawTree, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raw rawTree
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return &raw, nil
}

func (r *rawTree) build() (*Tree, error) {
	switch {
	case r.Primary == nil:
		return nil, errors.New("missing field \"primary\"")
	case r.Secondary == nil:
		return nil, errors.New("missing field \"secondary\"")
	case r.Tertiary == nil:
		return nil, errors.New("missing field \"tertiary\"")
	case len(*r.Primary) == 0:
		return nil, errors.New("\"primary\" is empty")
	}

	t := &Tree{
		Secondary: make(map[string][]Node, len(*r.Secondary)),
		Tertiary:  make(map[string][]Node, len(*r.Tertiary)),
	}
	var err error
	if t.Primary, err = buildNodes("primary", *r.Primary); err != nil {
		return nil, err
	}
	if err := buildTier("secondary", *r.Secondary, t.Secondary); err != nil {
		return nil, err
	}
	if err := buildTier("tertiary", *r.Tertiary, t.Tertiary); err != nil {
		return nil, err
	}
	return t, nil
}

func buildTier(tier string, in map[string][]rawNode, out map[string][]Node) error {
	// sorted so the reported error does not depend on map order
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("%s: empty key", tier)
		}
		nodes, err := buildNodes(fmt.Sprintf("%s[%q]", tier, k), in[k])
		if err != nil {
			return err
		}
		out[k] = nodes
	}
	return nil
}

func buildNodes(path string, raw []rawNode) ([]Node, error) {
	nodes := make([]Node, 0, len(raw))
	for i, rn := range raw {
		n, err := rn.node()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (rn rawNode) node() (Node, error) {
	if rn.Label == nil || *rn.Label == "" {
		return Node{}, errors.New("missing label")
	}
	if rn.Value == nil || *rn.Value == "" {
		return Node{}, errors.New("missing value")
	}
	if rn.NB != nil && rn.Usage == nil {
		return Node{}, errors.New("nb without usage")
	}
	n := Node{
		Kind:  Classify(rn.Usage != nil, rn.NB != nil),
		Label: *rn.Label,
		Value: *rn.Value,
	}
	if rn.Usage != nil {
		n.Usage = *rn.Usage
	}
	if rn.NB != nil {
		n.Note = *rn.NB
	}
	return n, nil
}
