package ast

import (
	"encoding/json"
	"fmt"
	"io"
)

// nodeAlias strips Node's methods so the custom (un)marshalers below can fall
// back to the generated field handling without recursing into themselves.
type nodeAlias Node

// MarshalJSON encodes the node as ESTree-style JSON. The "value" key is
// polymorphic on the wire: for a Literal it carries the concrete literal
// value, for a MethodDefinition it carries the wrapped function node.
func (n *Node) MarshalJSON() ([]byte, error) {
	aux := struct {
		*nodeAlias
		WireValue any `json:"value,omitempty"`
	}{nodeAlias: (*nodeAlias)(n)}

	switch {
	case n.Type == KindLiteral:
		aux.WireValue = n.LiteralValue
	case n.Value != nil:
		aux.WireValue = n.Value
	}

	return json.Marshal(aux)
}

// UnmarshalJSON decodes ESTree-style JSON into the node, resolving the
// polymorphic "value" key by the node kind.
func (n *Node) UnmarshalJSON(data []byte) error {
	aux := struct {
		*nodeAlias
		WireValue json.RawMessage `json:"value"`
	}{nodeAlias: (*nodeAlias)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.WireValue) == 0 || string(aux.WireValue) == "null" {
		return nil
	}

	if n.Type == KindLiteral {
		return json.Unmarshal(aux.WireValue, &n.LiteralValue)
	}
	n.Value = &Node{}
	return json.Unmarshal(aux.WireValue, n.Value)
}

// Decode reads a single JSON-encoded tree from r.
func Decode(r io.Reader) (*Node, error) {
	var root Node
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	if root.Type == "" {
		return nil, fmt.Errorf("decoded tree has no node kind")
	}
	return &root, nil
}

// Encode writes the tree to w as indented JSON.
func Encode(w io.Writer, root *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	return nil
}
