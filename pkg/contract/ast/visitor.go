package ast

// Visitor is called for each node during a Walk. Returning an error aborts
// the traversal and surfaces the error to the Walk caller.
type Visitor func(*Node) error

// Walk traverses the tree rooted at n in depth-first pre-order and calls the
// visitor for each node. It returns the first error encountered, or nil if
// traversal completes.
func Walk(n *Node, visit Visitor) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}

// Children returns every non-nil direct child of the node, in field order.
// Terminal values (names, operators, literal values) are not nodes and are
// not included.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	var out []*Node
	appendNode := func(child *Node) {
		if child != nil {
			out = append(out, child)
		}
	}

	appendNode(n.Left)
	appendNode(n.Right)
	appendNode(n.Argument)
	appendNode(n.Expression)
	appendNode(n.Test)
	appendNode(n.Consequent)
	appendNode(n.Alternate)
	appendNode(n.ID)
	appendNode(n.Init)
	appendNode(n.Callee)
	appendNode(n.Object)
	appendNode(n.Property)
	appendNode(n.Key)
	appendNode(n.Value)
	for _, child := range n.Declarations {
		appendNode(child)
	}
	for _, child := range n.Arguments {
		appendNode(child)
	}
	for _, child := range n.Params {
		appendNode(child)
	}
	for _, child := range n.Body {
		appendNode(child)
	}
	return out
}
