package ast

// Clone returns a deep copy of the tree rooted at n. Passes consume one tree
// and produce an independent one, so callers that need to keep the original
// clone it first.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := *n
	out.Left = n.Left.Clone()
	out.Right = n.Right.Clone()
	out.Argument = n.Argument.Clone()
	out.Expression = n.Expression.Clone()
	out.Test = n.Test.Clone()
	out.Consequent = n.Consequent.Clone()
	out.Alternate = n.Alternate.Clone()
	out.ID = n.ID.Clone()
	out.Init = n.Init.Clone()
	out.Callee = n.Callee.Clone()
	out.Object = n.Object.Clone()
	out.Property = n.Property.Clone()
	out.Key = n.Key.Clone()
	out.Value = n.Value.Clone()
	out.Declarations = cloneSlice(n.Declarations)
	out.Arguments = cloneSlice(n.Arguments)
	out.Params = cloneSlice(n.Params)
	out.Body = cloneSlice(n.Body)
	if n.Loc != nil {
		loc := *n.Loc
		out.Loc = &loc
	}
	return &out
}

func cloneSlice(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, node := range nodes {
		out[i] = node.Clone()
	}
	return out
}
