package ast

// Measure describes the size of a tree: total node count and maximum nesting
// depth. A single node measures {Nodes: 1, Depth: 1}; a nil tree is zero.
type Measure struct {
	Nodes int
	Depth int
}

// MeasureTree computes the Measure of the tree rooted at n.
//
// Input trees come from untrusted contract authors, so the traversal is
// iterative (explicit stack) rather than recursive: measuring a
// pathologically deep tree must not exhaust the goroutine stack. Callers use
// the result to reject oversized trees before the recursive passes touch
// them.
func MeasureTree(n *Node) Measure {
	if n == nil {
		return Measure{}
	}

	type frame struct {
		node  *Node
		depth int
	}

	m := Measure{}
	stack := []frame{{node: n, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m.Nodes++
		if f.depth > m.Depth {
			m.Depth = f.depth
		}
		for _, child := range f.node.Children() {
			stack = append(stack, frame{node: child, depth: f.depth + 1})
		}
	}
	return m
}
