// Package limits enforces tree-size ceilings on untrusted contract input.
//
// Both transformation passes recurse over trees authored by untrusted
// contract writers, so each one rejects oversized trees up front rather than
// risking stack exhaustion or unbounded work mid-rewrite.
package limits

import (
	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	cerrors "github.com/xfumihiro/elixium-core/pkg/contract/errors"
)

// Default ceilings. Generous for real contracts, far below anything that
// threatens the goroutine stack.
const (
	DefaultMaxNodes = 100_000
	DefaultMaxDepth = 256
)

// Limits bounds the size of a contract tree.
type Limits struct {
	MaxNodes int // Maximum total node count
	MaxDepth int // Maximum nesting depth
}

// Defaults returns the default ceilings.
func Defaults() Limits {
	return Limits{MaxNodes: DefaultMaxNodes, MaxDepth: DefaultMaxDepth}
}

// withDefaults fills zero fields with the default value.
func (l Limits) withDefaults() Limits {
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultMaxNodes
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	return l
}

// Check measures the tree and rejects it if it exceeds either ceiling. The
// measurement is iterative, so a hostile tree cannot exhaust the stack
// before being rejected.
func (l Limits) Check(root *ast.Node) error {
	eff := l.withDefaults()
	m := ast.MeasureTree(root)
	if m.Nodes > eff.MaxNodes {
		return cerrors.New(cerrors.ErrorTypeLimit,
			"tree has %d nodes, exceeding the ceiling of %d", m.Nodes, eff.MaxNodes)
	}
	if m.Depth > eff.MaxDepth {
		return cerrors.New(cerrors.ErrorTypeLimit,
			"tree depth %d exceeds the ceiling of %d", m.Depth, eff.MaxDepth)
	}
	return nil
}
