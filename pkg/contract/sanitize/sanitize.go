package sanitize

import (
	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/limits"
)

// DefaultPrefix is prepended to every renamed identifier.
const DefaultPrefix = "sanitized_"

// DefaultHostNamespace is the reserved identifier root denoting the
// runtime's own API surface. Member accesses rooted at it are never renamed.
const DefaultHostNamespace = "Host"

// DefaultExclusions are the contract lifecycle and intrinsic names exempt
// from renaming: the runtime looks these up by their original spelling.
var DefaultExclusions = []string{"constructor", "main"}

// Pass renames user-supplied identifiers per the exclusion policy. It is
// stateless across invocations and safe for concurrent use.
type Pass struct {
	prefix     string
	host       string
	exclusions map[string]struct{}
	limits     limits.Limits
}

// NewPass creates a sanitization pass with the default prefix, host
// namespace, exclusion set, and tree ceilings.
func NewPass() *Pass {
	p := &Pass{
		prefix:     DefaultPrefix,
		host:       DefaultHostNamespace,
		exclusions: make(map[string]struct{}),
		limits:     limits.Defaults(),
	}
	for _, name := range DefaultExclusions {
		p.exclusions[name] = struct{}{}
	}
	return p
}

// WithPrefix overrides the rename prefix.
func (p *Pass) WithPrefix(prefix string) *Pass {
	p.prefix = prefix
	return p
}

// WithHostNamespace overrides the reserved host namespace identifier.
func (p *Pass) WithHostNamespace(name string) *Pass {
	p.host = name
	return p
}

// WithExclusions adds identifier names to the exclusion set.
func (p *Pass) WithExclusions(names ...string) *Pass {
	for _, name := range names {
		p.exclusions[name] = struct{}{}
	}
	return p
}

// WithLimits overrides the tree-size ceilings. Zero fields keep their
// defaults.
func (p *Pass) WithLimits(l limits.Limits) *Pass {
	p.limits = l
	return p
}

// Prefix returns the rename prefix in effect.
func (p *Pass) Prefix() string {
	return p.prefix
}

// HostNamespace returns the reserved host namespace identifier in effect.
func (p *Pass) HostNamespace() string {
	return p.host
}

// Excluded returns true if the identifier name is exempt from renaming.
func (p *Pass) Excluded(name string) bool {
	_, ok := p.exclusions[name]
	return ok
}

// Sanitize rewrites the tree renaming identifiers. The input is never
// mutated; the result is an independent tree of identical shape. The only
// failure mode is a tree exceeding the size ceiling.
func (p *Pass) Sanitize(root *ast.Node) (*ast.Node, error) {
	if err := p.limits.Check(root); err != nil {
		return nil, err
	}
	return p.rewrite(root), nil
}

// rewrite is the recursive rename. Two rules are special-cased; every other
// node is rebuilt with the same discriminant and recursively rewritten
// children. Recursion depth is bounded by the ceiling checked in Sanitize.
func (p *Pass) rewrite(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}

	switch {
	case n.Type == ast.KindIdentifier:
		if p.Excluded(n.Name) {
			return n.Clone()
		}
		out := n.Clone()
		out.Name = p.prefix + n.Name
		return out

	case n.Type == ast.KindMemberExpression && p.isHostRooted(n):
		// The entire host-API subtree is exempt, so calls like
		// Host.chargeGamma(1) remain resolvable after the pass.
		return n.Clone()
	}

	out := *n
	out.Left = p.rewrite(n.Left)
	out.Right = p.rewrite(n.Right)
	out.Argument = p.rewrite(n.Argument)
	out.Expression = p.rewrite(n.Expression)
	out.Test = p.rewrite(n.Test)
	out.Consequent = p.rewrite(n.Consequent)
	out.Alternate = p.rewrite(n.Alternate)
	out.ID = p.rewrite(n.ID)
	out.Init = p.rewrite(n.Init)
	out.Callee = p.rewrite(n.Callee)
	out.Object = p.rewrite(n.Object)
	out.Property = p.rewrite(n.Property)
	out.Key = p.rewrite(n.Key)
	out.Value = p.rewrite(n.Value)
	out.Declarations = p.rewriteSlice(n.Declarations)
	out.Arguments = p.rewriteSlice(n.Arguments)
	out.Params = p.rewriteSlice(n.Params)
	out.Body = p.rewriteSlice(n.Body)
	if n.Loc != nil {
		loc := *n.Loc
		out.Loc = &loc
	}
	return &out
}

// rewriteSlice sanitizes each element of a sequence, order preserved.
func (p *Pass) rewriteSlice(nodes []*ast.Node) []*ast.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*ast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = p.rewrite(n)
	}
	return out
}

// isHostRooted returns true for a member expression whose object is the
// reserved host namespace identifier.
func (p *Pass) isHostRooted(n *ast.Node) bool {
	return n.Object != nil &&
		n.Object.Type == ast.KindIdentifier &&
		n.Object.Name == p.host
}
