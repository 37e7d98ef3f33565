package instrument

import (
	"strconv"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/gamma"
	"github.com/xfumihiro/elixium-core/pkg/contract/limits"
)

// MeteringMethod is the host-runtime primitive invoked by every synthesized
// metering call. The VM must expose it on the host namespace.
const MeteringMethod = "chargeGamma"

// DefaultHostNamespace is the reserved identifier the metering calls are
// rooted at. It must match the sanitization pass's host namespace so the
// calls survive code generation unrenamed.
const DefaultHostNamespace = "Host"

// Summary reports what a single instrumentation run inserted.
type Summary struct {
	Charges int        // Number of metering calls synthesized
	Total   gamma.Cost // Sum of every synthesized charge amount
}

// Pass rewrites a tree inserting metering calls. It holds no mutable state
// across invocations beyond its evaluator's diagnostics, so create one per
// compilation.
type Pass struct {
	eval   *gamma.Evaluator
	host   string
	limits limits.Limits
}

// NewPass creates an instrumentation pass around the given cost evaluator.
func NewPass(eval *gamma.Evaluator) *Pass {
	return &Pass{
		eval:   eval,
		host:   DefaultHostNamespace,
		limits: limits.Defaults(),
	}
}

// WithHostNamespace overrides the namespace the metering calls are rooted
// at.
func (p *Pass) WithHostNamespace(name string) *Pass {
	p.host = name
	return p
}

// WithLimits overrides the tree-size ceilings. Zero fields keep their
// defaults.
func (p *Pass) WithLimits(l limits.Limits) *Pass {
	p.limits = l
	return p
}

// Instrument rewrites the tree so every costed computation is preceded by a
// metering call carrying its evaluated gamma amount. The input is never
// mutated. Instrumentation fails if the tree exceeds the size ceiling, if an
// operator is absent from the cost table, or (in strict mode) if a node kind
// has no cost rule.
//
// The pass must run exactly once per contract: reinstrumenting its own
// output would double every charge.
func (p *Pass) Instrument(root *ast.Node) (*ast.Node, Summary, error) {
	if err := p.limits.Check(root); err != nil {
		return nil, Summary{}, err
	}

	var sum Summary
	out, err := p.rewrite(root, &sum)
	if err != nil {
		return nil, Summary{}, err
	}
	return out, sum, nil
}

// rewrite instruments a single node. Nodes carrying an ordered body have the
// body replaced with its instrumented form; a MethodDefinition has its
// wrapped function instrumented; anything else is the recursion base case
// and is copied unchanged.
func (p *Pass) rewrite(n *ast.Node, sum *Summary) (*ast.Node, error) {
	switch {
	case n == nil:
		return nil, nil

	case n.HasBody():
		out := n.Clone()
		body, err := p.rewriteSequence(n.Body, sum)
		if err != nil {
			return nil, err
		}
		out.Body = body
		return out, nil

	case n.Value != nil:
		out := n.Clone()
		value, err := p.rewrite(n.Value, sum)
		if err != nil {
			return nil, err
		}
		out.Value = value
		return out, nil

	default:
		return n.Clone(), nil
	}
}

// rewriteSequence instruments an ordered statement sequence. Each element is
// instrumented depth-first; declaration headers are appended as-is, every
// other element is preceded by its metering call. The output is at most
// twice the input length and preserves the original statement order.
func (p *Pass) rewriteSequence(nodes []*ast.Node, sum *Summary) ([]*ast.Node, error) {
	out := make([]*ast.Node, 0, len(nodes)*2)
	for _, stmt := range nodes {
		inst, err := p.rewrite(stmt, sum)
		if err != nil {
			return nil, err
		}
		if inst.IsDeclarationHeader() {
			out = append(out, inst)
			continue
		}

		cost, err := p.eval.Cost(inst)
		if err != nil {
			return nil, err
		}
		out = append(out, p.chargeCall(cost), inst)
		sum.Charges++
		sum.Total += cost
	}
	return out, nil
}

// chargeCall synthesizes the complete metering-call statement
// host.chargeGamma(amount) by direct structural construction, ready for
// insertion into a statement sequence.
func (p *Pass) chargeCall(amount gamma.Cost) *ast.Node {
	return ast.NewExpressionStatement(
		ast.NewCall(
			ast.NewMember(
				ast.NewIdentifier(p.host),
				ast.NewIdentifier(MeteringMethod),
			),
			ast.NewNumberLiteral(int64(amount), strconv.FormatUint(uint64(amount), 10)),
		),
	)
}
