package gamma

import (
	"encoding/json"
	"fmt"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
)

// UnhandledKindError reports a node kind the evaluator has no cost case for.
// It is only returned in strict mode; otherwise the gap degrades to a
// Diagnostic and a zero cost.
type UnhandledKindError struct {
	Kind ast.Kind
}

// Error implements the error interface.
func (e *UnhandledKindError) Error() string {
	return fmt.Sprintf("no gamma cost rule for node kind %q", e.Kind)
}

// Diagnostic records a soft cost-evaluation fallback: a node kind that was
// priced at zero because no rule covers it.
type Diagnostic struct {
	Kind     ast.Kind            // The unhandled node kind
	Location *ast.SourceLocation // Where it appeared, when known
	Message  string              // Human-readable warning
}

// Evaluator computes the gamma cost of AST nodes and statement sequences.
//
// An Evaluator accumulates diagnostics across calls, so create one per
// compilation and inspect Diagnostics afterwards. It holds no other state
// and never mutates the trees it reads.
type Evaluator struct {
	strict bool
	diags  []Diagnostic
}

// NewEvaluator creates an evaluator with the reference behavior: unhandled
// node kinds emit a diagnostic and cost zero.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// WithStrictKinds escalates unhandled node kinds from a diagnostic to a hard
// *UnhandledKindError. Hardened deployments should enable this.
func (e *Evaluator) WithStrictKinds(strict bool) *Evaluator {
	e.strict = strict
	return e
}

// Diagnostics returns every soft fallback recorded so far, in evaluation
// order.
func (e *Evaluator) Diagnostics() []Diagnostic {
	return e.diags
}

// Cost computes the gamma cost of a single node by structural case analysis.
//
// Operator-bearing expressions consult the cost table; an operator outside
// every tier surfaces as an *OperatorError and must reject the contract.
// Statements cost what their wrapped expression costs, declarations sum
// their declarators, and calls are not separately costed here (the VM prices
// the callee's own body). Any other kind takes the soft fallback path.
func (e *Evaluator) Cost(n *ast.Node) (Cost, error) {
	if n == nil {
		return 0, nil
	}

	switch n.Type {
	case ast.KindBinaryExpression, ast.KindUpdateExpression:
		return CostOf(n.Operator)

	case ast.KindExpressionStatement:
		return e.Cost(n.Expression)

	case ast.KindReturnStatement:
		return e.Cost(n.Argument)

	case ast.KindVariableDeclaration:
		return e.CostSequence(n.Declarations)

	case ast.KindVariableDeclarator:
		return e.declaratorCost(n)

	case ast.KindCallExpression:
		return 0, nil

	default:
		return e.unhandled(n)
	}
}

// CostSequence computes the cost of an ordered node sequence: the sum of the
// cost of each element. The fold is commutative, so order never changes the
// result; an empty sequence costs zero.
func (e *Evaluator) CostSequence(nodes []*ast.Node) (Cost, error) {
	var total Cost
	for _, n := range nodes {
		cost, err := e.Cost(n)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// declaratorCost prices a single VariableDeclarator.
//
// A literal initializer is priced by the byte size of its serialized value.
// A declarator with no initializer performs no computation and costs zero.
// Any other initializer is priced as the expression it is, which routes
// uncovered kinds through the soft fallback path.
func (e *Evaluator) declaratorCost(n *ast.Node) (Cost, error) {
	if n.Init == nil {
		return 0, nil
	}
	if n.Init.IsLiteral() {
		return literalCost(n.Init)
	}
	return e.Cost(n.Init)
}

// literalCost prices a literal at LiteralByteCost per byte of its serialized
// concrete value.
func literalCost(n *ast.Node) (Cost, error) {
	data, err := json.Marshal(n.LiteralValue)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize literal %q: %w", n.Raw, err)
	}
	return Cost(len(data)) * LiteralByteCost, nil
}

// unhandled takes the soft fallback path for a node kind with no cost rule:
// record a diagnostic and price it at zero, or reject outright in strict
// mode.
func (e *Evaluator) unhandled(n *ast.Node) (Cost, error) {
	if e.strict {
		return 0, &UnhandledKindError{Kind: n.Type}
	}
	e.diags = append(e.diags, Diagnostic{
		Kind:     n.Type,
		Location: n.Loc,
		Message:  fmt.Sprintf("unhandled node kind %q priced at zero gamma", n.Type),
	})
	return 0, nil
}
