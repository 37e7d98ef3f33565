package instrument

import (
	"testing"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	cerrors "github.com/xfumihiro/elixium-core/pkg/contract/errors"
	"github.com/xfumihiro/elixium-core/pkg/contract/gamma"
	"github.com/xfumihiro/elixium-core/pkg/contract/limits"
)

func program(stmts ...*ast.Node) *ast.Node {
	return &ast.Node{Type: ast.KindProgram, Body: stmts}
}

func exprStmt(op string) *ast.Node {
	return ast.NewExpressionStatement(&ast.Node{
		Type:     ast.KindBinaryExpression,
		Operator: op,
		Left:     ast.NewIdentifier("a"),
		Right:    ast.NewIdentifier("b"),
	})
}

// requireCharge fails the test unless the node is a complete
// Host.chargeGamma(amount) call statement.
func requireCharge(t *testing.T, n *ast.Node, amount gamma.Cost) {
	t.Helper()

	if n.Type != ast.KindExpressionStatement {
		t.Fatalf("metering node kind = %q, want ExpressionStatement", n.Type)
	}
	call := n.Expression
	if call == nil || call.Type != ast.KindCallExpression {
		t.Fatal("metering statement does not wrap a call expression")
	}
	callee := call.Callee
	if callee == nil || callee.Type != ast.KindMemberExpression {
		t.Fatal("metering call is not a member call")
	}
	if callee.Object.Name != DefaultHostNamespace || callee.Property.Name != MeteringMethod {
		t.Fatalf("metering callee = %s.%s, want %s.%s",
			callee.Object.Name, callee.Property.Name, DefaultHostNamespace, MeteringMethod)
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("metering call has %d arguments, want 1", len(call.Arguments))
	}
	arg := call.Arguments[0]
	if arg.Type != ast.KindLiteral {
		t.Fatalf("metering amount kind = %q, want Literal", arg.Type)
	}
	if got, ok := arg.LiteralValue.(int64); !ok || gamma.Cost(got) != amount {
		t.Fatalf("metering amount = %v, want %d", arg.LiteralValue, amount)
	}
}

func newPass() *Pass {
	return NewPass(gamma.NewEvaluator())
}

func TestInstrument_BinaryExpressionStatement(t *testing.T) {
	// a + b;  =>  [chargeGamma(3), a + b;]
	out, sum, err := newPass().Instrument(program(exprStmt("+")))
	if err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}
	if len(out.Body) != 2 {
		t.Fatalf("instrumented body has %d statements, want 2", len(out.Body))
	}

	requireCharge(t, out.Body[0], 3)
	if out.Body[1].Expression.Operator != "+" {
		t.Error("original statement was not preserved after its metering call")
	}
	if sum.Charges != 1 || sum.Total != 3 {
		t.Errorf("Summary = %+v, want {Charges:1 Total:3}", sum)
	}
}

func TestInstrument_UpdateExpression(t *testing.T) {
	// x++;  =>  [chargeGamma(6), x++;]
	stmt := ast.NewExpressionStatement(&ast.Node{
		Type:     ast.KindUpdateExpression,
		Operator: "++",
		Argument: ast.NewIdentifier("x"),
	})

	out, _, err := newPass().Instrument(program(stmt))
	if err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}
	if len(out.Body) != 2 {
		t.Fatalf("instrumented body has %d statements, want 2", len(out.Body))
	}
	requireCharge(t, out.Body[0], 6)
}

func TestInstrument_LiteralDeclaration(t *testing.T) {
	// var x = 5;  =>  [chargeGamma(2500), var x = 5;]
	decl := &ast.Node{
		Type:     ast.KindVariableDeclaration,
		DeclKind: "var",
		Declarations: []*ast.Node{{
			Type: ast.KindVariableDeclarator,
			ID:   ast.NewIdentifier("x"),
			Init: ast.NewNumberLiteral(5, "5"),
		}},
	}

	out, _, err := newPass().Instrument(program(decl))
	if err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}
	if len(out.Body) != 2 {
		t.Fatalf("instrumented body has %d statements, want 2", len(out.Body))
	}
	requireCharge(t, out.Body[0], 2500)
	if out.Body[1].Type != ast.KindVariableDeclaration {
		t.Errorf("second statement kind = %q, want the original declaration", out.Body[1].Type)
	}
}

func TestInstrument_PreservesStatementOrder(t *testing.T) {
	out, sum, err := newPass().Instrument(program(exprStmt("+"), exprStmt("*"), exprStmt("==")))
	if err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}
	if len(out.Body) != 6 {
		t.Fatalf("instrumented body has %d statements, want 6", len(out.Body))
	}

	wantOps := []string{"+", "*", "=="}
	wantCosts := []gamma.Cost{3, 5, 2}
	for i, op := range wantOps {
		requireCharge(t, out.Body[2*i], wantCosts[i])
		if got := out.Body[2*i+1].Expression.Operator; got != op {
			t.Errorf("statement %d operator = %q, want %q", i, got, op)
		}
	}
	if sum.Charges != 3 || sum.Total != 10 {
		t.Errorf("Summary = %+v, want {Charges:3 Total:10}", sum)
	}
}

func TestInstrument_DeclarationHeadersGetNoCharge(t *testing.T) {
	method := &ast.Node{
		Type: ast.KindMethodDefinition,
		Key:  ast.NewIdentifier("transfer"),
		Value: &ast.Node{
			Type: ast.KindFunctionExpression,
			Body: []*ast.Node{exprStmt("+")},
		},
	}
	class := &ast.Node{
		Type: ast.KindClassDeclaration,
		ID:   ast.NewIdentifier("Token"),
		Body: nil,
	}

	out, sum, err := newPass().Instrument(program(method, class, exprStmt("-")))
	if err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}

	// [method, class, charge, stmt]: no charge ahead of either declaration.
	if len(out.Body) != 4 {
		t.Fatalf("instrumented body has %d statements, want 4", len(out.Body))
	}
	if out.Body[0].Type != ast.KindMethodDefinition {
		t.Errorf("statement 0 kind = %q, want MethodDefinition", out.Body[0].Type)
	}
	if out.Body[1].Type != ast.KindClassDeclaration {
		t.Errorf("statement 1 kind = %q, want ClassDeclaration", out.Body[1].Type)
	}
	requireCharge(t, out.Body[2], 3)

	// The method's nested body was still instrumented by the recursive step.
	nested := out.Body[0].Value.Body
	if len(nested) != 2 {
		t.Fatalf("nested method body has %d statements, want 2", len(nested))
	}
	requireCharge(t, nested[0], 3)

	// One nested charge plus one top-level charge.
	if sum.Charges != 2 || sum.Total != 6 {
		t.Errorf("Summary = %+v, want {Charges:2 Total:6}", sum)
	}
}

func TestInstrument_DoesNotMutateInput(t *testing.T) {
	in := program(exprStmt("+"))
	before := ast.MeasureTree(in)

	if _, _, err := newPass().Instrument(in); err != nil {
		t.Fatalf("Instrument() returned error: %v", err)
	}

	after := ast.MeasureTree(in)
	if before != after {
		t.Errorf("input tree changed from %+v to %+v", before, after)
	}
	if len(in.Body) != 1 {
		t.Errorf("input body length = %d, want 1", len(in.Body))
	}
}

func TestInstrument_NotIdempotent(t *testing.T) {
	// Reinstrumenting instrumented output doubles the schedule; the facade
	// exists so this can never happen by accident.
	once, first, err := newPass().Instrument(program(exprStmt("+")))
	if err != nil {
		t.Fatalf("first Instrument() returned error: %v", err)
	}
	_, second, err := newPass().Instrument(once)
	if err != nil {
		t.Fatalf("second Instrument() returned error: %v", err)
	}
	if second.Charges != 2*first.Charges {
		t.Errorf("second pass inserted %d charges, want %d", second.Charges, 2*first.Charges)
	}
}

func TestInstrument_UnknownOperatorRejects(t *testing.T) {
	_, _, err := newPass().Instrument(program(exprStmt("**")))
	if err == nil {
		t.Fatal("Instrument() accepted an operator outside the cost table")
	}
}

func TestInstrument_TreeCeiling(t *testing.T) {
	stmts := make([]*ast.Node, 50)
	for i := range stmts {
		stmts[i] = exprStmt("+")
	}

	pass := newPass().WithLimits(limits.Limits{MaxNodes: 10, MaxDepth: 64})
	_, _, err := pass.Instrument(program(stmts...))
	if err == nil {
		t.Fatal("Instrument() accepted a tree over the node ceiling")
	}

	cerr, ok := err.(*cerrors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if cerr.Type != cerrors.ErrorTypeLimit {
		t.Errorf("error category = %q, want %q", cerr.Type, cerrors.ErrorTypeLimit)
	}
}
