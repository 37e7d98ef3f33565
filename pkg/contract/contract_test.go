package contract

import (
	"testing"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/instrument"
	"github.com/xfumihiro/elixium-core/pkg/contract/sanitize"
)

func TestSanitizeAndInstrument_Composition(t *testing.T) {
	// balance + credit; through both passes: identifiers renamed first, then
	// a metering call inserted ahead of the statement.
	in := &ast.Node{Type: ast.KindProgram, Body: []*ast.Node{
		ast.NewExpressionStatement(&ast.Node{
			Type:     ast.KindBinaryExpression,
			Operator: "+",
			Left:     ast.NewIdentifier("balance"),
			Right:    ast.NewIdentifier("credit"),
		}),
	}}

	out, sum, err := SanitizeAndInstrument(in)
	if err != nil {
		t.Fatalf("SanitizeAndInstrument() returned error: %v", err)
	}
	if len(out.Body) != 2 {
		t.Fatalf("output body has %d statements, want 2", len(out.Body))
	}
	if sum.Charges != 1 || sum.Total != 3 {
		t.Errorf("Summary = %+v, want {Charges:1 Total:3}", sum)
	}

	// The synthesized metering call was inserted after sanitization, so its
	// host-namespace identifiers carry no prefix.
	callee := out.Body[0].Expression.Callee
	if callee.Object.Name != sanitize.DefaultHostNamespace {
		t.Errorf("metering namespace = %q, want %q", callee.Object.Name, sanitize.DefaultHostNamespace)
	}
	if callee.Property.Name != instrument.MeteringMethod {
		t.Errorf("metering method = %q, want %q", callee.Property.Name, instrument.MeteringMethod)
	}

	// The user statement was sanitized.
	stmt := out.Body[1].Expression
	if stmt.Left.Name != "sanitized_balance" || stmt.Right.Name != "sanitized_credit" {
		t.Errorf("operands = %q, %q; want sanitized names", stmt.Left.Name, stmt.Right.Name)
	}
}
