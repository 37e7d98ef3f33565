package sanitize

import (
	"reflect"
	"testing"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/limits"
)

func TestSanitize_Identifier(t *testing.T) {
	tests := []struct {
		name     string
		ident    string
		wantName string
	}{
		{
			name:     "plain identifier is renamed",
			ident:    "balance",
			wantName: "sanitized_balance",
		},
		{
			name:     "gas counter name is renamed",
			ident:    "gamma",
			wantName: "sanitized_gamma",
		},
		{
			name:     "lifecycle name is exempt",
			ident:    "main",
			wantName: "main",
		},
		{
			name:     "constructor is exempt",
			ident:    "constructor",
			wantName: "constructor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewPass().Sanitize(ast.NewIdentifier(tt.ident))
			if err != nil {
				t.Fatalf("Sanitize() returned error: %v", err)
			}
			if out.Name != tt.wantName {
				t.Errorf("sanitized name = %q, want %q", out.Name, tt.wantName)
			}
		})
	}
}

func TestSanitize_AssignmentRenamesTarget(t *testing.T) {
	// gamma = 0;  =>  sanitized_gamma = 0;
	in := ast.NewExpressionStatement(&ast.Node{
		Type:     ast.KindAssignmentExpression,
		Operator: "=",
		Left:     ast.NewIdentifier("gamma"),
		Right:    ast.NewNumberLiteral(0, "0"),
	})

	out, err := NewPass().Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}
	if got := out.Expression.Left.Name; got != "sanitized_gamma" {
		t.Errorf("assignment target = %q, want %q", got, "sanitized_gamma")
	}
	if out.Expression.Right.Type != ast.KindLiteral {
		t.Error("literal right-hand side changed kind")
	}
}

func TestSanitize_HostNamespaceExempt(t *testing.T) {
	// Host.chargeGamma(1) stays untouched while sibling identifiers are
	// still renamed.
	hostCall := ast.NewCall(
		ast.NewMember(ast.NewIdentifier("Host"), ast.NewIdentifier("chargeGamma")),
		ast.NewNumberLiteral(1, "1"),
	)
	in := &ast.Node{Type: ast.KindProgram, Body: []*ast.Node{
		ast.NewExpressionStatement(hostCall),
		ast.NewExpressionStatement(ast.NewIdentifier("balance")),
	}}

	out, err := NewPass().Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}

	gotCallee := out.Body[0].Expression.Callee
	if !reflect.DeepEqual(gotCallee, hostCall.Callee) {
		t.Errorf("host member expression changed: %+v", gotCallee)
	}
	if got := out.Body[1].Expression.Name; got != "sanitized_balance" {
		t.Errorf("sibling identifier = %q, want %q", got, "sanitized_balance")
	}
}

func TestSanitize_NonHostMemberIsRewritten(t *testing.T) {
	in := ast.NewMember(ast.NewIdentifier("token"), ast.NewIdentifier("supply"))

	out, err := NewPass().Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}
	if out.Object.Name != "sanitized_token" {
		t.Errorf("member object = %q, want %q", out.Object.Name, "sanitized_token")
	}
	if out.Property.Name != "sanitized_supply" {
		t.Errorf("member property = %q, want %q", out.Property.Name, "sanitized_supply")
	}
}

func TestSanitize_PreservesShape(t *testing.T) {
	in := &ast.Node{Type: ast.KindProgram, Body: []*ast.Node{
		{
			Type:     ast.KindVariableDeclaration,
			DeclKind: "var",
			Declarations: []*ast.Node{{
				Type: ast.KindVariableDeclarator,
				ID:   ast.NewIdentifier("x"),
				Init: &ast.Node{
					Type:     ast.KindBinaryExpression,
					Operator: "+",
					Left:     ast.NewIdentifier("a"),
					Right:    ast.NewIdentifier("b"),
				},
			}},
		},
		{Type: ast.KindReturnStatement, Argument: ast.NewIdentifier("x")},
	}}

	out, err := NewPass().Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}

	if got, want := ast.MeasureTree(out), ast.MeasureTree(in); got != want {
		t.Errorf("tree shape changed: %+v, want %+v", got, want)
	}

	var kindsIn, kindsOut []ast.Kind
	_ = ast.Walk(in, func(n *ast.Node) error { kindsIn = append(kindsIn, n.Type); return nil })
	_ = ast.Walk(out, func(n *ast.Node) error { kindsOut = append(kindsOut, n.Type); return nil })
	if !reflect.DeepEqual(kindsIn, kindsOut) {
		t.Errorf("node kinds changed:\n in: %v\nout: %v", kindsIn, kindsOut)
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	in := ast.NewExpressionStatement(ast.NewIdentifier("balance"))

	if _, err := NewPass().Sanitize(in); err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}
	if in.Expression.Name != "balance" {
		t.Errorf("input identifier mutated to %q", in.Expression.Name)
	}
}

func TestSanitize_ReapplyingDoublesPrefix(t *testing.T) {
	// The pass must run exactly once; a second run stacks the prefix.
	once, err := NewPass().Sanitize(ast.NewIdentifier("balance"))
	if err != nil {
		t.Fatalf("first Sanitize() returned error: %v", err)
	}
	twice, err := NewPass().Sanitize(once)
	if err != nil {
		t.Fatalf("second Sanitize() returned error: %v", err)
	}
	if twice.Name != "sanitized_sanitized_balance" {
		t.Errorf("double-sanitized name = %q, want the doubled prefix", twice.Name)
	}
}

func TestSanitize_CustomPolicy(t *testing.T) {
	pass := NewPass().
		WithPrefix("user_").
		WithHostNamespace("Runtime").
		WithExclusions("init")

	in := &ast.Node{Type: ast.KindProgram, Body: []*ast.Node{
		ast.NewExpressionStatement(ast.NewIdentifier("init")),
		ast.NewExpressionStatement(ast.NewMember(ast.NewIdentifier("Runtime"), ast.NewIdentifier("emit"))),
		ast.NewExpressionStatement(ast.NewIdentifier("Host")),
	}}

	out, err := pass.Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize() returned error: %v", err)
	}
	if got := out.Body[0].Expression.Name; got != "init" {
		t.Errorf("extra exclusion ignored: %q", got)
	}
	if got := out.Body[1].Expression.Object.Name; got != "Runtime" {
		t.Errorf("custom host namespace renamed: %q", got)
	}
	// The default namespace is no longer reserved under the custom policy.
	if got := out.Body[2].Expression.Name; got != "user_Host" {
		t.Errorf("bare identifier = %q, want %q", got, "user_Host")
	}
}

func TestSanitize_TreeCeiling(t *testing.T) {
	deep := ast.NewIdentifier("x")
	for i := 0; i < 40; i++ {
		deep = &ast.Node{Type: ast.KindExpressionStatement, Expression: deep}
	}

	pass := NewPass().WithLimits(limits.Limits{MaxNodes: 100_000, MaxDepth: 16})
	if _, err := pass.Sanitize(deep); err == nil {
		t.Fatal("Sanitize() accepted a tree over the depth ceiling")
	}
}
