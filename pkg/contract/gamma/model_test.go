package gamma

import (
	"errors"
	"strings"
	"testing"
)

func TestCostOf_Tiers(t *testing.T) {
	tests := []struct {
		tier      string
		operators []string
		want      Cost
	}{
		{
			tier:      "base",
			operators: []string{"^", "==", "!=", "===", "!==", "<=", "<", ">", ">=", "instanceof", "|", "&", "<<", ">>", ">>>", "in"},
			want:      2,
		},
		{
			tier:      "low",
			operators: []string{"+", "-"},
			want:      3,
		},
		{
			tier:      "medium",
			operators: []string{"*", "/", "%"},
			want:      5,
		},
		{
			tier:      "medium_high",
			operators: []string{"++", "--"},
			want:      6,
		},
	}

	for _, tt := range tests {
		for _, op := range tt.operators {
			got, err := CostOf(op)
			if err != nil {
				t.Errorf("CostOf(%q) returned error: %v", op, err)
				continue
			}
			if got != tt.want {
				t.Errorf("CostOf(%q) = %d, want %d (tier %s)", op, got, tt.want, tt.tier)
			}
		}
	}
}

func TestCostOf_UnknownOperator(t *testing.T) {
	tests := []string{"**", "&&", "||", "=", "??", "typeof", ""}

	for _, op := range tests {
		cost, err := CostOf(op)
		if err == nil {
			t.Errorf("CostOf(%q) = %d, want error", op, cost)
			continue
		}

		var opErr *OperatorError
		if !errors.As(err, &opErr) {
			t.Errorf("CostOf(%q) error type = %T, want *OperatorError", op, err)
			continue
		}
		if opErr.Operator != op {
			t.Errorf("OperatorError.Operator = %q, want %q", opErr.Operator, op)
		}
		if !strings.Contains(err.Error(), op) && op != "" {
			t.Errorf("error %q does not name the operator %q", err.Error(), op)
		}
	}
}

func TestOperators_CoversEveryTier(t *testing.T) {
	ops := Operators()
	if len(ops) != 23 {
		t.Fatalf("Operators() returned %d operators, want 23", len(ops))
	}
	for _, op := range ops {
		if _, err := CostOf(op); err != nil {
			t.Errorf("Operators() listed %q but CostOf rejects it: %v", op, err)
		}
	}
}
