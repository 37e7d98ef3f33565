package gamma

import "fmt"

// Cost is the gamma price of executing one computation. It is always a
// non-negative integer.
type Cost uint64

// Cost tiers. Every priced operator belongs to exactly one tier.
const (
	TierBase       Cost = 2
	TierLow        Cost = 3
	TierMedium     Cost = 5
	TierMediumHigh Cost = 6
)

// LiteralByteCost is the gamma price per serialized byte of a literal
// declaration initializer.
const LiteralByteCost Cost = 2500

// operatorCosts is the compiled-in cost table. It is total over the four
// tiers and deliberately undefined elsewhere; never add a zero-cost entry.
var operatorCosts = map[string]Cost{
	// base
	"^": TierBase, "==": TierBase, "!=": TierBase, "===": TierBase,
	"!==": TierBase, "<=": TierBase, "<": TierBase, ">": TierBase,
	">=": TierBase, "instanceof": TierBase, "|": TierBase, "&": TierBase,
	"<<": TierBase, ">>": TierBase, ">>>": TierBase, "in": TierBase,

	// low
	"+": TierLow, "-": TierLow,

	// medium
	"*": TierMedium, "/": TierMedium, "%": TierMedium,

	// medium_high
	"++": TierMediumHigh, "--": TierMediumHigh,
}

// OperatorError reports an operator absent from the cost table. Callers must
// treat it as a hard rejection of the contract, never as a zero-cost
// fallback.
type OperatorError struct {
	Operator string
}

// Error implements the error interface.
func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %q has no gamma cost", e.Operator)
}

// CostOf returns the fixed gamma cost of an operator, or an *OperatorError
// if the operator is outside every tier.
func CostOf(operator string) (Cost, error) {
	cost, ok := operatorCosts[operator]
	if !ok {
		return 0, &OperatorError{Operator: operator}
	}
	return cost, nil
}

// Operators returns every priced operator. The returned slice is a copy;
// the underlying table is immutable.
func Operators() []string {
	ops := make([]string, 0, len(operatorCosts))
	for op := range operatorCosts {
		ops = append(ops, op)
	}
	return ops
}
