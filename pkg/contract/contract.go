// Package contract prepares untrusted Elixium smart-contract trees for
// metered execution.
//
// Two transformations run over a contract's AST before it reaches the code
// generator: sanitization renames user-supplied identifiers so contract code
// cannot shadow runtime-reserved names, and instrumentation inserts a
// metering call ahead of every costed computation so execution cannot
// proceed without paying gamma.
//
// The package is organized into subpackages:
//
// - ast: ESTree-shaped tree definitions, traversal, and measurement
// - gamma: the cost model and cost evaluator
// - sanitize: the identifier-renaming pass
// - instrument: the metering-call rewrite pass
// - parser: the external-parser boundary and ESTree JSON decoding
// - limits: tree-size ceilings for untrusted input
// - errors: rich contract-rejection errors
//
// This file provides the facade enforcing the one correct composition:
// sanitize exactly once, then instrument exactly once. Running either pass
// twice corrupts the output (double prefixes, double charges).
package contract

import (
	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	"github.com/xfumihiro/elixium-core/pkg/contract/gamma"
	"github.com/xfumihiro/elixium-core/pkg/contract/instrument"
	"github.com/xfumihiro/elixium-core/pkg/contract/sanitize"
)

// SanitizeAndInstrument runs both passes in the required order with default
// policy and returns the deployable tree with its instrumentation summary.
// Use the subpackages directly when non-default prefixes, exclusions, or
// ceilings are needed.
func SanitizeAndInstrument(root *ast.Node) (*ast.Node, instrument.Summary, error) {
	clean, err := sanitize.NewPass().Sanitize(root)
	if err != nil {
		return nil, instrument.Summary{}, err
	}

	pass := instrument.NewPass(gamma.NewEvaluator())
	return pass.Instrument(clean)
}

// Sanitize runs only the identifier-sanitization pass with default policy.
func Sanitize(root *ast.Node) (*ast.Node, error) {
	return sanitize.NewPass().Sanitize(root)
}

// Instrument runs only the metering rewrite with default policy. The input
// must already be sanitized.
func Instrument(root *ast.Node) (*ast.Node, instrument.Summary, error) {
	return instrument.NewPass(gamma.NewEvaluator()).Instrument(root)
}
