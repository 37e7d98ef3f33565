// Elixiumc prepares Elixium smart contracts for metered execution.
//
// It reads contract trees in ESTree JSON, runs the identifier-sanitization
// and gamma-metering passes over them, and writes the deployable tree back
// out:
//   - Identifier sanitization so contract code cannot shadow runtime names
//   - Gamma metering calls inserted ahead of every costed computation
//   - Static cost reports without rewriting the tree
//   - An audit trail of every instrumented contract
//
// Usage:
//
//	# Sanitize and instrument a contract tree
//	elixiumc instrument --in contract.json --out deployable.json
//
//	# Report the static gamma schedule without rewriting
//	elixiumc cost --in contract.json
//
//	# Run only the sanitization pass
//	elixiumc sanitize --in contract.json
//
//	# Inspect the audit trail
//	elixiumc audit list
//
//	# Show version information
//	elixiumc version
package main

func main() {
	Execute()
}
