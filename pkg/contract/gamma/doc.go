// Package gamma implements the deterministic resource cost model for Elixium
// contract code.
//
// Gamma is the resource unit charged for permission to execute one unit of
// computation inside the contract VM. The cost of a computation is fixed at
// deploy time: the cost table maps each priced operator to its tier, and the
// Evaluator folds the table over AST nodes and statement sequences.
//
// # Tiers
//
// Operators are partitioned into four fixed tiers:
//
//	base (2):        ^ == != === !== <= < > >= instanceof | & << >> >>> in
//	low (3):         + -
//	medium (5):      * / %
//	medium_high (6): ++ --
//
// An operator outside every tier is a hard error: silently pricing an unknown
// operator at zero would hand contract authors free computation.
//
// # Unhandled node kinds
//
// A node kind the evaluator has no case for degrades to a collectible
// diagnostic and a zero cost. WithStrictKinds(true) escalates that coverage
// gap to a hard rejection, which hardened deployments should prefer for the
// same free-computation reason.
package gamma
