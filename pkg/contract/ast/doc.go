// Package ast provides Abstract Syntax Tree (AST) definitions for Elixium
// contract code.
//
// Contract source is written in a JavaScript-like grammar and parsed by an
// external parser into an ESTree-shaped tree: nested tagged nodes with a kind
// discriminant and kind-specific fields. This package defines that tree for
// Go, along with the traversal, cloning, and measurement helpers the
// transformation passes are built on.
//
// # Core Types
//
// Node: a single tagged AST node (the kind discriminant selects which fields
// are meaningful)
//
// Kind: the node kind discriminant (Identifier, BinaryExpression, ...)
//
// SourceLocation: optional source position carried through from the parser
// for error reporting
//
// # Ownership
//
// Each transformation pass consumes one tree and produces a new, independent
// tree. Use Clone before handing a tree to code that may rewrite it; no node
// is shared or mutated in place across passes.
//
// # Wire Shape
//
// Nodes marshal to and from ESTree-style JSON ("type", "operator", "left",
// ...), which is the handoff format between the external parser, the
// transformation passes, and the external code generator. A node with a
// "body" field always carries an ordered statement sequence.
package ast
