// Package errors provides rich error types for contract rejection.
//
// Every failure that makes a contract undeployable - a syntax error from the
// parser, an operator the cost table does not price, a tree that exceeds the
// size ceiling - is reported as an *Error with a category, a message, and an
// optional source location and suggestion. ErrorList accumulates several of
// them so a rejected contract reports every problem at once.
package errors
