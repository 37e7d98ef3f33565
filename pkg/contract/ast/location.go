package ast

import "fmt"

// Position is a single point in contract source (1-based line, 0-based
// column, following the parser convention).
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the span of source an AST node was parsed from. Parsers
// may omit it; passes carry it through untouched for error reporting.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// String returns a human-readable representation of the location.
func (l *SourceLocation) String() string {
	if l == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
}

// IsValid returns true if the location carries real position information.
func (l *SourceLocation) IsValid() bool {
	return l != nil && l.Start.Line > 0
}
