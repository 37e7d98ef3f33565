// Package parser defines the boundary to the external contract parser.
//
// Turning raw source text in the JavaScript-like contract grammar into an
// AST is the job of an external collaborator; this package holds the
// interface that collaborator satisfies, plus a decoder for the ESTree JSON
// wire shape such a parser hands back. A syntax error from the collaborator
// surfaces verbatim as a contract rejection, never as a partial tree.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	cerrors "github.com/xfumihiro/elixium-core/pkg/contract/errors"
)

// DefaultMaxSourceBytes bounds how much contract input a decoder will read.
const DefaultMaxSourceBytes = 10 * 1024 * 1024 // 10MB

// Parser converts contract source text into an AST. Implementations wrap an
// external parser for the contract grammar. Parse is a single synchronous,
// cancellable request per contract; a failure is a rejection of the whole
// contract, never a partial tree.
type Parser interface {
	Parse(ctx context.Context, source []byte) (*ast.Node, error)
}

// TreeDecoder decodes ESTree JSON documents, the wire shape external parsers
// hand trees over in. It enforces an input size ceiling before decoding.
type TreeDecoder struct {
	maxBytes int64
}

// NewTreeDecoder creates a decoder with the default size ceiling.
func NewTreeDecoder() *TreeDecoder {
	return &TreeDecoder{maxBytes: DefaultMaxSourceBytes}
}

// WithMaxBytes overrides the input size ceiling.
func (d *TreeDecoder) WithMaxBytes(n int64) *TreeDecoder {
	if n > 0 {
		d.maxBytes = n
	}
	return d
}

// Decode reads a single ESTree JSON tree from r. Oversized input and
// malformed JSON both reject the contract.
func (d *TreeDecoder) Decode(r io.Reader) (*ast.Node, error) {
	data, err := io.ReadAll(io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		return nil, cerrors.New(cerrors.ErrorTypeIO, "failed to read tree input: %v", err)
	}
	if int64(len(data)) > d.maxBytes {
		return nil, cerrors.New(cerrors.ErrorTypeLimit,
			"tree input exceeds the ceiling of %d bytes", d.maxBytes)
	}

	root, err := ast.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &cerrors.Error{
			Type:       cerrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("malformed tree document: %v", err),
			Suggestion: "the external parser must emit a single ESTree JSON object",
		}
	}
	return root, nil
}

// DecodeBytes decodes an ESTree JSON tree from a byte slice.
func (d *TreeDecoder) DecodeBytes(data []byte) (*ast.Node, error) {
	return d.Decode(bytes.NewReader(data))
}

// TreeParser adapts the decoder to the Parser interface for pipelines whose
// upstream parser process already produced ESTree JSON.
type TreeParser struct {
	dec *TreeDecoder
}

// NewTreeParser creates a Parser over pre-parsed ESTree JSON input.
func NewTreeParser(dec *TreeDecoder) *TreeParser {
	if dec == nil {
		dec = NewTreeDecoder()
	}
	return &TreeParser{dec: dec}
}

// Parse implements Parser. The context is honored before any work begins so
// a cancelled compilation never decodes.
func (p *TreeParser) Parse(ctx context.Context, source []byte) (*ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.dec.DecodeBytes(source)
}
