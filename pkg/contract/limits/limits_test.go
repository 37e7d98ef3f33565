package limits

import (
	"errors"
	"testing"

	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	cerrors "github.com/xfumihiro/elixium-core/pkg/contract/errors"
)

// chain builds a tree of the given depth, one expression statement deep per
// level.
func chain(depth int) *ast.Node {
	root := ast.NewIdentifier("x")
	for i := 1; i < depth; i++ {
		root = ast.NewExpressionStatement(root)
	}
	return root
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		tree    *ast.Node
		wantErr bool
	}{
		{
			name:   "within defaults",
			limits: Defaults(),
			tree:   chain(10),
		},
		{
			name:    "too many nodes",
			limits:  Limits{MaxNodes: 5, MaxDepth: 100},
			tree:    chain(10),
			wantErr: true,
		},
		{
			name:    "too deep",
			limits:  Limits{MaxNodes: 100, MaxDepth: 5},
			tree:    chain(10),
			wantErr: true,
		},
		{
			name:    "zero fields fall back to defaults",
			limits:  Limits{},
			tree:    chain(300), // over DefaultMaxDepth
			wantErr: true,
		},
		{
			name:   "nil tree",
			limits: Defaults(),
			tree:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Check(tt.tree)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cErr *cerrors.Error
				if !errors.As(err, &cErr) || cErr.Type != cerrors.ErrorTypeLimit {
					t.Errorf("Check() error = %v, want limit error", err)
				}
			}
		})
	}
}
