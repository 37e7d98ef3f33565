package ast

// Kind is the node kind discriminant. It selects which fields of a Node are
// meaningful, mirroring the "type" tag of ESTree JSON.
type Kind string

const (
	KindProgram              Kind = "Program"
	KindBlockStatement       Kind = "BlockStatement"
	KindExpressionStatement  Kind = "ExpressionStatement"
	KindReturnStatement      Kind = "ReturnStatement"
	KindIfStatement          Kind = "IfStatement"
	KindVariableDeclaration  Kind = "VariableDeclaration"
	KindVariableDeclarator   Kind = "VariableDeclarator"
	KindBinaryExpression     Kind = "BinaryExpression"
	KindUpdateExpression     Kind = "UpdateExpression"
	KindAssignmentExpression Kind = "AssignmentExpression"
	KindCallExpression       Kind = "CallExpression"
	KindMemberExpression     Kind = "MemberExpression"
	KindIdentifier           Kind = "Identifier"
	KindLiteral              Kind = "Literal"
	KindFunctionExpression   Kind = "FunctionExpression"
	KindMethodDefinition     Kind = "MethodDefinition"
	KindClassDeclaration     Kind = "ClassDeclaration"
	KindClassBody            Kind = "ClassBody"
)

// Node represents a single AST node. It is a tagged variant: Type selects the
// node kind and determines which of the remaining fields carry meaning. Fields
// irrelevant to a kind stay at their zero value and are omitted from JSON.
type Node struct {
	Type Kind `json:"type"`

	// Identifier
	Name string `json:"name,omitempty"`

	// Literal. LiteralValue holds the concrete value (number, string,
	// boolean, or nil for the null literal); Raw preserves the source
	// spelling when the parser provides it. LiteralValue shares the "value"
	// JSON key with MethodDefinition's Value, so both are handled in the
	// custom (un)marshaling in json.go.
	LiteralValue any    `json:"-"`
	Raw          string `json:"raw,omitempty"`

	// Operator-bearing expressions (BinaryExpression, UpdateExpression,
	// AssignmentExpression).
	Operator string `json:"operator,omitempty"`
	Left     *Node  `json:"left,omitempty"`
	Right    *Node  `json:"right,omitempty"`
	Argument *Node  `json:"argument,omitempty"` // UpdateExpression, ReturnStatement
	Prefix   bool   `json:"prefix,omitempty"`

	// ExpressionStatement
	Expression *Node `json:"expression,omitempty"`

	// IfStatement
	Test       *Node `json:"test,omitempty"`
	Consequent *Node `json:"consequent,omitempty"`
	Alternate  *Node `json:"alternate,omitempty"`

	// VariableDeclaration / VariableDeclarator
	Declarations []*Node `json:"declarations,omitempty"`
	DeclKind     string  `json:"kind,omitempty"` // "var", "let", "const"
	ID           *Node   `json:"id,omitempty"`
	Init         *Node   `json:"init,omitempty"`

	// CallExpression
	Callee    *Node   `json:"callee,omitempty"`
	Arguments []*Node `json:"arguments,omitempty"`

	// MemberExpression
	Object   *Node `json:"object,omitempty"`
	Property *Node `json:"property,omitempty"`
	Computed bool  `json:"computed,omitempty"`

	// MethodDefinition / ClassDeclaration. Value wraps the method's
	// FunctionExpression ("value" on the wire, see json.go).
	Key    *Node  `json:"key,omitempty"`
	Value  *Node  `json:"-"`
	Static bool   `json:"static,omitempty"`
	MKind  string `json:"methodKind,omitempty"` // "constructor", "method"

	// FunctionExpression
	Params []*Node `json:"params,omitempty"`

	// Ordered statement sequence (Program, BlockStatement, ClassBody,
	// FunctionExpression). Always a sequence, never a single wrapped node.
	Body []*Node `json:"body,omitempty"`

	// Loc is the source location reported by the parser, when present.
	Loc *SourceLocation `json:"loc,omitempty"`
}

// HasBody returns true if this node kind carries an ordered statement
// sequence in Body.
func (n *Node) HasBody() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case KindProgram, KindBlockStatement, KindClassDeclaration, KindClassBody, KindFunctionExpression:
		return true
	}
	return false
}

// IsDeclarationHeader returns true for node kinds that introduce a
// declaration rather than perform a computation. The instrumentation pass
// never places a metering call in front of these.
func (n *Node) IsDeclarationHeader() bool {
	if n == nil {
		return false
	}
	return n.Type == KindMethodDefinition || n.Type == KindClassDeclaration
}

// IsLiteral returns true if this node is a Literal carrying a concrete value.
func (n *Node) IsLiteral() bool {
	return n != nil && n.Type == KindLiteral
}

// NewIdentifier constructs an Identifier node.
func NewIdentifier(name string) *Node {
	return &Node{Type: KindIdentifier, Name: name}
}

// NewNumberLiteral constructs a numeric Literal node with its raw spelling.
func NewNumberLiteral(value int64, raw string) *Node {
	return &Node{Type: KindLiteral, LiteralValue: value, Raw: raw}
}

// NewMember constructs a non-computed MemberExpression (object.property).
func NewMember(object, property *Node) *Node {
	return &Node{Type: KindMemberExpression, Object: object, Property: property}
}

// NewCall constructs a CallExpression node.
func NewCall(callee *Node, args ...*Node) *Node {
	return &Node{Type: KindCallExpression, Callee: callee, Arguments: args}
}

// NewExpressionStatement wraps an expression as a statement.
func NewExpressionStatement(expr *Node) *Node {
	return &Node{Type: KindExpressionStatement, Expression: expr}
}
