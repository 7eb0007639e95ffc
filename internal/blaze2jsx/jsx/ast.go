// Package jsx is the output tree of the compiler: the subset of JavaScript
// expressions and JSX syntax the compiler emits, plus a printer for it.
package jsx

type Node interface {
	node()
}

type Identifier struct {
	Name string
}

// MemberExpression is `Object.Property`.
type MemberExpression struct {
	Object   Node
	Property *Identifier
}

type CallExpression struct {
	Callee Node
	Args   []Node
}

type StringLiteral struct {
	Value string
}

type NumericLiteral struct {
	Value float64
}

type BooleanLiteral struct {
	Value bool
}

type NullLiteral struct{}

type ObjectProperty struct {
	Key   string
	Value Node
}

// ObjectExpression keeps properties in insertion order; keys are unique.
type ObjectExpression struct {
	Properties []ObjectProperty
}

// ObjectPattern is a destructuring parameter `{ a, b }`.
type ObjectPattern struct {
	Keys []string
}

type UnaryExpression struct {
	Operator string
	Argument Node
}

type ConditionalExpression struct {
	Test       Node
	Consequent Node
	Alternate  Node
}

// ArrowFunctionExpression has an expression body. Params are *Identifier or
// *ObjectPattern.
type ArrowFunctionExpression struct {
	Params []Node
	Body   Node
}

type ArrayExpression struct {
	Elements []Node
}

type JSXIdentifier struct {
	Name string
}

// JSXMemberExpression is a dotted element name, `<Object.Property>`.
type JSXMemberExpression struct {
	Object   Node
	Property *JSXIdentifier
}

// JSXAttribute has a *StringLiteral or *JSXExpressionContainer Value, or a
// nil Value for a bare boolean attribute.
type JSXAttribute struct {
	Name  string
	Value Node
}

type JSXSpreadAttribute struct {
	Argument Node
}

// JSXElement is `<Name Attrs...>Children</Name>`, or `<Name Attrs... />`
// when SelfClosing. Name is a *JSXIdentifier or *JSXMemberExpression.
type JSXElement struct {
	Name        Node
	Attrs       []Node
	Children    []Node
	SelfClosing bool
}

type JSXText struct {
	Value string
}

type JSXExpressionContainer struct {
	Expression Node
}

// JSXEmptyExpression is `{}` holding only comments.
type JSXEmptyExpression struct {
	Comments []string
}

type JSXFragment struct {
	Children []Node
}

func (*Identifier) node()              {}
func (*MemberExpression) node()        {}
func (*CallExpression) node()          {}
func (*StringLiteral) node()           {}
func (*NumericLiteral) node()          {}
func (*BooleanLiteral) node()          {}
func (*NullLiteral) node()             {}
func (*ObjectExpression) node()        {}
func (*ObjectPattern) node()           {}
func (*UnaryExpression) node()         {}
func (*ConditionalExpression) node()   {}
func (*ArrowFunctionExpression) node() {}
func (*ArrayExpression) node()         {}
func (*JSXIdentifier) node()           {}
func (*JSXMemberExpression) node()     {}
func (*JSXAttribute) node()            {}
func (*JSXSpreadAttribute) node()      {}
func (*JSXElement) node()              {}
func (*JSXText) node()                 {}
func (*JSXExpressionContainer) node()  {}
func (*JSXEmptyExpression) node()      {}
func (*JSXFragment) node()             {}

// IsElement reports whether n is a JSX element.
func IsElement(n Node) bool {
	_, ok := n.(*JSXElement)
	return ok
}

// IsText reports whether n is a JSX text leaf.
func IsText(n Node) bool {
	_, ok := n.(*JSXText)
	return ok
}
