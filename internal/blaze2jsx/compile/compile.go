// Package compile lowers an htmljs document tree with Spacebars directives
// to a JSX expression tree.
package compile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

var (
	ErrUnknownObjectNode      = errors.New("compile: unknown object node")
	ErrUnsupportedControlKind = errors.New("compile: unsupported node")
	ErrUnknownAttrTemplateTag = errors.New("compile: unknown attr template tag")
	ErrMissingBlockArgument   = errors.New("compile: block requires an argument")
	ErrBadArg                 = errors.New("compile: malformed argument")
)

type Options struct {
	// MaxDepth bounds the nesting of the input tree. Zero means
	// visitor.DefaultMaxDepth.
	MaxDepth int
	// Registry provides the tag that wraps bare fragments. Nil means
	// htmljs.Default.
	Registry *htmljs.Registry
	// Overrides replace the compiler's handlers for individual node kinds.
	Overrides visitor.Table
}

// Compiler holds a handler table and settings; it keeps no state between
// calls and may be shared.
type Compiler struct {
	table    visitor.Table
	maxDepth int
	wrapper  *htmljs.TagType
}

func New(opts Options) *Compiler {
	reg := opts.Registry
	if reg == nil {
		reg = htmljs.Default
	}
	c := &Compiler{maxDepth: opts.MaxDepth, wrapper: reg.GetTag("div")}
	c.table = visitor.Extend(visitor.Extend(visitor.Base(), c.handlers()), opts.Overrides)
	return c
}

// Table returns a copy of the handler table, for building derived visitors.
func (c *Compiler) Table() visitor.Table {
	return visitor.Extend(c.table, nil)
}

// Compile lowers tree with a fresh visitor.
func (c *Compiler) Compile(tree any) (jsx.Node, error) {
	v := visitor.New(c.table, visitor.WithMaxDepth(c.maxDepth))
	return c.toJSX(v, tree)
}

// Compile lowers tree with default options.
func Compile(tree any) (jsx.Node, error) {
	return New(Options{}).Compile(tree)
}

func (c *Compiler) handlers() visitor.Table {
	return visitor.Table{
		visitor.Null: func(*visitor.Visitor, any) (any, error) {
			return &jsx.NullLiteral{}, nil
		},
		visitor.Primitive: visitPrimitive,
		visitor.Array:     visitArray,
		visitor.Comment: func(_ *visitor.Visitor, node any) (any, error) {
			return &jsx.JSXEmptyExpression{Comments: []string{commentValue(node)}}, nil
		},
		visitor.CharRef: func(_ *visitor.Visitor, node any) (any, error) {
			return &jsx.JSXText{Value: charRefHTML(node)}, nil
		},
		visitor.Raw: func(*visitor.Visitor, any) (any, error) {
			return nil, fmt.Errorf("%w: raw markup", ErrUnsupportedControlKind)
		},
		visitor.Function: func(*visitor.Visitor, any) (any, error) {
			return nil, fmt.Errorf("%w: deferred function", ErrUnsupportedControlKind)
		},
		visitor.Object: c.visitObject,
		visitor.Tag:    c.visitTag,
	}
}

var textEscaper = strings.NewReplacer("{", "&lcub;", "}", "&rcub;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func visitPrimitive(_ *visitor.Visitor, node any) (any, error) {
	switch p := node.(type) {
	case string:
		return &jsx.JSXText{Value: escapeText(p)}, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return &jsx.JSXText{Value: escapeText(fmt.Sprint(p))}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownObjectNode, node)
}

func visitArray(v *visitor.Visitor, node any) (any, error) {
	items := visitor.Elements(node)
	arr := &jsx.ArrayExpression{Elements: make([]jsx.Node, 0, len(items))}
	for _, item := range items {
		n, err := visitNode(v, item)
		if err != nil {
			return nil, err
		}
		switch n.(type) {
		case *jsx.JSXText, *jsx.JSXEmptyExpression:
			n = &jsx.JSXFragment{Children: []jsx.Node{asChild(n)}}
		}
		arr.Elements = append(arr.Elements, n)
	}
	return arr, nil
}

func commentValue(node any) string {
	if c, ok := node.(*htmljs.Comment); ok {
		return c.Value
	}
	return node.(htmljs.Comment).Value
}

func charRefHTML(node any) string {
	if r, ok := node.(*htmljs.CharRef); ok {
		return r.HTML
	}
	return node.(htmljs.CharRef).HTML
}

// visitNode visits node and requires a jsx result.
func visitNode(v *visitor.Visitor, node any) (jsx.Node, error) {
	out, err := v.Visit(node)
	if err != nil {
		return nil, err
	}
	n, ok := out.(jsx.Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("compile: %s handler returned %T", visitor.KindOf(node), out)
	}
	return n, nil
}

// wrap returns node as a tag, putting anything that is not already one
// inside the fragment wrapper.
func (c *Compiler) wrap(node any) (*htmljs.Tag, bool) {
	if t, ok := node.(*htmljs.Tag); ok && t != nil {
		return t, false
	}
	return &htmljs.Tag{TagName: c.wrapper.Name(), Children: htmljs.Flatten(node)}, true
}

// toJSX compiles node as a single expression. A wrapped fragment never
// surfaces as an element: it becomes null, its only element, or a JSX
// fragment of its non-blank children.
func (c *Compiler) toJSX(v *visitor.Visitor, node any) (jsx.Node, error) {
	if node == nil {
		return &jsx.NullLiteral{}, nil
	}
	tag, wrapped := c.wrap(node)
	out, err := visitNode(v, tag)
	if err != nil {
		return nil, err
	}
	el, ok := out.(*jsx.JSXElement)
	if !wrapped || !ok {
		return out, nil
	}
	kept := significant(el.Children)
	switch {
	case len(kept) == 0:
		return &jsx.NullLiteral{}, nil
	case len(kept) == 1 && jsx.IsElement(kept[0]):
		return kept[0], nil
	}
	return &jsx.JSXFragment{Children: kept}, nil
}

// toJSXChildren compiles node into a list of element children.
func (c *Compiler) toJSXChildren(v *visitor.Visitor, node any) ([]jsx.Node, error) {
	if node == nil {
		return nil, nil
	}
	tag, wrapped := c.wrap(node)
	out, err := visitNode(v, tag)
	if err != nil {
		return nil, err
	}
	el, ok := out.(*jsx.JSXElement)
	if !wrapped || !ok {
		return []jsx.Node{asChild(out)}, nil
	}
	return significant(el.Children), nil
}

// significant drops whitespace-only text.
func significant(children []jsx.Node) []jsx.Node {
	out := make([]jsx.Node, 0, len(children))
	for _, ch := range children {
		if t, ok := ch.(*jsx.JSXText); ok && strings.TrimSpace(t.Value) == "" {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// asChild embeds anything that is not an element or text in {...}.
func asChild(n jsx.Node) jsx.Node {
	switch n.(type) {
	case *jsx.JSXElement, *jsx.JSXText:
		return n
	}
	return &jsx.JSXExpressionContainer{Expression: n}
}

func (c *Compiler) visitObject(v *visitor.Visitor, node any) (any, error) {
	tt, ok := node.(*spacebars.TemplateTag)
	if !ok || tt == nil {
		return nil, fmt.Errorf("%w: %T", ErrUnknownObjectNode, node)
	}
	switch tt.Type {
	case spacebars.Escape:
		return &jsx.JSXText{Value: escapeText(tt.Value)}, nil
	case spacebars.Double, spacebars.Triple:
		return mustache(v, tt.Path, tt.Args)
	case spacebars.Inclusion:
		data, err := inclusionArg(v, tt.Args)
		if err != nil {
			return nil, err
		}
		return &jsx.JSXElement{
			Name:        elementName(tt.Path),
			Attrs:       []jsx.Node{attr("data", data)},
			SelfClosing: true,
		}, nil
	case spacebars.BlockOpen:
		return c.block(v, tt)
	}
	return nil, fmt.Errorf("%w: template tag %s", ErrUnsupportedControlKind, tt.Type)
}
