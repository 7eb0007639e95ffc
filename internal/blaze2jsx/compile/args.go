package compile

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

// unknownName stands in for a path made only of "." and "..".
// TODO: resolve "." and ".." against the enclosing each/with scope instead of dropping them.
const unknownName = "Unknown"

// pathIdentifier turns a.b.c into the member chain a.b.c.
func pathIdentifier(path spacebars.Path) jsx.Node {
	segs := path.Members()
	if len(segs) == 0 {
		return &jsx.Identifier{Name: unknownName}
	}
	var expr jsx.Node = &jsx.Identifier{Name: segs[0]}
	for _, s := range segs[1:] {
		expr = &jsx.MemberExpression{Object: expr, Property: &jsx.Identifier{Name: s}}
	}
	return expr
}

// elementName turns each.item into the component name Each.Item.
func elementName(path spacebars.Path) jsx.Node {
	segs := path.Members()
	if len(segs) == 0 {
		return &jsx.JSXIdentifier{Name: unknownName}
	}
	var name jsx.Node = &jsx.JSXIdentifier{Name: ucfirst(segs[0])}
	for _, s := range segs[1:] {
		name = &jsx.JSXMemberExpression{Object: name, Property: &jsx.JSXIdentifier{Name: ucfirst(s)}}
	}
	return name
}

func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// mustache compiles `path arg...` to the bare reference when there are no
// arguments, and otherwise to a call taking the positional arguments followed
// by one object of the keyword arguments.
func mustache(v *visitor.Visitor, path spacebars.Path, args []spacebars.Arg) (jsx.Node, error) {
	callee := pathIdentifier(path)
	if len(args) == 0 {
		return callee, nil
	}
	positional, keywords, err := compileArgs(v, args)
	if err != nil {
		return nil, err
	}
	if len(keywords.Properties) > 0 {
		positional = append(positional, keywords)
	}
	return &jsx.CallExpression{Callee: callee, Args: positional}, nil
}

func compileArgs(v *visitor.Visitor, args []spacebars.Arg) ([]jsx.Node, *jsx.ObjectExpression, error) {
	positional := make([]jsx.Node, 0, len(args))
	keywords := &jsx.ObjectExpression{}
	for _, a := range args {
		n, err := compileArg(v, a)
		if err != nil {
			return nil, nil, err
		}
		if a.IsKeyword() {
			setProperty(keywords, a.Name, n)
			continue
		}
		positional = append(positional, n)
	}
	return positional, keywords, nil
}

// setProperty assigns like a JS object literal: a repeated key keeps its
// first position and takes the last value.
func setProperty(obj *jsx.ObjectExpression, key string, value jsx.Node) {
	for i := range obj.Properties {
		if obj.Properties[i].Key == key {
			obj.Properties[i].Value = value
			return
		}
	}
	obj.Properties = append(obj.Properties, jsx.ObjectProperty{Key: key, Value: value})
}

func compileArg(v *visitor.Visitor, a spacebars.Arg) (jsx.Node, error) {
	switch a.Kind {
	case spacebars.StringArg:
		if s, ok := a.Value.(string); ok {
			return &jsx.StringLiteral{Value: s}, nil
		}
	case spacebars.NumberArg:
		if f, ok := toFloat(a.Value); ok {
			return &jsx.NumericLiteral{Value: f}, nil
		}
	case spacebars.BooleanArg:
		if b, ok := a.Value.(bool); ok {
			return &jsx.BooleanLiteral{Value: b}, nil
		}
	case spacebars.NullArg:
		return &jsx.NullLiteral{}, nil
	case spacebars.PathArg:
		if p, ok := argPath(a); ok {
			return pathIdentifier(p), nil
		}
	case spacebars.ExprArg:
		switch e := a.Value.(type) {
		case *spacebars.Expr:
			if e != nil {
				return subExpression(v, *e)
			}
		case spacebars.Expr:
			return subExpression(v, e)
		}
	default:
		return nil, fmt.Errorf("%w: unexpected arg type %q", ErrBadArg, a.Kind)
	}
	return nil, fmt.Errorf("%w: %s arg holds %T", ErrBadArg, a.Kind, a.Value)
}

// subExpression compiles a parenthesized (f x) argument one level deeper.
func subExpression(v *visitor.Visitor, e spacebars.Expr) (jsx.Node, error) {
	leave, err := v.Descend()
	if err != nil {
		return nil, err
	}
	defer leave()
	return mustache(v, e.Path, e.Args)
}

func argPath(a spacebars.Arg) (spacebars.Path, bool) {
	switch p := a.Value.(type) {
	case spacebars.Path:
		return p, true
	case []string:
		return p, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// inclusionArg compiles the single data argument of a block or inclusion:
// null without arguments, an object when every argument is a keyword, the
// literal when the first argument is not a path, and otherwise the call
// `first(rest...)`.
func inclusionArg(v *visitor.Visitor, args []spacebars.Arg) (jsx.Node, error) {
	if len(args) == 0 {
		return &jsx.NullLiteral{}, nil
	}
	if allKeywords(args) {
		obj := &jsx.ObjectExpression{}
		for _, a := range args {
			n, err := compileArg(v, a)
			if err != nil {
				return nil, err
			}
			setProperty(obj, a.Name, n)
		}
		return obj, nil
	}
	if args[0].Kind != spacebars.PathArg {
		return compileArg(v, args[0])
	}
	p, ok := argPath(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s arg holds %T", ErrBadArg, args[0].Kind, args[0].Value)
	}
	return mustache(v, p, args[1:])
}

func allKeywords(args []spacebars.Arg) bool {
	for _, a := range args {
		if !a.IsKeyword() {
			return false
		}
	}
	return true
}

// attr binds name to a string literal directly and to anything else through
// an expression container.
func attr(name string, value jsx.Node) *jsx.JSXAttribute {
	if s, ok := value.(*jsx.StringLiteral); ok {
		return &jsx.JSXAttribute{Name: name, Value: s}
	}
	return &jsx.JSXAttribute{Name: name, Value: &jsx.JSXExpressionContainer{Expression: value}}
}
