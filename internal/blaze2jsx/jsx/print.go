package jsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Print renders n as JavaScript source on a single line.
func Print(n Node) (string, error) {
	var p printer
	if err := p.node(n); err != nil {
		return "", err
	}
	return p.String(), nil
}

type printer struct {
	strings.Builder
}

func (p *printer) node(n Node) error {
	switch t := n.(type) {
	case *JSXElement:
		return p.element(t)
	case *JSXFragment:
		p.WriteString("<>")
		if err := p.children(t.Children); err != nil {
			return err
		}
		p.WriteString("</>")
		return nil
	case *JSXText:
		p.WriteString(t.Value)
		return nil
	case *JSXExpressionContainer:
		p.WriteByte('{')
		if _, ok := t.Expression.(*JSXEmptyExpression); ok {
			if err := p.node(t.Expression); err != nil {
				return err
			}
		} else if err := p.expr(t.Expression); err != nil {
			return err
		}
		p.WriteByte('}')
		return nil
	case *JSXEmptyExpression:
		for _, c := range t.Comments {
			p.WriteString("/*")
			p.WriteString(strings.ReplaceAll(c, "*/", "* /"))
			p.WriteString("*/")
		}
		return nil
	case *JSXIdentifier:
		p.WriteString(t.Name)
		return nil
	case *JSXMemberExpression:
		if err := p.node(t.Object); err != nil {
			return err
		}
		p.WriteByte('.')
		p.WriteString(t.Property.Name)
		return nil
	case nil:
		return fmt.Errorf("jsx: nil node")
	default:
		return p.expr(n)
	}
}

func (p *printer) element(el *JSXElement) error {
	p.WriteByte('<')
	if err := p.node(el.Name); err != nil {
		return err
	}
	for _, a := range el.Attrs {
		p.WriteByte(' ')
		if err := p.attr(a); err != nil {
			return err
		}
	}
	if el.SelfClosing {
		p.WriteString(" />")
		return nil
	}
	p.WriteByte('>')
	if err := p.children(el.Children); err != nil {
		return err
	}
	p.WriteString("</")
	if err := p.node(el.Name); err != nil {
		return err
	}
	p.WriteByte('>')
	return nil
}

func (p *printer) children(children []Node) error {
	for _, c := range children {
		if err := p.node(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) attr(a Node) error {
	switch t := a.(type) {
	case *JSXAttribute:
		p.WriteString(t.Name)
		switch v := t.Value.(type) {
		case nil:
		case *StringLiteral:
			p.WriteString(`="`)
			p.WriteString(strings.ReplaceAll(v.Value, `"`, "&quot;"))
			p.WriteByte('"')
		default:
			p.WriteByte('=')
			return p.node(v)
		}
		return nil
	case *JSXSpreadAttribute:
		p.WriteString("{...")
		if err := p.expr(t.Argument); err != nil {
			return err
		}
		p.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("jsx: %T is not an attribute", a)
	}
}

func (p *printer) expr(n Node) error {
	switch t := n.(type) {
	case *Identifier:
		p.WriteString(t.Name)
	case *MemberExpression:
		if err := p.operand(t.Object); err != nil {
			return err
		}
		p.WriteByte('.')
		p.WriteString(t.Property.Name)
	case *CallExpression:
		if err := p.operand(t.Callee); err != nil {
			return err
		}
		p.WriteByte('(')
		if err := p.list(t.Args); err != nil {
			return err
		}
		p.WriteByte(')')
	case *StringLiteral:
		p.WriteString(quote(t.Value))
	case *NumericLiteral:
		p.WriteString(formatNumber(t.Value))
	case *BooleanLiteral:
		p.WriteString(strconv.FormatBool(t.Value))
	case *NullLiteral:
		p.WriteString("null")
	case *ObjectExpression:
		if len(t.Properties) == 0 {
			p.WriteString("{}")
			return nil
		}
		p.WriteString("{ ")
		for i, prop := range t.Properties {
			if i > 0 {
				p.WriteString(", ")
			}
			p.WriteString(quote(prop.Key))
			p.WriteString(": ")
			if err := p.expr(prop.Value); err != nil {
				return err
			}
		}
		p.WriteString(" }")
	case *ObjectPattern:
		p.WriteString("{ ")
		p.WriteString(strings.Join(t.Keys, ", "))
		p.WriteString(" }")
	case *UnaryExpression:
		p.WriteString(t.Operator)
		return p.operand(t.Argument)
	case *ConditionalExpression:
		if err := p.operand(t.Test); err != nil {
			return err
		}
		p.WriteString(" ? ")
		if err := p.expr(t.Consequent); err != nil {
			return err
		}
		p.WriteString(" : ")
		return p.expr(t.Alternate)
	case *ArrowFunctionExpression:
		p.WriteByte('(')
		if err := p.list(t.Params); err != nil {
			return err
		}
		p.WriteString(") => ")
		if _, ok := t.Body.(*ObjectExpression); ok {
			p.WriteByte('(')
			defer p.WriteByte(')')
		}
		return p.expr(t.Body)
	case *ArrayExpression:
		p.WriteByte('[')
		if err := p.list(t.Elements); err != nil {
			return err
		}
		p.WriteByte(']')
	case *JSXElement, *JSXFragment:
		return p.node(n)
	case nil:
		return fmt.Errorf("jsx: nil expression")
	default:
		return fmt.Errorf("jsx: %T is not an expression", n)
	}
	return nil
}

// operand prints n in a position that binds tighter than ?: and =>.
func (p *printer) operand(n Node) error {
	switch n.(type) {
	case *ConditionalExpression, *ArrowFunctionExpression:
		p.WriteByte('(')
		if err := p.expr(n); err != nil {
			return err
		}
		p.WriteByte(')')
		return nil
	}
	return p.expr(n)
}

func (p *printer) list(nodes []Node) error {
	for i, n := range nodes {
		if i > 0 {
			p.WriteString(", ")
		}
		if err := p.expr(n); err != nil {
			return err
		}
	}
	return nil
}

// quote writes s as a double-quoted JavaScript string. Invalid UTF-8 becomes
// U+FFFD and non-printable astral runes use the \u{...} form.
func quote(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\a':
			b.WriteString(`\x07`)
		case r > 0xFFFF && !unicode.IsPrint(r):
			fmt.Fprintf(&b, `\u{%x}`, r)
		default:
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
