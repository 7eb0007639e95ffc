// Package gomponents renders an htmljs document tree to HTML by lowering it
// to gomponents nodes.
package gomponents

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

// ErrNotRenderable is returned for control directives and deferred
// functions, which only the compiler understands.
var ErrNotRenderable = errors.New("gomponents: node cannot be rendered to HTML")

var lowering = visitor.Extend(visitor.Base(), visitor.Table{
	visitor.Null: func(*visitor.Visitor, any) (any, error) {
		return g.Group(nil), nil
	},
	visitor.Array: func(v *visitor.Visitor, node any) (any, error) {
		items := visitor.Elements(node)
		nodes := make([]g.Node, 0, len(items))
		for _, item := range items {
			n, err := lowerNode(v, item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
		return g.Group(nodes), nil
	},
	visitor.Primitive: func(_ *visitor.Visitor, node any) (any, error) {
		if s, ok := node.(string); ok {
			return g.Text(s), nil
		}
		return g.Text(fmt.Sprint(node)), nil
	},
	visitor.CharRef: func(_ *visitor.Visitor, node any) (any, error) {
		return g.Raw(charRef(node).HTML), nil
	},
	visitor.Comment: func(_ *visitor.Visitor, node any) (any, error) {
		c, ok := node.(htmljs.Comment)
		if !ok {
			c = *node.(*htmljs.Comment)
		}
		return g.Raw("<!--" + c.Value + "-->"), nil
	},
	visitor.Raw: func(_ *visitor.Visitor, node any) (any, error) {
		r, ok := node.(htmljs.Raw)
		if !ok {
			r = *node.(*htmljs.Raw)
		}
		return g.Raw(r.Value), nil
	},
	visitor.Function: func(*visitor.Visitor, any) (any, error) {
		return nil, fmt.Errorf("%w: deferred function", ErrNotRenderable)
	},
	visitor.Object: func(_ *visitor.Visitor, node any) (any, error) {
		return nil, fmt.Errorf("%w: %T", ErrNotRenderable, node)
	},
	visitor.Tag: lowerTag,
})

// Lower converts node to a gomponents node.
func Lower(node any) (g.Node, error) {
	return lowerNode(visitor.New(lowering), node)
}

// ToHTML renders node as HTML.
func ToHTML(node any) (string, error) {
	n, err := Lower(node)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func lowerNode(v *visitor.Visitor, node any) (g.Node, error) {
	out, err := v.Visit(node)
	if err != nil {
		return nil, err
	}
	n, ok := out.(g.Node)
	if !ok {
		return nil, fmt.Errorf("gomponents: %s lowered to %T", visitor.KindOf(node), out)
	}
	return n, nil
}

func lowerTag(v *visitor.Visitor, node any) (any, error) {
	tag := node.(*htmljs.Tag)
	attrs, err := tagAttrs(tag)
	if err != nil {
		return nil, err
	}
	children := attrs
	for _, child := range tag.Children {
		n, err := lowerNode(v, child)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return g.El(htmljs.ElementName(tag.TagName), children...), nil
}

// tagAttrs evaluates and merges the tag's attribute maps. A nil value drops
// the attribute.
func tagAttrs(tag *htmljs.Tag) ([]g.Node, error) {
	merged := htmljs.Attrs{}
	for _, entry := range tag.AttrList() {
		m, ok := entry.(htmljs.Attrs)
		if !ok {
			return nil, fmt.Errorf("%w: %T in attributes", ErrNotRenderable, entry)
		}
		ev, err := htmljs.EvaluateAttributes(m)
		if err != nil {
			return nil, err
		}
		for k, val := range ev {
			merged[k] = val
		}
	}

	keys := make([]string, 0, len(merged))
	for k, val := range merged {
		if val != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]g.Node, 0, len(keys))
	for _, k := range keys {
		s, err := attrText(merged[k])
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out = append(out, g.Attr(htmljs.ASCIILowerCase(k), s))
	}
	return out, nil
}

// attrText flattens an attribute value to text. Character references
// contribute their decoded form; gomponents escapes the result.
func attrText(value any) (string, error) {
	switch visitor.KindOf(value) {
	case visitor.Null:
		return "", nil
	case visitor.Array:
		var b strings.Builder
		for _, part := range visitor.Elements(value) {
			s, err := attrText(part)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		return b.String(), nil
	case visitor.CharRef:
		return charRef(value).Str, nil
	case visitor.Function:
		if t, ok := value.(htmljs.Thunk); ok {
			return attrText(t())
		}
		return "", fmt.Errorf("%w: function attribute", ErrNotRenderable)
	case visitor.Primitive:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprint(value), nil
	}
	return "", fmt.Errorf("%w: %T attribute", ErrNotRenderable, value)
}

func charRef(node any) htmljs.CharRef {
	if r, ok := node.(*htmljs.CharRef); ok {
		return *r
	}
	return node.(htmljs.CharRef)
}
