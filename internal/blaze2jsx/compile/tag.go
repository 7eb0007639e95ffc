package compile

import (
	"fmt"
	"sort"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

// MixedAttrPlaceholder is emitted for attribute values built from several
// fragments, e.g. class="a {{b}}", which are not compiled yet.
const MixedAttrPlaceholder = "mixed attr"

func (c *Compiler) visitTag(v *visitor.Visitor, node any) (any, error) {
	tag := node.(*htmljs.Tag)
	attrs, err := tagAttrs(v, tag)
	if err != nil {
		return nil, err
	}
	el := &jsx.JSXElement{
		Name:  &jsx.JSXIdentifier{Name: htmljs.ElementName(tag.TagName)},
		Attrs: attrs,
	}
	if len(tag.Children) == 0 {
		el.SelfClosing = true
		return el, nil
	}
	el.Children = make([]jsx.Node, 0, len(tag.Children))
	for _, child := range tag.Children {
		n, err := visitNode(v, child)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, asChild(n))
	}
	return el, nil
}

func tagAttrs(v *visitor.Visitor, tag *htmljs.Tag) ([]jsx.Node, error) {
	var out []jsx.Node
	for _, entry := range tag.AttrList() {
		switch a := entry.(type) {
		case *spacebars.TemplateTag:
			if a == nil || a.Type != spacebars.Double {
				return nil, fmt.Errorf("%w: %s", ErrUnknownAttrTemplateTag, templateTagType(a))
			}
			expr, err := mustache(v, a.Path, a.Args)
			if err != nil {
				return nil, err
			}
			out = append(out, &jsx.JSXSpreadAttribute{Argument: expr})
		case htmljs.Attrs:
			attrs, err := attrMap(v, a)
			if err != nil {
				return nil, err
			}
			out = append(out, attrs...)
		default:
			return nil, fmt.Errorf("%w: %T in attributes", ErrUnknownObjectNode, entry)
		}
	}
	return out, nil
}

// attrMap compiles one attribute map with keys in sorted order. Dynamic maps
// follow the static keys so that, as in JSX, later bindings win.
func attrMap(v *visitor.Visitor, m htmljs.Attrs) ([]jsx.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != htmljs.DynamicKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]jsx.Node, 0, len(keys))
	for _, k := range keys {
		a, err := attrValue(v, k, m[k])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	dynamic, err := htmljs.DynamicAttrs(m[htmljs.DynamicKey])
	if err != nil {
		return nil, err
	}
	for _, d := range dynamic {
		attrs, err := attrMap(v, d)
		if err != nil {
			return nil, err
		}
		out = append(out, attrs...)
	}
	return out, nil
}

func attrValue(v *visitor.Visitor, name string, value any) (jsx.Node, error) {
	if tt, ok := value.(*spacebars.TemplateTag); ok {
		if tt == nil || tt.Type != spacebars.Double {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttrTemplateTag, templateTagType(tt))
		}
		expr, err := mustache(v, tt.Path, tt.Args)
		if err != nil {
			return nil, err
		}
		return &jsx.JSXAttribute{Name: name, Value: &jsx.JSXExpressionContainer{Expression: expr}}, nil
	}
	if visitor.KindOf(value) == visitor.Array {
		return &jsx.JSXAttribute{Name: name, Value: &jsx.StringLiteral{Value: MixedAttrPlaceholder}}, nil
	}
	return &jsx.JSXAttribute{Name: name, Value: &jsx.StringLiteral{Value: attrString(value)}}, nil
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case htmljs.CharRef:
		return v.Str
	case *htmljs.CharRef:
		return v.Str
	case htmljs.Thunk:
		return attrString(v())
	case func() any:
		return attrString(v())
	}
	return fmt.Sprint(value)
}

func templateTagType(tt *spacebars.TemplateTag) string {
	if tt == nil {
		return "<nil>"
	}
	return string(tt.Type)
}
