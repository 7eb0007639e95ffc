package compile

import (
	"fmt"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

// block compiles `{{#name args}}content{{else}}elseContent{{/name}}`.
//
// if and unless become ternaries. Every other block becomes an element named
// after the block helper. each, with and let change the data context, so their
// content is passed as a function of the new context.
func (c *Compiler) block(v *visitor.Visitor, tt *spacebars.TemplateTag) (jsx.Node, error) {
	kind := tt.Path.Head()
	switch kind {
	case "if", "unless":
		return c.conditional(v, tt, kind == "unless")
	}

	attrName := "attr"
	var params []jsx.Node
	scoped := false
	switch kind {
	case "each":
		attrName, params, scoped = "items", []jsx.Node{&jsx.Identifier{Name: "item"}}, true
	case "with":
		attrName, params, scoped = "data", []jsx.Node{&jsx.Identifier{Name: "context"}}, true
	case "let":
		scoped = true
	}

	args := tt.Args
	if kind == "each" && isEachIn(args) {
		// {{#each x in xs}}
		first, err := compileArg(v, args[0])
		if err != nil {
			return nil, err
		}
		if ident, ok := first.(*jsx.Identifier); ok {
			params = []jsx.Node{ident}
		}
		args = args[2:]
	}

	data, err := inclusionArg(v, args)
	if err != nil {
		return nil, err
	}
	if kind == "let" {
		if obj, ok := data.(*jsx.ObjectExpression); ok {
			keys := make([]string, len(obj.Properties))
			for i, p := range obj.Properties {
				keys[i] = p.Key
			}
			params = []jsx.Node{&jsx.ObjectPattern{Keys: keys}}
		}
	}

	name := elementName(tt.Path)
	attrs := []jsx.Node{attr(attrName, data)}

	if tt.ElseContent == nil {
		if scoped {
			body, err := c.toJSX(v, tt.Content)
			if err != nil {
				return nil, err
			}
			return &jsx.JSXElement{
				Name:  name,
				Attrs: attrs,
				Children: []jsx.Node{
					&jsx.JSXExpressionContainer{Expression: &jsx.ArrowFunctionExpression{Params: params, Body: body}},
				},
			}, nil
		}
		children, err := c.toJSXChildren(v, tt.Content)
		if err != nil {
			return nil, err
		}
		return &jsx.JSXElement{Name: name, Attrs: attrs, Children: children, SelfClosing: len(children) == 0}, nil
	}

	content, err := c.toJSX(v, tt.Content)
	if err != nil {
		return nil, err
	}
	elseContent, err := c.toJSX(v, tt.ElseContent)
	if err != nil {
		return nil, err
	}
	attrs = append(attrs,
		attr("content", &jsx.ArrowFunctionExpression{Params: params, Body: content}),
		attr("elseContent", &jsx.ArrowFunctionExpression{Body: elseContent}),
	)
	return &jsx.JSXElement{Name: name, Attrs: attrs, SelfClosing: true}, nil
}

func (c *Compiler) conditional(v *visitor.Visitor, tt *spacebars.TemplateTag, negate bool) (jsx.Node, error) {
	if len(tt.Args) == 0 {
		return nil, fmt.Errorf("%w: {{#%s}}", ErrMissingBlockArgument, tt.Path.Head())
	}
	test, err := compileArg(v, tt.Args[0])
	if err != nil {
		return nil, err
	}
	if negate {
		test = &jsx.UnaryExpression{Operator: "!", Argument: test}
	}
	consequent, err := c.toJSX(v, tt.Content)
	if err != nil {
		return nil, err
	}
	alternate, err := c.toJSX(v, tt.ElseContent)
	if err != nil {
		return nil, err
	}
	return &jsx.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func isEachIn(args []spacebars.Arg) bool {
	if len(args) < 3 || args[1].Kind != spacebars.PathArg {
		return false
	}
	p, ok := argPath(args[1])
	return ok && p.Head() == "in"
}
