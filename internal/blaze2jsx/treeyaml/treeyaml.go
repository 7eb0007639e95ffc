// Package treeyaml reads htmljs document trees written as YAML.
//
// Scalars are text, numbers, booleans or null; sequences are nested child
// lists; mappings are nodes identified by their one distinguishing key:
//
//	- tag: div
//	  attrs: {class: row}
//	  children:
//	    - "Hello, "
//	    - double: user.name
//	    - block: each
//	      args: [{path: item}, {path: in}, {path: items}]
//	      content: [{double: item}]
//	      else: ["none"]
//	    - inclusion: widget
//	      args: [{number: 1, name: size}]
//	    - charref: {html: "&amp;", str: "&"}
//	    - comment: note
package treeyaml

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
)

var ErrInvalidTree = errors.New("treeyaml: invalid tree")

// node keys, one per node form
var nodeKeys = []string{"tag", "charref", "comment", "raw", "escape", "double", "triple", "inclusion", "block"}

// Decode parses a YAML document into a document tree. An empty document
// decodes to nil.
func Decode(src []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return decodeNode(doc.Content[0], "<doc>")
}

func errorf(path, format string, args ...any) error {
	return fmt.Errorf("%w: path=%s: %s", ErrInvalidTree, path, fmt.Sprintf(format, args...))
}

func decodeNode(n *yaml.Node, path string) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeNode(n.Alias, path)
	case yaml.ScalarNode:
		return decodeScalar(n, path)
	case yaml.SequenceNode:
		return decodeSequence(n, path)
	case yaml.MappingNode:
		return decodeMapping(n, path)
	}
	return nil, errorf(path, "unexpected YAML node kind %d", n.Kind)
}

func decodeScalar(n *yaml.Node, path string) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errorf(path, "%v", err)
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errorf(path, "%v", err)
		}
		return f, nil
	}
	return n.Value, nil
}

func decodeSequence(n *yaml.Node, path string) ([]any, error) {
	out := make([]any, 0, len(n.Content))
	for i, item := range n.Content {
		v, err := decodeNode(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// fields indexes a mapping node by key.
func fields(n *yaml.Node, path string) (map[string]*yaml.Node, error) {
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		if _, dup := out[k]; dup {
			return nil, errorf(path, "duplicate key %q", k)
		}
		out[k] = n.Content[i+1]
	}
	return out, nil
}

func decodeMapping(n *yaml.Node, path string) (any, error) {
	f, err := fields(n, path)
	if err != nil {
		return nil, err
	}
	var kind string
	for _, k := range nodeKeys {
		if _, ok := f[k]; !ok {
			continue
		}
		if kind != "" {
			return nil, errorf(path, "node has both %q and %q", kind, k)
		}
		kind = k
	}

	switch kind {
	case "tag":
		return decodeTag(f, path)
	case "charref":
		return decodeCharRef(f["charref"], path+".charref")
	case "comment":
		return htmljs.Comment{Value: f["comment"].Value}, nil
	case "raw":
		return htmljs.Raw{Value: f["raw"].Value}, nil
	case "escape":
		return spacebars.NewEscape(f["escape"].Value), nil
	case "double", "triple", "inclusion", "block":
		return decodeTemplateTag(kind, f, path)
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return nil, errorf(path, "unknown node with keys [%s]", strings.Join(keys, ", "))
}

func decodeTag(f map[string]*yaml.Node, path string) (any, error) {
	name := f["tag"].Value
	if name == "" {
		return nil, errorf(path, "empty tag name")
	}
	tag := &htmljs.Tag{TagName: htmljs.CanonicalName(name)}

	if a, ok := f["attrs"]; ok {
		attrs, err := decodeAttrs(a, path+".attrs")
		if err != nil {
			return nil, err
		}
		tag.Attrs = attrs
	}

	var children []any
	if c, ok := f["children"]; ok {
		if c.Kind != yaml.SequenceNode {
			return nil, errorf(path+".children", "children must be a sequence")
		}
		var err error
		if children, err = decodeSequence(c, path+".children"); err != nil {
			return nil, err
		}
	}
	tag.Children = htmljs.Flatten(children...)
	return tag, nil
}

// decodeAttrs reads either one attribute map or a sequence mixing maps and
// {double: ...} spreads.
func decodeAttrs(n *yaml.Node, path string) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return decodeAttrMap(n, path)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for i, item := range n.Content {
			p := fmt.Sprintf("%s[%d]", path, i)
			if item.Kind != yaml.MappingNode {
				return nil, errorf(p, "attribute entries must be mappings")
			}
			f, err := fields(item, p)
			if err != nil {
				return nil, err
			}
			if _, ok := f["double"]; ok {
				tt, err := decodeTemplateTag("double", f, p)
				if err != nil {
					return nil, err
				}
				out = append(out, tt)
				continue
			}
			m, err := decodeAttrMap(item, p)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, errorf(path, "attrs must be a mapping or a sequence")
}

func decodeAttrMap(n *yaml.Node, path string) (htmljs.Attrs, error) {
	f, err := fields(n, path)
	if err != nil {
		return nil, err
	}
	attrs := make(htmljs.Attrs, len(f))
	for k, v := range f {
		p := path + "." + k
		if k == htmljs.DynamicKey {
			if v.Kind != yaml.SequenceNode {
				return nil, errorf(p, "%s must be a sequence", htmljs.DynamicKey)
			}
			dynamic := make([]htmljs.Attrs, 0, len(v.Content))
			for i, item := range v.Content {
				m, err := decodeAttrMap(item, fmt.Sprintf("%s[%d]", p, i))
				if err != nil {
					return nil, err
				}
				dynamic = append(dynamic, m)
			}
			attrs[k] = dynamic
			continue
		}
		val, err := decodeAttrValue(v, p)
		if err != nil {
			return nil, err
		}
		attrs[k] = val
	}
	return attrs, nil
}

func decodeAttrValue(n *yaml.Node, path string) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		return decodeSequence(n, path)
	case yaml.MappingNode:
		return decodeMapping(n, path)
	case yaml.AliasNode:
		return decodeAttrValue(n.Alias, path)
	}
	return nil, errorf(path, "unexpected attribute value")
}

func decodeCharRef(n *yaml.Node, path string) (any, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(path, "charref must be a mapping")
	}
	f, err := fields(n, path)
	if err != nil {
		return nil, err
	}
	raw := htmljs.Attrs{}
	for k, v := range f {
		raw[k] = v.Value
	}
	ref, err := htmljs.NewCharRef(raw)
	if err != nil {
		return nil, fmt.Errorf("path=%s: %w", path, err)
	}
	return ref, nil
}

func decodeTemplateTag(kind string, f map[string]*yaml.Node, path string) (*spacebars.TemplateTag, error) {
	p := spacebars.ParsePath(f[kind].Value)
	var args []spacebars.Arg
	if a, ok := f["args"]; ok {
		var err error
		if args, err = decodeArgs(a, path+".args"); err != nil {
			return nil, err
		}
	}

	switch kind {
	case "double":
		return spacebars.NewDouble(p, args...), nil
	case "triple":
		return spacebars.NewTriple(p, args...), nil
	case "inclusion":
		return spacebars.NewInclusion(p, args...), nil
	}

	tt := spacebars.NewBlock(p, args, nil, nil)
	if c, ok := f["content"]; ok {
		content, err := decodeNode(c, path+".content")
		if err != nil {
			return nil, err
		}
		tt.Content = content
	}
	if e, ok := f["else"]; ok {
		elseContent, err := decodeNode(e, path+".else")
		if err != nil {
			return nil, err
		}
		tt.ElseContent = elseContent
	}
	return tt, nil
}

func decodeArgs(n *yaml.Node, path string) ([]spacebars.Arg, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(path, "args must be a sequence")
	}
	out := make([]spacebars.Arg, 0, len(n.Content))
	for i, item := range n.Content {
		a, err := decodeArg(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeArg(n *yaml.Node, path string) (spacebars.Arg, error) {
	if n.Kind != yaml.MappingNode {
		return spacebars.Arg{}, errorf(path, "arg must be a mapping")
	}
	f, err := fields(n, path)
	if err != nil {
		return spacebars.Arg{}, err
	}

	var a spacebars.Arg
	found := 0
	for k, v := range f {
		switch k {
		case "name":
			continue
		case "string":
			a = spacebars.String(v.Value)
		case "number":
			var num float64
			if err := v.Decode(&num); err != nil {
				return spacebars.Arg{}, errorf(path, "number: %v", err)
			}
			a = spacebars.Number(num)
		case "bool":
			var b bool
			if err := v.Decode(&b); err != nil {
				return spacebars.Arg{}, errorf(path, "bool: %v", err)
			}
			a = spacebars.Bool(b)
		case "null":
			a = spacebars.Null()
		case "path":
			a = spacebars.Ref(v.Value)
		case "expr":
			if v.Kind != yaml.MappingNode {
				return spacebars.Arg{}, errorf(path, "expr must be a mapping")
			}
			ef, err := fields(v, path+".expr")
			if err != nil {
				return spacebars.Arg{}, err
			}
			pathNode, ok := ef["path"]
			if !ok {
				return spacebars.Arg{}, errorf(path, "expr requires a path")
			}
			var sub []spacebars.Arg
			if sa, ok := ef["args"]; ok {
				if sub, err = decodeArgs(sa, path+".expr.args"); err != nil {
					return spacebars.Arg{}, err
				}
			}
			a = spacebars.Sub(pathNode.Value, sub...)
		default:
			return spacebars.Arg{}, errorf(path, "unknown arg key %q", k)
		}
		found++
	}
	if found != 1 {
		return spacebars.Arg{}, errorf(path, "arg needs exactly one value key, got %d", found)
	}
	if name, ok := f["name"]; ok {
		a = a.Named(name.Value)
	}
	return a, nil
}
