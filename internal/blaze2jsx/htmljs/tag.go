// Package htmljs is the document tree a template parser produces: tags with
// attributes and children, character references, comments, raw markup and
// the control directives of package spacebars, which it stores opaquely.
package htmljs

import (
	"errors"
	"fmt"
	"reflect"
)

// Tag is a named element. Attrs is nil (no attributes), an Attrs map, or a
// []any mixing Attrs maps and attribute-position control nodes, as the parser
// emits for `<div a=b {{spread}}>`. A nil Attrs and an empty Attrs{} are
// different states.
type Tag struct {
	TagName  string
	Attrs    any
	Children []any
}

// AttrList returns the attributes as a sequence regardless of the stored form.
func (t *Tag) AttrList() []any {
	switch a := t.Attrs.(type) {
	case nil:
		return nil
	case []any:
		return a
	case Attrs:
		if a == nil {
			return nil
		}
		return []any{a}
	default:
		return []any{a}
	}
}

// CharRef is a character reference such as `&amp;`: HTML is the source
// form, Str the decoded text.
type CharRef struct {
	HTML string
	Str  string
}

type Comment struct {
	Value string
}

type Raw struct {
	Value string
}

// Func is a deferred child, computed when the tree is rendered.
type Func func() any

var ErrMalformedCharRef = errors.New("htmljs: CharRef requires html and str")

// NewCharRef builds a CharRef from its html and str fields; both are required.
func NewCharRef(fields Attrs) (CharRef, error) {
	html, okHTML := fields["html"].(string)
	str, okStr := fields["str"].(string)
	if !okHTML || !okStr {
		return CharRef{}, fmt.Errorf("%w: got %v", ErrMalformedCharRef, fields)
	}
	return CharRef{HTML: html, Str: str}, nil
}

// IsTag reports whether node is an element of any name.
func IsTag(node any) bool {
	t, ok := node.(*Tag)
	return ok && t != nil
}

// Flatten splices sequence arguments one level into the result. A sequence
// nested inside a sequence stays a single child.
func Flatten(args ...any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if items, ok := sequence(a); ok {
			out = append(out, items...)
			continue
		}
		out = append(out, a)
	}
	return out
}

func sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// TagType constructs tags of one canonical name. Values come from a Registry,
// which hands out a single *TagType per name.
type TagType struct {
	name string
}

func (tt *TagType) Name() string { return tt.name }

// New builds a tag. A leading Attrs argument becomes the attributes; every
// other argument is a child, sequences spliced one level.
func (tt *TagType) New(args ...any) *Tag {
	t := &Tag{TagName: tt.name}
	if len(args) > 0 {
		if attrs, ok := args[0].(Attrs); ok {
			if attrs != nil {
				t.Attrs = attrs
			}
			args = args[1:]
		}
	}
	t.Children = Flatten(args...)
	return t
}

// Is reports whether node is a tag of this type.
func (tt *TagType) Is(node any) bool {
	t, ok := node.(*Tag)
	return ok && t != nil && t.TagName == tt.name
}
