// Package visitor dispatches over htmljs tree nodes by kind.
//
// A Visitor is a handler Table plus a dispatcher. Handlers receive the
// dispatcher and recurse through it, so a Table holds no state and can back
// any number of Visitors. New visitors are made by layering an override Table
// over a base with Extend.
package visitor

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
)

type Kind int

const (
	Null Kind = iota
	Array
	Tag
	CharRef
	Comment
	Raw
	Function
	Object
	Primitive
)

var kindNames = [...]string{"Null", "Array", "Tag", "CharRef", "Comment", "Raw", "Function", "Object", "Primitive"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf classifies node. The tests run in order: nil, sequence, tag,
// character reference, comment, raw markup, function, object-like values
// (maps, structs and pointers, which covers control nodes), and finally
// primitives.
func KindOf(node any) Kind {
	switch n := node.(type) {
	case nil:
		return Null
	case []any:
		return Array
	case *htmljs.Tag:
		if n == nil {
			return Null
		}
		return Tag
	case htmljs.CharRef, *htmljs.CharRef:
		return CharRef
	case htmljs.Comment, *htmljs.Comment:
		return Comment
	case htmljs.Raw, *htmljs.Raw:
		return Raw
	case htmljs.Func:
		return Function
	case string, []byte:
		return Primitive
	}
	switch reflect.ValueOf(node).Kind() {
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Func:
		return Function
	case reflect.Map, reflect.Struct, reflect.Pointer:
		return Object
	}
	return Primitive
}

// Elements returns the items of an Array-kind node.
func Elements(node any) []any {
	if s, ok := node.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Handler visits one node. Recursive visits go through v.
type Handler func(v *Visitor, node any) (any, error)

type Table map[Kind]Handler

// Base maps Array nodes element-wise and returns every other node as is.
// It never descends into tag children.
func Base() Table {
	identity := func(_ *Visitor, node any) (any, error) { return node, nil }
	t := Table{Array: visitArray}
	for k := Null; k <= Primitive; k++ {
		if k != Array {
			t[k] = identity
		}
	}
	return t
}

func visitArray(v *Visitor, node any) (any, error) {
	items := Elements(node)
	out := make([]any, len(items))
	for i, item := range items {
		r, err := v.Visit(item)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Extend returns a new Table with override's handlers taking precedence
// over base's. Neither argument is modified.
func Extend(base, override Table) Table {
	t := make(Table, len(base)+len(override))
	for k, h := range base {
		t[k] = h
	}
	for k, h := range override {
		if h != nil {
			t[k] = h
		}
	}
	return t
}

const DefaultMaxDepth = 10000

var (
	ErrMaxDepth  = errors.New("visitor: maximum nesting depth exceeded")
	ErrNoHandler = errors.New("visitor: no handler")
)

// Visitor is a dispatcher over a Table. It tracks the current nesting depth
// and is therefore not safe for concurrent use; make one per goroutine.
type Visitor struct {
	table    Table
	maxDepth int
	depth    int
}

type Option func(*Visitor)

// WithMaxDepth bounds how deeply Visit may nest. n <= 0 keeps the default.
func WithMaxDepth(n int) Option {
	return func(v *Visitor) {
		if n > 0 {
			v.maxDepth = n
		}
	}
}

func New(table Table, opts ...Option) *Visitor {
	v := &Visitor{table: table, maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Create builds a Visitor from override layered over Base.
func Create(override Table, opts ...Option) *Visitor {
	return New(Extend(Base(), override), opts...)
}

// Visit runs the handler registered for node's kind and returns its result
// unmodified.
func (v *Visitor) Visit(node any) (any, error) {
	if v.depth >= v.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, v.maxDepth)
	}
	kind := KindOf(node)
	h := v.table[kind]
	if h == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoHandler, kind)
	}
	v.depth++
	defer func() { v.depth-- }()
	return h(v, node)
}

// Descend counts one level of nesting that a handler walks itself, outside
// Visit, against the same limit. Call leave when that level is done.
func (v *Visitor) Descend() (leave func(), err error) {
	if v.depth >= v.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, v.maxDepth)
	}
	v.depth++
	return func() { v.depth-- }, nil
}
