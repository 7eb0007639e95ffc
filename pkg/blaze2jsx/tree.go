package blaze2jsx

import (
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/compile"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/gomponents"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/jsx"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/visitor"
)

// Document tree.
type (
	Tag      = htmljs.Tag
	TagType  = htmljs.TagType
	Registry = htmljs.Registry
	Attrs    = htmljs.Attrs
	Thunk    = htmljs.Thunk
	CharRef  = htmljs.CharRef
	Comment  = htmljs.Comment
	Raw      = htmljs.Raw
	Func     = htmljs.Func
)

// Template directives.
type (
	TemplateTag = spacebars.TemplateTag
	TagKind     = spacebars.Type
	Path        = spacebars.Path
	Arg         = spacebars.Arg
	ArgKind     = spacebars.ArgKind
	Expr        = spacebars.Expr
)

// Visitors.
type (
	Visitor = visitor.Visitor
	Handler = visitor.Handler
	Table   = visitor.Table
	Kind    = visitor.Kind
)

// Node is a compiled JSX expression tree.
type Node = jsx.Node

const DynamicKey = htmljs.DynamicKey

const (
	KindNull      = visitor.Null
	KindArray     = visitor.Array
	KindTag       = visitor.Tag
	KindCharRef   = visitor.CharRef
	KindComment   = visitor.Comment
	KindRaw       = visitor.Raw
	KindFunction  = visitor.Function
	KindObject    = visitor.Object
	KindPrimitive = visitor.Primitive
)

var (
	ErrMalformedCharRef       = htmljs.ErrMalformedCharRef
	ErrBadDynamicAttrs        = htmljs.ErrBadDynamicAttrs
	ErrUnknownObjectNode      = compile.ErrUnknownObjectNode
	ErrUnsupportedControlKind = compile.ErrUnsupportedControlKind
	ErrUnknownAttrTemplateTag = compile.ErrUnknownAttrTemplateTag
	ErrMissingBlockArgument   = compile.ErrMissingBlockArgument
	ErrBadArg                 = compile.ErrBadArg
	ErrMaxDepth               = visitor.ErrMaxDepth
	ErrNotRenderable          = gomponents.ErrNotRenderable
)

// GetTag returns the tag constructor for name from the default registry,
// creating it on first use.
func GetTag(name string) *TagType { return htmljs.GetTag(name) }

// EnsureTag looks name up in the default registry without creating it.
func EnsureTag(name string) (*TagType, bool) { return htmljs.EnsureTag(name) }

func NewRegistry() *Registry { return htmljs.NewRegistry() }

func IsTag(node any) bool { return htmljs.IsTag(node) }

func NewCharRef(fields Attrs) (CharRef, error) { return htmljs.NewCharRef(fields) }

func IsVoidElement(name string) bool { return htmljs.IsVoidElement(name) }

func IsKnownElement(name string) bool { return htmljs.IsKnownElement(name) }

func IsKnownSVGElement(name string) bool { return htmljs.IsKnownSVGElement(name) }

func ASCIILowerCase(s string) string { return htmljs.ASCIILowerCase(s) }

// EvaluateAttributes resolves thunks and merges dynamic attribute maps.
func EvaluateAttributes(attrs Attrs) (Attrs, error) { return htmljs.EvaluateAttributes(attrs) }

// ToHTML renders a document tree without template directives as HTML.
func ToHTML(node any) (string, error) { return gomponents.ToHTML(node) }

// Print renders a compiled tree as JSX source.
func Print(n Node) (string, error) { return jsx.Print(n) }

// CreateVisitor layers override over the base table, which maps sequences
// element-wise and returns every other node unchanged.
func CreateVisitor(override Table, maxDepth int) *Visitor {
	return visitor.Create(override, visitor.WithMaxDepth(maxDepth))
}

func KindOf(node any) Kind { return visitor.KindOf(node) }

func ParsePath(s string) Path { return spacebars.ParsePath(s) }

func NewEscape(value string) *TemplateTag { return spacebars.NewEscape(value) }

func NewDouble(path Path, args ...Arg) *TemplateTag { return spacebars.NewDouble(path, args...) }

func NewTriple(path Path, args ...Arg) *TemplateTag { return spacebars.NewTriple(path, args...) }

func NewInclusion(path Path, args ...Arg) *TemplateTag {
	return spacebars.NewInclusion(path, args...)
}

func NewBlock(path Path, args []Arg, content, elseContent any) *TemplateTag {
	return spacebars.NewBlock(path, args, content, elseContent)
}

func StringArg(s string) Arg { return spacebars.String(s) }

func NumberArg(n float64) Arg { return spacebars.Number(n) }

func BoolArg(b bool) Arg { return spacebars.Bool(b) }

func NullArg() Arg { return spacebars.Null() }

func PathArg(path string) Arg { return spacebars.Ref(path) }

func ExprArg(path string, args ...Arg) Arg { return spacebars.Sub(path, args...) }
