package visitor

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
)

func TestKindOf(t *testing.T) {
	p := htmljs.NewRegistry().GetTag("p")
	tests := []struct {
		node any
		want Kind
	}{
		{nil, Null},
		{(*htmljs.Tag)(nil), Null},
		{[]any{1}, Array},
		{[]*htmljs.Tag{p.New()}, Array},
		{p.New(), Tag},
		{htmljs.CharRef{HTML: "&amp;", Str: "&"}, CharRef},
		{htmljs.Comment{Value: "c"}, Comment},
		{htmljs.Raw{Value: "<b>"}, Raw},
		{htmljs.Func(func() any { return nil }), Function},
		{func() {}, Function},
		{spacebars.NewDouble(spacebars.Path{"x"}), Object},
		{htmljs.Attrs{"n": 2}, Object},
		{"text", Primitive},
		{0, Primitive},
		{false, Primitive},
		{3.5, Primitive},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, KindOf(tt.node), "%#v", tt.node)
	}
}

func TestBaseMapsArraysOnly(t *testing.T) {
	v := Create(Table{
		Primitive: func(_ *Visitor, node any) (any, error) {
			if s, ok := node.(string); ok {
				return strings.ToUpper(s), nil
			}
			return node, nil
		},
	})

	got, err := v.Visit([]any{"a", []any{"b"}, 1})
	require.NoError(t, err)
	if diff := cmp.Diff([]any{"A", []any{"B"}, 1}, got); diff != "" {
		t.Errorf("Visit() mismatch (-want +got):\n%s", diff)
	}

	tag := htmljs.NewRegistry().GetTag("p").New("child")
	got, err = v.Visit(tag)
	require.NoError(t, err)
	require.Same(t, tag, got, "base must not walk tag children")
	require.Equal(t, "child", tag.Children[0])
}

func TestExtendOverrideWins(t *testing.T) {
	constant := func(s string) Handler {
		return func(*Visitor, any) (any, error) { return s, nil }
	}
	base := Table{Null: constant("base-null"), Primitive: constant("base-prim")}
	override := Table{Primitive: constant("override-prim")}

	merged := Extend(base, override)
	v := New(merged)

	got, err := v.Visit(nil)
	require.NoError(t, err)
	require.Equal(t, "base-null", got)
	got, err = v.Visit("x")
	require.NoError(t, err)
	require.Equal(t, "override-prim", got)

	// inputs are untouched
	got, err = New(base).Visit("x")
	require.NoError(t, err)
	require.Equal(t, "base-prim", got)
}

func TestMissingHandler(t *testing.T) {
	_, err := New(Table{}).Visit("x")
	require.ErrorIs(t, err, ErrNoHandler)
}

// Handlers recurse through the dispatcher they are handed, so one table can
// serve visitors with different settings.
func TestTableSharedAcrossVisitors(t *testing.T) {
	table := Extend(Base(), Table{
		Tag: func(v *Visitor, node any) (any, error) {
			return v.Visit(node.(*htmljs.Tag).Children)
		},
	})
	tags := htmljs.NewRegistry()
	deep := tags.GetTag("p").New(tags.GetTag("p").New(tags.GetTag("p").New("leaf")))

	_, err := New(table, WithMaxDepth(3)).Visit(deep)
	require.ErrorIs(t, err, ErrMaxDepth)

	got, err := New(table).Visit(deep)
	require.NoError(t, err)
	require.Equal(t, []any{[]any{[]any{"leaf"}}}, got)
}

func TestDepthGuard(t *testing.T) {
	var node any = "leaf"
	for i := 0; i < 200; i++ {
		node = []any{node}
	}
	v := Create(nil, WithMaxDepth(100))
	_, err := v.Visit(node)
	require.ErrorIs(t, err, ErrMaxDepth)

	// depth unwinds after a failure, so the visitor stays usable
	got, err := v.Visit([]any{"ok"})
	require.NoError(t, err)
	require.Equal(t, []any{"ok"}, got)
}

func TestDescendSharesTheLimit(t *testing.T) {
	v := Create(nil, WithMaxDepth(3))
	var leaves []func()
	for i := 0; i < 3; i++ {
		leave, err := v.Descend()
		require.NoError(t, err)
		leaves = append(leaves, leave)
	}
	_, err := v.Descend()
	require.ErrorIs(t, err, ErrMaxDepth)
	_, err = v.Visit("x")
	require.ErrorIs(t, err, ErrMaxDepth)

	for _, leave := range leaves {
		leave()
	}
	got, err := v.Visit([]any{[]any{"x"}})
	require.NoError(t, err)
	require.Equal(t, []any{[]any{"x"}}, got)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Tag", Tag.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
}
