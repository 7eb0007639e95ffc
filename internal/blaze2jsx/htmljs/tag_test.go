package htmljs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetTag(t *testing.T) {
	r := NewRegistry()
	foo := r.GetTag("foo")
	require.Same(t, foo, r.GetTag("FOO"))
	require.Same(t, foo, r.GetTag("Foo"))

	x := foo.New()
	require.Equal(t, "FOO", x.TagName)
	require.Nil(t, x.Attrs)
	require.Empty(t, x.Children)
	require.NotNil(t, x.Children)

	require.True(t, foo.Is(x))
	require.True(t, IsTag(x))
	require.False(t, foo.Is(r.GetTag("p").New()))
	require.False(t, IsTag("FOO"))
	require.False(t, IsTag((*Tag)(nil)))
}

func TestEnsureTag(t *testing.T) {
	r := NewRegistry()
	_, ok := r.EnsureTag("Bar")
	require.False(t, ok)
	_, ok = r.EnsureTag("bar")
	require.False(t, ok, "EnsureTag must not register")

	bar := r.GetTag("bar")
	require.Equal(t, "BAR", bar.New().TagName)
	got, ok := r.EnsureTag("Bar")
	require.True(t, ok)
	require.Same(t, bar, got)
}

func TestDefaultRegistryKnowsHTMLElements(t *testing.T) {
	div, ok := EnsureTag("div")
	require.True(t, ok)
	require.Same(t, div, GetTag("DIV"))
	require.Equal(t, "DIV", div.Name())
}

func TestConstruction(t *testing.T) {
	r := NewRegistry()
	A, B, C := r.GetTag("A"), r.GetTag("B"), r.GetTag("C")

	a := A.New(0, B.New(Attrs{"q": 0}, C.New(A.New(B.New(Attrs{})), "foo")))
	want := &Tag{
		TagName: "A",
		Children: []any{
			0,
			&Tag{
				TagName: "B",
				Attrs:   Attrs{"q": 0},
				Children: []any{
					&Tag{
						TagName: "C",
						Children: []any{
							&Tag{
								TagName:  "A",
								Children: []any{&Tag{TagName: "B", Attrs: Attrs{}, Children: []any{}}},
							},
							"foo",
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("construction mismatch (-want +got):\n%s", diff)
	}

	inner := a.Children[1].(*Tag).Children[0].(*Tag).Children[0].(*Tag).Children[0].(*Tag)
	require.NotNil(t, inner.Attrs, "explicit empty attrs must not collapse to nil")
	require.Empty(t, inner.Attrs)

	t.Run("only the first map is attributes", func(t *testing.T) {
		a2 := A.New(Attrs{"m": 1}, Attrs{"n": 2}, B.New(), Attrs{"o": 3}, "foo")
		require.Equal(t, Attrs{"m": 1}, a2.Attrs)
		require.Len(t, a2.Children, 4)
		require.Equal(t, Attrs{"n": 2}, a2.Children[0])
		require.True(t, B.Is(a2.Children[1]))
		require.Equal(t, Attrs{"o": 3}, a2.Children[2])
		require.Equal(t, "foo", a2.Children[3])
	})

	t.Run("attributes alone leave no children", func(t *testing.T) {
		require.Empty(t, A.New(Attrs{"x": 1}).Children)
	})

	t.Run("other values are children", func(t *testing.T) {
		type opaque struct{}
		require.Len(t, A.New(&opaque{}).Children, 1)
		require.Len(t, A.New(time.Now()).Children, 1)
	})
}

func TestConstructionSplicesOneLevel(t *testing.T) {
	r := NewRegistry()
	A, B := r.GetTag("a"), r.GetTag("b")

	got := A.New([]any{"x", B.New()}, []*Tag{B.New()}, []any{[]any{"deep"}})
	require.Len(t, got.Children, 4)
	require.Equal(t, "x", got.Children[0])
	require.True(t, B.Is(got.Children[1]))
	require.True(t, B.Is(got.Children[2]))
	require.Equal(t, []any{"deep"}, got.Children[3])
}

func TestCharRef(t *testing.T) {
	ref, err := NewCharRef(Attrs{"html": "&amp;", "str": "&"})
	require.NoError(t, err)
	require.Equal(t, CharRef{HTML: "&amp;", Str: "&"}, ref)

	_, err = NewCharRef(Attrs{"html": "&amp;"})
	require.True(t, errors.Is(err, ErrMalformedCharRef))
	_, err = NewCharRef(Attrs{"str": "&"})
	require.ErrorIs(t, err, ErrMalformedCharRef)
}

func TestAttrList(t *testing.T) {
	require.Nil(t, (&Tag{}).AttrList())
	require.Nil(t, (&Tag{Attrs: Attrs(nil)}).AttrList())
	require.Equal(t, []any{Attrs{"a": "b"}}, (&Tag{Attrs: Attrs{"a": "b"}}).AttrList())
	mixed := []any{Attrs{"a": "b"}, "spread"}
	require.Equal(t, mixed, (&Tag{Attrs: mixed}).AttrList())
}
