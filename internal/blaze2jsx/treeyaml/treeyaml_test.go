package treeyaml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
)

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"hello", "hello"},
		{`"42"`, "42"},
		{"42", 42.0},
		{"1.5", 1.5},
		{"true", true},
		{"~", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Decode([]byte(tt.src))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTree(t *testing.T) {
	src := `
tag: div
attrs: {class: row, title: [a, {charref: {html: "&amp;", str: "&"}}]}
children:
  - "Hello, "
  - double: user.name
  - [x, y]
  - block: each
    args: [{path: item}, {path: in}, {path: items}]
    content: [{double: item}]
    else: none
  - inclusion: widget
    args: [{number: 1, name: size}, {expr: {path: fmt, args: [{string: s}]}}]
  - comment: note
  - escape: "{{"
`
	got, err := Decode([]byte(src))
	require.NoError(t, err)

	amp := htmljs.CharRef{HTML: "&amp;", Str: "&"}
	want := &htmljs.Tag{
		TagName: "DIV",
		Attrs:   htmljs.Attrs{"class": "row", "title": []any{"a", amp}},
		Children: []any{
			"Hello, ",
			spacebars.NewDouble(spacebars.Path{"user", "name"}),
			"x", "y",
			spacebars.NewBlock(
				spacebars.Path{"each"},
				[]spacebars.Arg{spacebars.Ref("item"), spacebars.Ref("in"), spacebars.Ref("items")},
				[]any{spacebars.NewDouble(spacebars.Path{"item"})},
				"none",
			),
			spacebars.NewInclusion(spacebars.Path{"widget"},
				spacebars.Number(1).Named("size"),
				spacebars.Sub("fmt", spacebars.String("s")),
			),
			htmljs.Comment{Value: "note"},
			spacebars.NewEscape("{{"),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAttrList(t *testing.T) {
	src := `
tag: input
attrs:
  - {type: text, $dynamic: [{disabled: ""}]}
  - double: extra
`
	got, err := Decode([]byte(src))
	require.NoError(t, err)
	tag, ok := got.(*htmljs.Tag)
	require.True(t, ok)
	require.Equal(t, "INPUT", tag.TagName)
	require.Empty(t, tag.Children)

	want := []any{
		htmljs.Attrs{"type": "text", htmljs.DynamicKey: []htmljs.Attrs{{"disabled": ""}}},
		spacebars.NewDouble(spacebars.Path{"extra"}),
	}
	if diff := cmp.Diff(want, tag.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeArgs(t *testing.T) {
	got, err := Decode([]byte(`{double: f, args: [{string: a}, {bool: false}, {null: ~}, {path: ../x, name: k}]}`))
	require.NoError(t, err)
	want := spacebars.NewDouble(spacebars.Path{"f"},
		spacebars.String("a"),
		spacebars.Bool(false),
		spacebars.Null(),
		spacebars.Ref("../x").Named("k"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]struct {
		src  string
		want string
	}{
		"unknown node":     {`{foo: 1}`, "path=<doc>: unknown node with keys [foo]"},
		"two kinds":        {`{tag: div, comment: x}`, `node has both "tag" and "comment"`},
		"children mapping": {`{tag: div, children: {a: 1}}`, "path=<doc>.children"},
		"nested":           {`{tag: div, children: [x, {bad: 1}]}`, "path=<doc>.children[1]"},
		"bad arg":          {`{double: f, args: [{path: a, string: b}]}`, "path=<doc>.args[0]: arg needs exactly one value key, got 2"},
		"unknown arg":      {`{double: f, args: [{regex: a}]}`, `unknown arg key "regex"`},
		"bad dynamic":      {`{tag: a, attrs: {$dynamic: x}}`, "path=<doc>.attrs.$dynamic"},
		"empty tag":        {`{tag: ""}`, "empty tag name"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src))
			require.ErrorIs(t, err, ErrInvalidTree)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDecodeCharRefRequiresBothFields(t *testing.T) {
	_, err := Decode([]byte(`{charref: {html: "&amp;"}}`))
	require.ErrorIs(t, err, htmljs.ErrMalformedCharRef)
	require.ErrorContains(t, err, "path=<doc>.charref")
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode([]byte("tag: [unclosed"))
	require.Error(t, err)
}
