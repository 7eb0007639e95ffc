package gomponents

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/htmljs"
	"github.com/kilianc/blaze2jsx/internal/blaze2jsx/spacebars"
)

func TestToHTML(t *testing.T) {
	amp, err := htmljs.NewCharRef(htmljs.Attrs{"html": "&amp;", "str": "&"})
	require.NoError(t, err)
	span, div, br := htmljs.GetTag("span"), htmljs.GetTag("div"), htmljs.GetTag("br")

	tests := []struct {
		name string
		node any
		want string
	}{
		{"charref", amp, "&amp;"},
		{"false", false, "false"},
		{"null", nil, ""},
		{
			"fragment attribute",
			span.New(htmljs.Attrs{"title": []any{"M", amp, "Ms"}}, "M", amp, "M candies"),
			`<span title="M&amp;Ms">M&amp;M candies</span>`,
		},
		{"void element", br.New(), "<br>"},
		{"escaped text", div.New("a < b"), "<div>a &lt; b</div>"},
		{"comment and raw", div.New(htmljs.Comment{Value: " c "}, htmljs.Raw{Value: "<i>x</i>"}), "<div><!-- c --><i>x</i></div>"},
		{
			"evaluated attributes",
			div.New(htmljs.Attrs{
				"id":               htmljs.Thunk(func() any { return "a" }),
				"skip":             nil,
				htmljs.DynamicKey: []htmljs.Attrs{{"class": "x"}},
			}),
			`<div class="x" id="a"></div>`,
		},
		{
			"attribute list",
			&htmljs.Tag{TagName: "DIV", Attrs: []any{htmljs.Attrs{"a": "1"}, htmljs.Attrs{"a": "2", "b": 3}}},
			`<div a="2" b="3"></div>`,
		},
		{"sequence", []any{"x", span.New()}, "x<span></span>"},
		{"svg casing", &htmljs.Tag{TagName: "LINEARGRADIENT"}, "<linearGradient></linearGradient>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.node)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestToHTMLRejectsDirectives(t *testing.T) {
	div := htmljs.GetTag("div")
	for name, node := range map[string]any{
		"directive child":    div.New(spacebars.NewDouble(spacebars.Path{"x"})),
		"directive spread":   &htmljs.Tag{TagName: "DIV", Attrs: []any{spacebars.NewDouble(spacebars.Path{"x"})}},
		"directive value":    div.New(htmljs.Attrs{"x": spacebars.NewDouble(spacebars.Path{"x"})}),
		"deferred function":  div.New(htmljs.Func(func() any { return "x" })),
		"plain function arg": div.New(htmljs.Attrs{"f": func() {}}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ToHTML(node)
			require.ErrorIs(t, err, ErrNotRenderable)
		})
	}
}
