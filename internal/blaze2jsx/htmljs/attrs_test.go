package htmljs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateAttributes(t *testing.T) {
	abc := Thunk(func() any { return "abc" })
	def := Thunk(func() any { return "def" })

	tests := []struct {
		name  string
		attrs Attrs
		want  Attrs
	}{
		{"thunk", Attrs{"x": abc}, Attrs{"x": "abc"}},
		{"empty dynamic", Attrs{"x": abc, DynamicKey: []Attrs{}}, Attrs{"x": "abc"}},
		{"dynamic overrides static", Attrs{"x": abc, DynamicKey: []Attrs{{"x": def}}}, Attrs{"x": "def"}},
		{"later dynamic wins", Attrs{DynamicKey: []any{Attrs{"x": "1", "y": "y"}, Attrs{"x": "2"}}}, Attrs{"x": "2", "y": "y"}},
		{"plain values pass", Attrs{"a": "b", "n": 1, "frag": []any{"p", "q"}}, Attrs{"a": "b", "n": 1, "frag": []any{"p", "q"}}},
		{"nested dynamic", Attrs{DynamicKey: []Attrs{{DynamicKey: []Attrs{{"z": def}}}}}, Attrs{"z": "def"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateAttributes(tt.attrs)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateAttributesRunsThunksEveryCall(t *testing.T) {
	calls := 0
	attrs := Attrs{"n": Thunk(func() any { calls++; return calls })}

	first, err := EvaluateAttributes(attrs)
	require.NoError(t, err)
	second, err := EvaluateAttributes(attrs)
	require.NoError(t, err)

	require.Equal(t, 1, first["n"])
	require.Equal(t, 2, second["n"])
}

func TestEvaluateAttributesNil(t *testing.T) {
	got, err := EvaluateAttributes(nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestEvaluateAttributesBadDynamic(t *testing.T) {
	_, err := EvaluateAttributes(Attrs{DynamicKey: "nope"})
	require.ErrorIs(t, err, ErrBadDynamicAttrs)

	_, err = EvaluateAttributes(Attrs{DynamicKey: []any{Attrs{}, 3}})
	require.ErrorIs(t, err, ErrBadDynamicAttrs)
}
