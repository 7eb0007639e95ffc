package htmljs

import (
	"errors"
	"fmt"
)

// Attrs maps attribute names to values. A value is a string, a []any of
// fragments, a Thunk, or a control node. The DynamicKey entry holds further
// maps that are merged over the static ones.
type Attrs map[string]any

// Thunk is a lazily computed attribute value.
type Thunk func() any

const DynamicKey = "$dynamic"

var ErrBadDynamicAttrs = errors.New("htmljs: " + DynamicKey + " must be a sequence of attribute maps")

// DynamicAttrs returns the maps stored under DynamicKey, in merge order.
func DynamicAttrs(v any) ([]Attrs, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case []Attrs:
		return d, nil
	case []any:
		out := make([]Attrs, 0, len(d))
		for i, item := range d {
			m, ok := item.(Attrs)
			if !ok {
				return nil, fmt.Errorf("%w: item %d is %T", ErrBadDynamicAttrs, i, item)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrBadDynamicAttrs, v)
	}
}

// EvaluateAttributes resolves thunks and merges DynamicKey maps into one flat
// map. Each dynamic map overrides the static map and every dynamic map before
// it. Thunks run once per call; nothing is cached.
func EvaluateAttributes(attrs Attrs) (Attrs, error) {
	if attrs == nil {
		return nil, nil
	}
	out := make(Attrs, len(attrs))
	for k, v := range attrs {
		if k == DynamicKey {
			continue
		}
		out[k] = force(v)
	}

	dynamic, err := DynamicAttrs(attrs[DynamicKey])
	if err != nil {
		return nil, err
	}
	for _, d := range dynamic {
		ev, err := EvaluateAttributes(d)
		if err != nil {
			return nil, err
		}
		for k, v := range ev {
			out[k] = v
		}
	}
	return out, nil
}

func force(v any) any {
	switch f := v.(type) {
	case Thunk:
		return f()
	case func() any:
		return f()
	}
	return v
}
