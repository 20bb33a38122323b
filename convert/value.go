package convert

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joshuapare/sjsonkit/config"
)

// FromValue stores a Go value at h. Maps become objects with their keys in
// sorted order, slices become arrays and scalars go through
// config.Handle.SetValue.
func FromValue(h config.Handle, v any) error {
	return fromValue(h, v, 0)
}

func fromValue(h config.Handle, v any, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	switch x := v.(type) {
	case map[string]any:
		h.MakeObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := fromValue(h.Add(k), x[k], depth+1); err != nil {
				return err
			}
		}
	case map[string]string:
		h.MakeObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			h.Add(k).SetString(x[k])
		}
	case []any:
		h.MakeArray()
		for _, el := range x {
			if err := fromValue(h.Push(), el, depth+1); err != nil {
				return err
			}
		}
	case []map[string]any:
		h.MakeArray()
		for _, el := range x {
			if err := fromValue(h.Push(), el, depth+1); err != nil {
				return err
			}
		}
	case []string:
		h.MakeArray()
		for _, el := range x {
			h.PushString(el)
		}
	case []float64:
		h.MakeArray()
		for _, el := range x {
			h.PushNumber(el)
		}
	case []byte:
		h.SetString(string(x))
	default:
		if err := h.SetValue(v); err != nil {
			return fmt.Errorf("convert: %w", err)
		}
	}
	return nil
}

// ToValue returns h as a Go value: map[string]any for objects, []any for
// arrays, float64, string, bool, nil and config.RawValue for raw data.
// Undefined fields are left out.
func ToValue(h config.Handle) any {
	switch h.Kind() {
	case config.True:
		return true
	case config.False:
		return false
	case config.Number:
		return h.AsNumber(0)
	case config.String:
		return h.AsString("")
	case config.Raw:
		return h.AsRaw(0)
	case config.Array:
		out := make([]any, 0, h.Len())
		for c := range h.Children() {
			if c.IsUndefined() {
				continue
			}
			out = append(out, ToValue(c))
		}
		return out
	case config.Object:
		out := make(map[string]any, h.Len())
		for c := range h.Children() {
			if c.IsUndefined() {
				continue
			}
			if _, dup := out[c.Name()]; dup {
				continue // first in iteration order wins, as with Find
			}
			out[c.Name()] = ToValue(c)
		}
		return out
	default:
		return nil
	}
}
