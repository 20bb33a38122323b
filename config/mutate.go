package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joshuapare/sjsonkit/symtab"
)

// ErrUnsupportedValue is returned by Set for Go values it cannot store.
var ErrUnsupportedValue = errors.New("config: unsupported value type")

// Add appends a new Undefined field named key. A node that is not an object
// is turned into an empty object first. Duplicate names are not checked;
// use GetOrCreate for that.
func (h Handle) Add(key string) Handle {
	if !h.Valid() {
		return Handle{}
	}
	return h.addSymbol(h.store.strings.Intern(key))
}

func (h Handle) addSymbol(sym symtab.Symbol) Handle {
	if !h.Valid() {
		return Handle{}
	}
	h.MakeObject()
	idx := h.store.alloc(sym)
	h.store.link(h.idx, idx)
	return h.at(idx)
}

// GetOrCreate returns the field named key, adding it if absent.
func (h Handle) GetOrCreate(key string) Handle {
	if c := h.Find(key); c.Valid() {
		return c
	}
	return h.Add(key)
}

// GetOrCreateTag is GetOrCreate with a pre-interned name.
func (h Handle) GetOrCreateTag(tag Tag) Handle {
	if c := h.FindTag(tag); c.Valid() {
		return c
	}
	return h.addSymbol(symtab.Symbol(tag))
}

// Remove unlinks child from h and tombstones its subtree.
// Returns false if child is not a child of h.
func (h Handle) Remove(child Handle) bool {
	if !h.Valid() || !child.Valid() || child.store != h.store || child.idx == h.idx {
		return false
	}
	s := h.store
	n := &s.nodes[h.idx]
	if !n.kind.IsContainer() {
		return false
	}

	prev := uint32(none)
	for c := n.child; c != none; prev, c = c, s.nodes[c].sibling {
		if c != child.idx {
			continue
		}
		next := s.nodes[c].sibling
		if prev == none {
			n.child = next
		} else {
			s.nodes[prev].sibling = next
		}
		s.nodes[c].sibling = none
		s.setCount(h.idx, s.count(h.idx)-1)
		s.bury(c)
		return true
	}
	return false
}

// RemoveKey removes the first field named key.
func (h Handle) RemoveKey(key string) bool {
	return h.Remove(h.Find(key))
}

// SetNull makes h an explicit null.
func (h Handle) SetNull() Handle {
	if h.Valid() {
		h.store.retype(h.idx, Nil, nil)
	}
	return h
}

// SetBool stores v.
func (h Handle) SetBool(v bool) Handle {
	if h.Valid() {
		k := False
		if v {
			k = True
		}
		h.store.retype(h.idx, k, boolPayload(v))
	}
	return h
}

// SetNumber stores v. NaN is kept and written as null.
func (h Handle) SetNumber(v float64) Handle {
	if h.Valid() {
		h.store.retype(h.idx, Number, numberPayload(v))
	}
	return h
}

// SetString interns v and stores it.
func (h Handle) SetString(v string) Handle {
	if h.Valid() {
		sym := h.store.strings.Intern(v)
		h.store.retype(h.idx, String, stringPayload(sym))
	}
	return h
}

// SetRaw stores an opaque 64-bit value.
func (h Handle) SetRaw(v RawValue) Handle {
	if h.Valid() {
		h.store.retype(h.idx, Raw, rawPayload(v))
	}
	return h
}

// SetTime stores t as Unix seconds, with sub-second precision in the fraction.
func (h Handle) SetTime(t time.Time) Handle {
	return h.SetNumber(float64(t.UnixNano()) / float64(time.Second))
}

// Set stores a Go scalar in the field named key, creating it if needed.
// Supported: nil, bool, signed and unsigned integers, float32, float64,
// string, RawValue and time.Time.
func (h Handle) Set(key string, v any) (Handle, error) {
	if !h.Valid() {
		return Handle{}, nil
	}
	c := h.GetOrCreate(key)
	if err := c.SetValue(v); err != nil {
		return c, fmt.Errorf("set %q: %w", key, err)
	}
	return c, nil
}

// SetValue stores a Go scalar in h. See Set for the supported types.
func (h Handle) SetValue(v any) error {
	switch x := v.(type) {
	case nil:
		h.SetNull()
	case bool:
		h.SetBool(x)
	case int:
		h.SetNumber(float64(x))
	case int8:
		h.SetNumber(float64(x))
	case int16:
		h.SetNumber(float64(x))
	case int32:
		h.SetNumber(float64(x))
	case int64:
		h.SetNumber(float64(x))
	case uint:
		h.SetNumber(float64(x))
	case uint8:
		h.SetNumber(float64(x))
	case uint16:
		h.SetNumber(float64(x))
	case uint32:
		h.SetNumber(float64(x))
	case uint64:
		h.SetNumber(float64(x))
	case float32:
		h.SetNumber(float64(x))
	case float64:
		h.SetNumber(x)
	case string:
		h.SetString(x)
	case RawValue:
		h.SetRaw(x)
	case time.Time:
		h.SetTime(x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

// SetObject returns the field named key as an object, creating or retyping it.
func (h Handle) SetObject(key string) Handle {
	return h.GetOrCreate(key).MakeObject()
}

// SetArray returns the field named key as an array, creating or retyping it.
func (h Handle) SetArray(key string) Handle {
	return h.GetOrCreate(key).MakeArray()
}

// MakeObject turns h into an empty object unless it already is one.
func (h Handle) MakeObject() Handle { return h.makeContainer(Object) }

// MakeArray turns h into an empty array unless it already is one.
func (h Handle) MakeArray() Handle { return h.makeContainer(Array) }

func (h Handle) makeContainer(k Kind) Handle {
	n := h.node()
	if n == nil {
		return Handle{}
	}
	if n.kind != k {
		h.store.retype(h.idx, k, countPayload(0))
	}
	return h
}

// Clear drops every child of a container.
func (h Handle) Clear() {
	n := h.node()
	if n == nil || !n.kind.IsContainer() {
		return
	}
	h.store.dropChildren(h.idx)
	h.store.setCount(h.idx, 0)
}
