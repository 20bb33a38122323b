package config

import "math"

// Equal reports whether a and b hold the same value. Objects are compared by
// field name regardless of link order; arrays element by element. NaN equals
// NaN. The handles may belong to different stores.
func Equal(a, b Handle) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case Undefined, Nil, True, False:
		return true
	case Number:
		x, y := a.AsNumber(0), b.AsNumber(0)
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	case String:
		return a.AsString("") == b.AsString("")
	case Raw:
		return a.AsRaw(0) == b.AsRaw(0)
	case Array:
		if a.Len() != b.Len() {
			return false
		}
		bc := b.At(0)
		for ac := range a.Children() {
			if !Equal(ac, bc) {
				return false
			}
			bc = bc.next()
		}
		return true
	case Object:
		if a.Len() != b.Len() {
			return false
		}
		for ac := range a.Children() {
			if !Equal(ac, b.Find(ac.Name())) {
				return false
			}
		}
		return true
	}
	return false
}

// next returns the following sibling of h, or the null handle.
func (h Handle) next() Handle {
	n := h.node()
	if n == nil || n.sibling == none {
		return Handle{}
	}
	return h.at(n.sibling)
}
