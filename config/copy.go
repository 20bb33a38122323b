package config

import "slices"

// Copy replaces the value at dst with a deep copy of src. The handles may
// belong to different stores; field order is kept whatever the ordering
// option of dst's store. An Undefined or null src handle leaves dst alone.
func Copy(dst, src Handle) {
	if !dst.Valid() || !src.Valid() || src.IsUndefined() {
		return
	}
	if dst.store == src.store {
		if dst.idx == src.idx {
			return
		}
		// dst may be an ancestor or descendant of src; copy through a snapshot.
		tmp := New(Undefined, src.store.opts)
		defer tmp.Close()
		copyValue(tmp.Root(), src)
		src = tmp.Root()
	}
	copyValue(dst, src)
}

func copyValue(dst, src Handle) {
	switch src.Kind() {
	case Nil:
		dst.SetNull()
	case True, False:
		dst.SetBool(src.Kind() == True)
	case Number:
		dst.SetNumber(src.AsNumber(0))
	case String:
		dst.SetString(src.AsString(""))
	case Raw:
		dst.SetRaw(src.AsRaw(0))
	case Array:
		dst.MakeArray()
		dst.Clear()
		for c := range src.Children() {
			if !c.IsUndefined() {
				copyValue(dst.Push(), c)
			}
		}
	case Object:
		dst.MakeObject()
		dst.Clear()
		fields := slices.Collect(src.Children())
		if !dst.store.opts.PreserveOrder {
			// Add prepends; feed it back to front.
			slices.Reverse(fields)
		}
		for _, c := range fields {
			if !c.IsUndefined() {
				copyValue(dst.Add(c.Name()), c)
			}
		}
	}
}
