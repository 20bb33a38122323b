package config

import (
	"iter"
	"strconv"
	"strings"

	"github.com/joshuapare/sjsonkit/symtab"
)

// Handle references one node of a Store. The zero Handle is null.
type Handle struct {
	store *Store
	idx   uint32
}

// Tag is a pre-interned field name. Obtain one with Store.Tag.
type Tag symtab.Symbol

// Valid reports whether h names a live node.
func (h Handle) Valid() bool {
	return h.store != nil && int(h.idx) < len(h.store.nodes) && h.store.nodes[h.idx].self == h.idx
}

// node returns the node behind h, or nil for a null or stale handle.
// The pointer must not be kept across an allocation.
func (h Handle) node() *node {
	if !h.Valid() {
		return nil
	}
	return &h.store.nodes[h.idx]
}

func (h Handle) at(idx uint32) Handle { return Handle{store: h.store, idx: idx} }

// Store returns the owning Store, or nil for the null handle.
func (h Handle) Store() *Store { return h.store }

// Index returns the arena index of h. Store.Handle turns it back into a Handle.
func (h Handle) Index() uint32 { return h.idx }

// Kind returns the node kind. Null handles report Undefined.
func (h Handle) Kind() Kind {
	if n := h.node(); n != nil {
		return n.kind
	}
	return Undefined
}

// Name returns the field name, or "" for array elements and the root.
func (h Handle) Name() string {
	n := h.node()
	if n == nil {
		return ""
	}
	return h.store.strings.Resolve(n.name)
}

// Symbol returns the interned field name.
func (h Handle) Symbol() symtab.Symbol {
	if n := h.node(); n != nil {
		return n.name
	}
	return symtab.Empty
}

// Len returns the number of children of a container, 0 otherwise.
func (h Handle) Len() int {
	if !h.Valid() {
		return 0
	}
	return int(h.store.count(h.idx))
}

// IsNull reports whether h holds an explicit null.
func (h Handle) IsNull() bool { return h.Kind() == Nil }

// IsUndefined reports whether h is null or has never been assigned.
func (h Handle) IsUndefined() bool { return h.Kind() == Undefined }

// Children iterates the children of a container in link order.
func (h Handle) Children() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		n := h.node()
		if n == nil || !n.kind.IsContainer() {
			return
		}
		for c := n.child; c != none; {
			next := h.store.nodes[c].sibling
			if !yield(h.at(c)) {
				return
			}
			c = next
		}
	}
}

// Find returns the first child named key, or the null handle.
func (h Handle) Find(key string) Handle {
	if !h.Valid() {
		return Handle{}
	}
	sym := h.store.strings.Find(key)
	if sym == symtab.NotFound {
		return Handle{}
	}
	return h.findSymbol(sym)
}

// FindTag is Find with a pre-interned name.
func (h Handle) FindTag(tag Tag) Handle {
	return h.findSymbol(symtab.Symbol(tag))
}

func (h Handle) findSymbol(sym symtab.Symbol) Handle {
	n := h.node()
	if n == nil || !n.kind.IsContainer() {
		return Handle{}
	}
	for c := n.child; c != none; c = h.store.nodes[c].sibling {
		if h.store.nodes[c].name == sym {
			return h.at(c)
		}
	}
	return Handle{}
}

// Exists reports whether a child named key is present.
func (h Handle) Exists(key string) bool { return h.Find(key).Valid() }

// At returns the i-th child in link order, or the null handle.
func (h Handle) At(i int) Handle {
	n := h.node()
	if n == nil || !n.kind.IsContainer() || i < 0 {
		return Handle{}
	}
	c := n.child
	for ; c != none && i > 0; i-- {
		c = h.store.nodes[c].sibling
	}
	if c == none {
		return Handle{}
	}
	return h.at(c)
}

// Lookup walks a dotted path with optional [i] indices, e.g.
// "servers[0].ports[1]". Any miss yields the null handle.
func (h Handle) Lookup(path string) Handle {
	cur := h
	for _, part := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(part, "[")
		if key != "" {
			cur = cur.Find(key)
		}
		for rest != "" {
			num, tail, ok := strings.Cut(rest, "]")
			if !ok {
				return Handle{}
			}
			i, err := strconv.Atoi(num)
			if err != nil {
				return Handle{}
			}
			cur = cur.At(i)
			rest = strings.TrimPrefix(tail, "[")
		}
		if !cur.Valid() {
			return Handle{}
		}
	}
	return cur
}
