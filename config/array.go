package config

import (
	"slices"

	"github.com/joshuapare/sjsonkit/symtab"
)

// Push appends an Undefined element. A node that is not an array is turned
// into an empty array first.
func (h Handle) Push() Handle {
	if !h.Valid() {
		return Handle{}
	}
	h.MakeArray()
	idx := h.store.alloc(symtab.Empty)
	h.store.link(h.idx, idx)
	return h.at(idx)
}

// PushBool appends a boolean element.
func (h Handle) PushBool(v bool) Handle { return h.Push().SetBool(v) }

// PushNumber appends a number element.
func (h Handle) PushNumber(v float64) Handle { return h.Push().SetNumber(v) }

// PushString appends a string element.
func (h Handle) PushString(v string) Handle { return h.Push().SetString(v) }

// PushRaw appends a raw element.
func (h Handle) PushRaw(v RawValue) Handle { return h.Push().SetRaw(v) }

// PushNull appends a null element.
func (h Handle) PushNull() Handle { return h.Push().SetNull() }

// PushObject appends an empty object element.
func (h Handle) PushObject() Handle { return h.Push().MakeObject() }

// PushArray appends an empty array element.
func (h Handle) PushArray() Handle { return h.Push().MakeArray() }

// InsertAt splices an Undefined element so that it ends up at position i.
// Positions past the end append.
func (h Handle) InsertAt(i int) Handle {
	if !h.Valid() {
		return Handle{}
	}
	h.MakeArray()
	s := h.store
	idx := s.alloc(symtab.Empty)

	p := &s.nodes[h.idx]
	if i <= 0 || p.child == none {
		s.nodes[idx].sibling = p.child
		p.child = idx
	} else {
		prev := p.child
		for ; i > 1 && s.nodes[prev].sibling != none; i-- {
			prev = s.nodes[prev].sibling
		}
		s.nodes[idx].sibling = s.nodes[prev].sibling
		s.nodes[prev].sibling = idx
	}
	s.setCount(h.idx, s.count(h.idx)+1)
	return h.at(idx)
}

// InsertBoolAt inserts a boolean at position i.
func (h Handle) InsertBoolAt(i int, v bool) Handle { return h.InsertAt(i).SetBool(v) }

// InsertNumberAt inserts a number at position i.
func (h Handle) InsertNumberAt(i int, v float64) Handle { return h.InsertAt(i).SetNumber(v) }

// InsertStringAt inserts a string at position i.
func (h Handle) InsertStringAt(i int, v string) Handle { return h.InsertAt(i).SetString(v) }

// InsertObjectAt inserts an empty object at position i.
func (h Handle) InsertObjectAt(i int) Handle { return h.InsertAt(i).MakeObject() }

// InsertArrayAt inserts an empty array at position i.
func (h Handle) InsertArrayAt(i int) Handle { return h.InsertAt(i).MakeArray() }

// Pop removes the last element of an array. Returns false when h is not an
// array or is empty.
func (h Handle) Pop() bool {
	n := h.node()
	if n == nil || n.kind != Array || n.child == none {
		return false
	}
	s := h.store

	prev, last := uint32(none), n.child
	for s.nodes[last].sibling != none {
		prev, last = last, s.nodes[last].sibling
	}
	if prev == none {
		n.child = none
	} else {
		s.nodes[prev].sibling = none
	}
	s.setCount(h.idx, s.count(h.idx)-1)
	s.bury(last)
	return true
}

// Sort reorders the children of a container with less, keeping equal
// elements in their current order. Returns false when there is nothing to sort.
func (h Handle) Sort(less func(a, b Handle) bool) bool {
	n := h.node()
	if n == nil || !n.kind.IsContainer() || n.child == none || less == nil {
		return false
	}
	s := h.store

	order := make([]uint32, 0, s.count(h.idx))
	for c := n.child; c != none; c = s.nodes[c].sibling {
		order = append(order, c)
	}
	slices.SortStableFunc(order, func(a, b uint32) int {
		switch {
		case less(h.at(a), h.at(b)):
			return -1
		case less(h.at(b), h.at(a)):
			return 1
		default:
			return 0
		}
	})

	s.nodes[h.idx].child = order[0]
	for i := 0; i < len(order)-1; i++ {
		s.nodes[order[i]].sibling = order[i+1]
	}
	s.nodes[order[len(order)-1]].sibling = none
	return true
}
