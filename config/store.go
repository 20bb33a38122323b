package config

import (
	"github.com/joshuapare/sjsonkit/symtab"
)

const (
	// tombstone marks a node that is no longer reachable from the root.
	tombstone = ^uint32(0)

	// none is the child/sibling value meaning "no link". Index 0 is the root,
	// which is never anyone's child or sibling.
	none = 0

	defaultNodeCapacity  = 16
	defaultTableSize     = 1024
	defaultAverageLength = 12
)

// Options controls tree-wide behavior.
type Options struct {
	// PreserveOrder appends object fields instead of prepending them, so
	// iteration matches insertion order.
	PreserveOrder bool
}

// node is one arena entry. See the package documentation.
type node struct {
	name    symtab.Symbol
	kind    Kind
	self    uint32
	child   uint32
	sibling uint32
	value   payload
}

// Store owns a node arena and the interner for its names and strings.
// A Store is not safe for concurrent use.
type Store struct {
	nodes   []node
	strings symtab.Interner
	owned   *symtab.Table
	opts    Options
}

// Stats describes the arena and interner of a Store.
type Stats struct {
	Nodes      int // arena slots, tombstones included
	Live       int // nodes reachable from the root
	Tombstones int
	Strings    symtab.Stats
}

// New creates a Store whose root has the given kind and which owns a private
// string table.
func New(root Kind, opts Options) *Store {
	t := symtab.New(defaultTableSize, defaultAverageLength)
	s := newStore(root, opts, t)
	s.owned = t
	return s
}

// NewWithInterner creates a Store that interns into in. The Store never
// releases in; a symtab.Shared may be passed to share names across stores.
func NewWithInterner(root Kind, opts Options, in symtab.Interner) *Store {
	return newStore(root, opts, in)
}

func newStore(root Kind, opts Options, in symtab.Interner) *Store {
	s := &Store{
		nodes:   make([]node, 1, defaultNodeCapacity),
		strings: in,
		opts:    opts,
	}
	s.nodes[0] = node{kind: root, self: 0, value: emptyPayload(root)}
	return s
}

// emptyPayload returns the zero payload for a freshly retyped node.
func emptyPayload(k Kind) payload {
	switch k {
	case Array, Object:
		return countPayload(0)
	case Number:
		return numberPayload(0)
	case String:
		return stringPayload(symtab.Empty)
	case True:
		return boolPayload(true)
	case False:
		return boolPayload(false)
	case Raw:
		return rawPayload(0)
	default:
		return nil
	}
}

// Root returns the handle of node 0.
func (s *Store) Root() Handle {
	if s == nil || len(s.nodes) == 0 {
		return Handle{}
	}
	return Handle{store: s, idx: 0}
}

// Handle re-derives a handle from a node index, as returned by Handle.Index.
// The result is null if the index does not name a live node.
func (s *Store) Handle(index uint32) Handle {
	h := Handle{store: s, idx: index}
	if !h.Valid() {
		return Handle{}
	}
	return h
}

// Close releases the nodes and the owned string table. Every handle into the
// Store becomes null. A borrowed interner is left untouched.
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.nodes = nil
	s.strings = nil
	s.owned = nil
}

// Options returns the tree-wide options.
func (s *Store) Options() Options { return s.opts }

// SetOptions replaces the tree-wide options. Existing children keep their order.
func (s *Store) SetOptions(opts Options) { s.opts = opts }

// Interner returns the interner names and strings are stored in.
func (s *Store) Interner() symtab.Interner { return s.strings }

// Tag interns key once so later FindTag/GetOrCreateTag calls skip hashing.
func (s *Store) Tag(key string) Tag {
	if s == nil || s.strings == nil {
		return Tag(symtab.Empty)
	}
	return Tag(s.strings.Intern(key))
}

// Pack shrinks the owned string table and returns its new size. Stores using
// a borrowed interner return 0; the owner of that interner packs it.
func (s *Store) Pack() int {
	if s == nil || s.owned == nil {
		return 0
	}
	return s.owned.Pack()
}

// Stats counts live and tombstoned nodes.
func (s *Store) Stats() Stats {
	var st Stats
	if s == nil {
		return st
	}
	st.Nodes = len(s.nodes)
	for i := range s.nodes {
		if s.nodes[i].self == tombstone {
			st.Tombstones++
		}
	}
	st.Live = st.Nodes - st.Tombstones
	if sp, ok := s.strings.(interface{ Stats() symtab.Stats }); ok {
		st.Strings = sp.Stats()
	}
	return st
}

// alloc appends a fresh Undefined node and returns its index. Pointers into
// s.nodes taken before the call are invalid afterwards.
func (s *Store) alloc(name symtab.Symbol) uint32 {
	idx := uint32(len(s.nodes))
	s.nodes = append(s.nodes, node{name: name, kind: Undefined, self: idx})
	return idx
}

// bury tombstones the subtree rooted at idx.
func (s *Store) bury(idx uint32) {
	stack := []uint32{idx}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &s.nodes[i]
		n.self = tombstone
		for c := n.child; c != none; c = s.nodes[c].sibling {
			stack = append(stack, c)
		}
	}
}

// dropChildren tombstones every child of idx and resets its child link.
func (s *Store) dropChildren(idx uint32) {
	for c := s.nodes[idx].child; c != none; {
		next := s.nodes[c].sibling
		s.bury(c)
		c = next
	}
	s.nodes[idx].child = none
}

// retype overwrites the kind and payload of idx, dropping any children.
func (s *Store) retype(idx uint32, k Kind, v payload) {
	s.dropChildren(idx)
	n := &s.nodes[idx]
	n.kind = k
	n.value = v
}

// link attaches child to parent. Arrays and PreserveOrder stores append;
// otherwise the child becomes the new head.
func (s *Store) link(parent, child uint32) {
	p := &s.nodes[parent]
	if (p.kind == Object && !s.opts.PreserveOrder) || p.child == none {
		s.nodes[child].sibling = p.child
		p.child = child
	} else {
		last := p.child
		for s.nodes[last].sibling != none {
			last = s.nodes[last].sibling
		}
		s.nodes[last].sibling = child
	}
	p.value = countPayload(s.count(parent) + 1)
}

// count returns the child count of a container, 0 otherwise.
func (s *Store) count(idx uint32) uint32 {
	if c, ok := s.nodes[idx].value.(countPayload); ok {
		return uint32(c)
	}
	return 0
}

func (s *Store) setCount(idx, n uint32) {
	s.nodes[idx].value = countPayload(n)
}
