// Package config implements a dynamically typed document tree (objects,
// arrays and scalars) stored in a flat node arena.
//
// # Storage
//
// A Store holds a growable slice of nodes. Nodes refer to each other by
// index: a container points at its first child and every child points at its
// next sibling, with 0 meaning "none". Index 0 is always the root. Node names
// and string values are symtab Symbols from an interner the Store owns, or
// from a symtab.Shared passed to NewWithInterner.
//
// # Handles
//
// A Handle is a {store, index} pair. It is cheap to copy and stays valid while
// the tree grows, because nodes are only appended or unlinked. Handle{} is the
// null handle; every accessor on it returns a zero value and every mutation
// is a no-op.
//
// # Removal
//
// Removing, popping or retyping a container unlinks the affected subtree and
// marks each of its nodes as a tombstone. Tombstoned nodes keep their slot in
// the arena until Store.Compact renumbers the live nodes. Compact invalidates
// every Handle obtained before the call.
//
// # Ordering
//
// Object fields are prepended by default, so iteration yields them in reverse
// insertion order. Options.PreserveOrder appends instead. Array elements are
// always appended.
//
// # Usage
//
//	s := config.New(config.Object, config.Options{PreserveOrder: true})
//	defer s.Close()
//
//	root := s.Root()
//	root.GetOrCreate("name").SetString("example")
//	ports := root.SetArray("ports")
//	ports.PushNumber(80)
//	ports.PushNumber(443)
//
//	fmt.Println(root.Lookup("ports[1]").AsNumber(0)) // 443
package config
