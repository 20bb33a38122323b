// Package symtab implements a string interner backed by a single packed byte region.
//
// # Layout
//
// A Table owns one []byte laid out as:
//
//	+--------------------+------------------------+-----------------------------+
//	| header (32 bytes)  | hash index (slots * w) | arena of NUL-terminated     |
//	|                    | w = 2 or 4 bytes       | strings                     |
//	+--------------------+------------------------+-----------------------------+
//
// The header is little-endian:
//
//	0x00  u64  allocated bytes (== len(region))
//	0x08  u64  arena bytes in use
//	0x10  u32  live string count
//	0x14  u32  hash slot count
//	0x18  u32  wide slots flag (0 = 16-bit, 1 = 32-bit)
//	0x1C  u32  reserved
//
// A string's byte offset inside the arena is its Symbol. Offset 0 holds a
// single NUL so that Symbol 0 always resolves to "" and a zero hash slot can
// mean "empty". The index uses open addressing with linear probing; slot
// width is 16 bits while the arena fits under 64 KiB and is only changed by
// Grow or Pack.
//
// # Growth
//
// Insert never grows the region. When the load factor would drop under
// the growth factor, or the arena has no room, it returns Full and ErrFull.
// The caller grows and retries; Intern wraps that loop:
//
//	sym := t.Intern("name")
//
// Grow and Pack rebuild the index by rescanning the arena, so Symbols stay
// valid across both.
//
// # Removal
//
// Remove zero-fills the string bytes and records the range in a free list
// sorted by length. Later inserts take the first range that fits and put the
// unused tail back on the list.
//
// # Concurrency
//
// Table is not safe for concurrent use. Shared wraps a Table with a
// sync.RWMutex, and the package-level Encode/Decode/Compress functions
// operate on a process-wide Shared that is allocated on first use.
package symtab
