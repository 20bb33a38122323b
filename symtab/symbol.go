package symtab

import "strings"

// Symbol names an interned string. It is the string's byte offset in the arena.
type Symbol int32

const (
	// Empty is the symbol of the empty string. It is never stored twice.
	Empty Symbol = 0

	// Full is returned by Insert when the table must grow first.
	Full Symbol = -1

	// NotFound is returned by Find on a miss.
	NotFound Symbol = -2
)

// Valid reports whether s names a string (Empty included).
func (s Symbol) Valid() bool { return s >= 0 }

// Interner maps strings to stable symbols and back.
//
// Both *Table and *Shared implement it, so a config store can own a private
// table or borrow a process-wide one.
type Interner interface {
	Intern(s string) Symbol
	Find(s string) Symbol
	Resolve(sym Symbol) string
	Pack() int
}

var (
	_ Interner = (*Table)(nil)
	_ Interner = (*Shared)(nil)
)

// hashString computes the arena hash of s.
func hashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h ^= (h << 5) + (h >> 2) + uint32(s[i])
	}
	return h
}

// hashBytes hashes a NUL-terminated run starting at b[0] and returns the
// hash and the run length.
func hashBytes(b []byte) (uint32, int) {
	var h uint32
	n := 0
	for ; n < len(b) && b[n] != 0; n++ {
		h ^= (h << 5) + (h >> 2) + uint32(b[n])
	}
	return h, n
}

// clip cuts s at its first NUL byte, since the arena stores C-style strings.
func clip(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
