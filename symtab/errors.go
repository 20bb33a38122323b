package symtab

import "errors"

var (
	// ErrFull indicates the table needs to grow before the string can be inserted.
	ErrFull = errors.New("symtab: table full")

	// ErrShrink indicates Grow was asked for fewer bytes than the table holds.
	ErrShrink = errors.New("symtab: grow size smaller than current region")

	// ErrTooLarge indicates the region cannot grow further: symbols are
	// 31-bit arena offsets.
	ErrTooLarge = errors.New("symtab: region exceeds symbol range")
)
