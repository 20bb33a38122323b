package sjson

import "github.com/joshuapare/sjsonkit/symtab"

// WriteOptions controls serialization.
type WriteOptions struct {
	// JSON emits strict JSON: quoted keys, ": " and commas between items.
	// SkipRootBraces and SameLinePrimitives are ignored in this mode.
	JSON bool

	// SkipRootBraces writes the fields of a root object without the
	// surrounding { }, one per line.
	SkipRootBraces bool

	// SkipNull omits object fields whose value is null.
	SkipNull bool

	// SkipPrivate omits object fields whose name starts with "::".
	SkipPrivate bool

	// SameLinePrimitives writes a nested object on one line when every field
	// is a scalar and every key is a bare identifier.
	SameLinePrimitives bool

	// TruncateNumbers writes 4, 3 or 2 decimals depending on magnitude
	// instead of the shortest round-tripping form.
	TruncateNumbers bool

	// EscapeUTF8 writes bytes >= 0x80 inside strings as \xHH.
	EscapeUTF8 bool

	// SortFields writes object fields ordered by name.
	SortFields bool

	// Indent is the indentation unit. Empty means DefaultIndent.
	Indent string

	// SkipUnchanged makes WriteFile leave a file alone when it already holds
	// exactly the serialized bytes.
	SkipUnchanged bool
}

// DefaultWriteOptions returns the options used for settings files:
// brace-less root, nulls skipped, identical files not rewritten.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		SkipRootBraces: true,
		SkipNull:       true,
		Indent:         DefaultIndent,
		SkipUnchanged:  true,
	}
}

// ParseOptions controls parsing.
type ParseOptions struct {
	// PreserveOrder keeps object fields in textual order. Without it fields
	// iterate in reverse order.
	PreserveOrder bool

	// DecodeUnicode decodes \xHH and \uXXXX escapes. Without it they are kept
	// as literal text.
	DecodeUnicode bool

	// PackStrings shrinks the string table once parsing is done.
	PackStrings bool

	// StrictJSON rejects comments, bare keys and words, "=", missing commas
	// and trailing commas.
	StrictJSON bool

	// Latin1Fallback decodes input that is not valid UTF-8 as Windows-1252.
	Latin1Fallback bool

	// Interner, when set, receives every name and string instead of a
	// table owned by the resulting store.
	Interner symtab.Interner
}

// DefaultParseOptions returns options suited to reading settings files.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		PreserveOrder: true,
		DecodeUnicode: true,
	}
}
