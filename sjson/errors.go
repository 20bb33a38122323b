package sjson

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrSyntax is wrapped by every *ParseError.
	ErrSyntax = errors.New("sjson: syntax error")

	// ErrEncoding indicates input that could not be decoded to UTF-8.
	ErrEncoding = errors.New("sjson: unsupported input encoding")
)

// ParseError reports where parsing stopped. Line and Column are 1-based;
// Column counts runes.
type ParseError struct {
	Msg    string
	Offset int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sjson: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *ParseError) Unwrap() error { return ErrSyntax }

// newParseError locates offset in src. Only called on the failure path.
func newParseError(src string, offset int, format string, args ...any) *ParseError {
	if offset > len(src) {
		offset = len(src)
	}
	head := src[:offset]
	line := strings.Count(head, "\n") + 1
	col := utf8.RuneCountInString(head[strings.LastIndexByte(head, '\n')+1:]) + 1
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
		Line:   line,
		Column: col,
	}
}
