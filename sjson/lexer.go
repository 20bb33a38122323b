package sjson

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeInput converts data to UTF-8 text. UTF-16 input must start with a
// BOM; a UTF-8 BOM is dropped. Data without a BOM is returned as-is unless it
// is invalid UTF-8 and latin1 is set, in which case it is read as
// Windows-1252.
func decodeInput(data []byte, latin1 bool) (string, error) {
	switch {
	case bytes.HasPrefix(data, UTF8BOM):
		return string(data[len(UTF8BOM):]), nil
	case bytes.HasPrefix(data, UTF16LEBOM), bytes.HasPrefix(data, UTF16BEBOM):
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(out), nil
	case latin1 && !utf8.Valid(data):
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(out), nil
	default:
		return string(data), nil
	}
}

// lexer walks the source text byte by byte.
type lexer struct {
	src    string
	pos    int
	strict bool
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

// peek returns the current byte, or 0 at the end of input.
func (l *lexer) peek() byte {
	if l.pos < len(l.src) {
		return l.src[l.pos]
	}
	return 0
}

func (l *lexer) hasPrefix(s string) bool { return strings.HasPrefix(l.src[l.pos:], s) }

// fail builds a positional error at the current offset.
func (l *lexer) fail(format string, args ...any) error {
	return newParseError(l.src, l.pos, format, args...)
}

// skipSpace consumes whitespace and, outside strict mode, // and /* */
// comments.
func (l *lexer) skipSpace() error {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case isSpace(c):
			l.pos++
		case !l.strict && l.hasPrefix(LineComment):
			if nl := strings.IndexByte(l.src[l.pos:], '\n'); nl >= 0 {
				l.pos += nl + 1
			} else {
				l.pos = len(l.src)
			}
		case !l.strict && l.hasPrefix(BlockCommentOpen):
			end := strings.Index(l.src[l.pos+len(BlockCommentOpen):], BlockCommentClose)
			if end < 0 {
				return l.fail("unterminated block comment")
			}
			l.pos += len(BlockCommentOpen) + end + len(BlockCommentClose)
		default:
			return nil
		}
	}
	return nil
}

// skipSeparators is skipSpace that also eats commas, used between SJSON
// array elements and fields where commas are optional.
func (l *lexer) skipSeparators() error {
	for {
		if err := l.skipSpace(); err != nil {
			return err
		}
		if l.peek() != Comma {
			return nil
		}
		l.pos++
	}
}

// word scans a bare identifier or value up to the next terminator.
func (l *lexer) word() string {
	start := l.pos
	for !l.eof() && !l.atTerminator() {
		l.pos++
	}
	return l.src[start:l.pos]
}

// atTerminator reports whether a bare word or number ends at the current
// offset. Outside strict mode a comment opener ends it too.
func (l *lexer) atTerminator() bool {
	if l.eof() || isTerminator(l.src[l.pos]) {
		return true
	}
	return !l.strict && (l.hasPrefix(LineComment) || l.hasPrefix(BlockCommentOpen))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isTerminator reports whether c ends a bare word.
func isTerminator(c byte) bool {
	switch c {
	case '=', ':', Comma, ObjectOpen, ObjectClose, ArrayOpen, ArrayClose, Quote:
		return true
	}
	return isSpace(c)
}

// isNumberByte reports whether c may appear in a number literal.
func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		c == '+' || c == '-' || c == '.'
}

// startsNumber reports whether c may begin a number literal.
func startsNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// isSimpleIdentifier reports whether s can be written as a bare SJSON key.
func isSimpleIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' {
			continue
		}
		return false
	}
	return true
}
