package sjson

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/logger"
)

// Parse reads SJSON or JSON text into a new Store.
//
// The root may be an object, an array, or a list of fields without braces.
// Empty input yields an empty object. On failure no Store is returned and the
// error is a *ParseError (errors.Is(err, ErrSyntax) holds) or wraps
// ErrEncoding.
func Parse(text []byte, opts ParseOptions) (*config.Store, error) {
	src, err := decodeInput(text, opts.Latin1Fallback)
	if err != nil {
		return nil, err
	}
	return ParseString(src, opts)
}

// ParseString is Parse for text already held in a string. A leading UTF-8
// BOM is skipped; no other decoding is done.
func ParseString(src string, opts ParseOptions) (*config.Store, error) {
	src = strings.TrimPrefix(src, string(UTF8BOM))
	p := &parser{
		lexer: lexer{src: src, strict: opts.StrictJSON},
		opts:  opts,
	}

	store, err := p.document()
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}
	if opts.PackStrings {
		size := store.Pack()
		logger.Debug("sjson: packed string table", "bytes", size)
	}
	return store, nil
}

type parser struct {
	lexer
	opts ParseOptions
}

func (p *parser) newStore(root config.Kind) *config.Store {
	copts := config.Options{PreserveOrder: p.opts.PreserveOrder}
	if p.opts.Interner != nil {
		return config.NewWithInterner(root, copts, p.opts.Interner)
	}
	return config.New(root, copts)
}

// document parses the root value and checks nothing follows it.
func (p *parser) document() (*config.Store, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}

	var store *config.Store
	switch c := p.peek(); {
	case c == ArrayOpen:
		store = p.newStore(config.Array)
		p.pos++
		if err := p.array(store.Root()); err != nil {
			return store, err
		}
	case c == ObjectOpen:
		store = p.newStore(config.Object)
		p.pos++
		if err := p.object(store.Root(), true); err != nil {
			return store, err
		}
	case p.eof():
		return p.newStore(config.Object), nil
	default:
		if p.strict {
			return nil, p.fail("expected '{' or '[' at document start")
		}
		store = p.newStore(config.Object)
		if err := p.object(store.Root(), false); err != nil {
			return store, err
		}
	}

	if err := p.skipSpace(); err != nil {
		return store, err
	}
	if !p.eof() {
		return store, p.fail("unexpected %q after document", p.peek())
	}
	return store, nil
}

// object parses fields into h. With braces the opening '{' has been consumed
// and a '}' ends the object; without, the input end does.
func (p *parser) object(h config.Handle, braces bool) error {
	for first := true; ; first = false {
		if err := p.fieldGap(first); err != nil {
			return err
		}
		switch {
		case p.eof():
			if braces {
				return p.fail("unexpected end of input in object")
			}
			return nil
		case braces && p.peek() == ObjectClose:
			p.pos++
			return nil
		case !braces && p.peek() == ObjectClose:
			return p.fail("unexpected '}'")
		}

		if p.strict && !first {
			if p.peek() != Comma {
				return p.fail("expected ',' or '}' after object field")
			}
			p.pos++
			if err := p.skipSpace(); err != nil {
				return err
			}
			if p.peek() == ObjectClose {
				return p.fail("trailing comma in object")
			}
		}

		key, err := p.key()
		if err != nil {
			return err
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		switch c := p.peek(); {
		case c == ':':
			p.pos++
		case c == '=' && !p.strict:
			p.pos++
		default:
			return p.fail("expected ':' or '=' after key %q", key)
		}

		if err := p.value(h.Add(key)); err != nil {
			return err
		}
	}
}

// fieldGap skips what may sit between two fields. Outside strict mode that
// includes commas.
func (p *parser) fieldGap(first bool) error {
	if p.strict || first {
		return p.skipSpace()
	}
	return p.skipSeparators()
}

// array parses elements into h after the opening '['.
func (p *parser) array(h config.Handle) error {
	for first := true; ; first = false {
		var err error
		if p.strict {
			err = p.skipSpace()
		} else {
			err = p.skipSeparators()
		}
		if err != nil {
			return err
		}

		switch {
		case p.eof():
			return p.fail("unexpected end of input in array")
		case p.peek() == ArrayClose:
			p.pos++
			return nil
		}

		if p.strict && !first {
			if p.peek() != Comma {
				return p.fail("expected ',' or ']' after array element")
			}
			p.pos++
			if err := p.skipSpace(); err != nil {
				return err
			}
			if p.peek() == ArrayClose {
				return p.fail("trailing comma in array")
			}
		}

		if err := p.value(h.Push()); err != nil {
			return err
		}
	}
}

// key parses an object key: bare, quoted or triple-quoted.
func (p *parser) key() (string, error) {
	switch {
	case p.hasPrefix(TripleQuote) && !p.strict:
		return p.literal()
	case p.peek() == Quote:
		return p.quoted()
	case p.strict:
		return "", p.fail("expected quoted key")
	}
	start := p.pos
	k := p.word()
	if k == "" {
		p.pos = start
		return "", p.fail("unexpected %q, expected key", p.peek())
	}
	return k, nil
}

// value parses any value into the freshly created node h.
func (p *parser) value(h config.Handle) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	c := p.peek()
	switch {
	case p.eof():
		return p.fail("unexpected end of input, expected value")
	case c == ObjectOpen:
		p.pos++
		h.MakeObject()
		return p.object(h, true)
	case c == ArrayOpen:
		p.pos++
		h.MakeArray()
		return p.array(h)
	case p.hasPrefix(TripleQuote) && !p.strict:
		s, err := p.literal()
		if err != nil {
			return err
		}
		h.SetString(s)
		return nil
	case c == Quote:
		s, err := p.quoted()
		if err != nil {
			return err
		}
		h.SetString(s)
		return nil
	case startsNumber(c):
		return p.number(h)
	}

	start := p.pos
	w := p.word()
	switch w {
	case KeywordTrue:
		h.SetBool(true)
	case KeywordFalse:
		h.SetBool(false)
	case KeywordNull:
		h.SetNull()
	case "":
		return p.fail("unexpected %q, expected value", c)
	default:
		if p.strict {
			p.pos = start
			return p.fail("unexpected bare word %q", w)
		}
		h.SetString(w)
	}
	return nil
}

// number parses a numeric literal. A 0x prefix or hex digits that do not
// form a float produce a raw value; any other run that fails to parse is
// kept as a bare string outside strict mode.
func (p *parser) number(h config.Handle) error {
	start := p.pos

	if p.hasPrefix(HexPrefix) || p.hasPrefix("0X") {
		p.pos += len(HexPrefix)
		digits := p.pos
		for p.pos < len(p.src) && isHexByte(p.src[p.pos]) {
			p.pos++
		}
		if p.atTerminator() {
			if u, err := strconv.ParseUint(p.src[digits:p.pos], 16, 64); err == nil {
				h.SetRaw(config.RawValue(u))
				return nil
			}
		}
		p.pos = start
	}

	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}
	lit := p.src[start:p.pos]

	if p.atTerminator() {
		f, err := strconv.ParseFloat(lit, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			h.SetNumber(f)
			return nil
		}
		if u, err := strconv.ParseUint(lit, 16, 64); err == nil {
			h.SetRaw(config.RawValue(u))
			return nil
		}
	}

	// Not a number after all: treat the whole run as a bare word.
	p.pos = start
	w := p.word()
	if p.strict {
		p.pos = start
		return p.fail("invalid number %q", w)
	}
	h.SetString(w)
	return nil
}

func isHexByte(c byte) bool {
	_, ok := hexValue(c)
	return ok
}

// literal parses a """...""" string verbatim.
func (p *parser) literal() (string, error) {
	start := p.pos
	p.pos += len(TripleQuote)
	end := strings.Index(p.src[p.pos:], TripleQuote)
	if end < 0 {
		p.pos = start
		return "", p.fail("unterminated literal string")
	}
	s := p.src[p.pos : p.pos+end]
	p.pos += end + len(TripleQuote)
	return s, nil
}

// quoted parses a "..." string and processes its escapes.
func (p *parser) quoted() (string, error) {
	start := p.pos
	p.pos++

	// Fast path: no escapes and no control characters to reject.
	if end := strings.IndexAny(p.src[p.pos:], `"\`); end >= 0 && p.src[p.pos+end] == Quote {
		s := p.src[p.pos : p.pos+end]
		if !p.strict || !hasControl(s) {
			p.pos += end + 1
			return s, nil
		}
	}

	var sb strings.Builder
	for {
		if p.eof() {
			p.pos = start
			return "", p.fail("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == Quote:
			p.pos++
			return sb.String(), nil
		case c < 0x20 && p.strict:
			return "", p.fail("control character %#02x in string", c)
		case c != Backslash:
			sb.WriteByte(c)
			p.pos++
			continue
		}

		if p.pos+1 >= len(p.src) {
			p.pos = start
			return "", p.fail("unterminated string")
		}
		esc := p.src[p.pos+1]
		switch esc {
		case '"', '\\', '/':
			sb.WriteByte(esc)
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'x':
			if p.opts.DecodeUnicode {
				b, ok := p.hexByte(p.pos + 2)
				if !ok {
					return "", p.fail(`invalid \x escape`)
				}
				sb.WriteByte(b)
				p.pos += 4
				continue
			}
			sb.WriteString(`\x`)
		case 'u':
			if p.opts.DecodeUnicode {
				r, n, ok := p.unicodeEscape(p.pos)
				if !ok {
					return "", p.fail(`invalid \u escape`)
				}
				sb.WriteRune(r)
				p.pos += n
				continue
			}
			sb.WriteString(`\u`)
		default:
			if p.strict {
				return "", p.fail("invalid escape %q", `\`+string(esc))
			}
			sb.WriteByte(Backslash)
			sb.WriteByte(esc)
		}
		p.pos += 2
	}
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	return false
}

// hexByte decodes two hex digits at off.
func (p *parser) hexByte(off int) (byte, bool) {
	if off+2 > len(p.src) {
		return 0, false
	}
	hi, ok1 := hexValue(p.src[off])
	lo, ok2 := hexValue(p.src[off+1])
	return hi<<4 | lo, ok1 && ok2
}

// hex4 decodes four hex digits at off.
func (p *parser) hex4(off int) (rune, bool) {
	if off+4 > len(p.src) {
		return 0, false
	}
	u, err := strconv.ParseUint(p.src[off:off+4], 16, 16)
	return rune(u), err == nil
}

// unicodeEscape decodes \uXXXX at off, joining a following low surrogate.
// It returns the rune and the number of source bytes used.
func (p *parser) unicodeEscape(off int) (rune, int, bool) {
	r, ok := p.hex4(off + 2)
	if !ok {
		return 0, 0, false
	}
	if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[off+6:], `\u`) {
		if lo, ok := p.hex4(off + 8); ok {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				return pair, 12, true
			}
		}
	}
	if utf16.IsSurrogate(r) {
		r = utf8.RuneError
	}
	return r, 6, true
}
