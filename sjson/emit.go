package sjson

import (
	"bytes"
	"slices"
	"strings"

	"github.com/joshuapare/sjsonkit/config"
)

const hexDigits = "0123456789abcdef"

// Write serializes the value at h. A null handle writes "null".
func Write(h config.Handle, opts WriteOptions) []byte {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	e := &emitter{opts: opts}
	e.buf.Grow(initialOutputSize)

	if h.Kind() == config.Object && opts.SkipRootBraces && !opts.JSON {
		e.fields(h, 0, false)
	} else {
		e.value(h, 0)
	}
	return e.buf.Bytes()
}

// WriteString is Write returning a string.
func WriteString(h config.Handle, opts WriteOptions) string {
	return string(Write(h, opts))
}

type emitter struct {
	buf  bytes.Buffer
	opts WriteOptions
}

func (e *emitter) newline(depth int) {
	e.buf.WriteByte('\n')
	for range depth {
		e.buf.WriteString(e.opts.Indent)
	}
}

func (e *emitter) value(h config.Handle, depth int) {
	switch h.Kind() {
	case config.True:
		e.buf.WriteString(KeywordTrue)
	case config.False:
		e.buf.WriteString(KeywordFalse)
	case config.Number:
		v := h.AsNumber(0)
		if e.opts.TruncateNumbers {
			e.buf.WriteString(config.FormatTruncated(v))
		} else {
			e.buf.WriteString(config.FormatNumber(v))
		}
	case config.String:
		e.quote(h.AsString(""))
	case config.Raw:
		e.buf.WriteString(config.FormatRaw(h.AsRaw(0)))
	case config.Array:
		e.array(h, depth)
	case config.Object:
		e.buf.WriteByte(ObjectOpen)
		switch n, same := e.fields(h, depth+1, true); {
		case same:
			e.buf.WriteByte(' ')
		case n > 0:
			e.newline(depth)
		}
		e.buf.WriteByte(ObjectClose)
	default:
		e.buf.WriteString(KeywordNull)
	}
}

// visible returns the fields of h that will be written, in output order.
func (e *emitter) visible(h config.Handle) []config.Handle {
	out := make([]config.Handle, 0, h.Len())
	for c := range h.Children() {
		switch {
		case c.Kind() == config.Undefined:
			continue
		case e.opts.SkipNull && c.Kind() == config.Nil:
			continue
		case e.opts.SkipPrivate && strings.HasPrefix(c.Name(), PrivatePrefix):
			continue
		}
		out = append(out, c)
	}
	if e.opts.SortFields {
		slices.SortStableFunc(out, func(a, b config.Handle) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}
	return out
}

// sameLine reports whether fields fit on one line: all scalars with bare keys.
func (e *emitter) sameLine(fields []config.Handle) bool {
	if !e.opts.SameLinePrimitives || e.opts.JSON {
		return false
	}
	for _, f := range fields {
		if !f.Kind().IsScalar() || !isSimpleIdentifier(f.Name()) {
			return false
		}
	}
	return true
}

// fields writes the visible fields of h at depth. In braces mode every field
// starts on a new line (or after a space when sameLine applies); the root
// without braces starts directly. It returns the number of fields written
// and whether the same-line layout was used.
func (e *emitter) fields(h config.Handle, depth int, braces bool) (int, bool) {
	fields := e.visible(h)
	same := braces && len(fields) > 0 && e.sameLine(fields)

	for i, f := range fields {
		if i > 0 && e.opts.JSON {
			e.buf.WriteByte(Comma)
		}
		switch {
		case same:
			e.buf.WriteByte(' ')
		case braces || i > 0:
			e.newline(depth)
		}
		e.key(f.Name())
		if e.opts.JSON {
			e.buf.WriteString(AssignJSON)
		} else {
			e.buf.WriteString(AssignSJSON)
		}
		e.value(f, depth)
	}
	return len(fields), same
}

func (e *emitter) array(h config.Handle, depth int) {
	e.buf.WriteByte(ArrayOpen)
	lastScalar := true
	i := 0
	for c := range h.Children() {
		if c.Kind() == config.Undefined {
			continue
		}
		if i > 0 && e.opts.JSON {
			e.buf.WriteByte(Comma)
		}
		lastScalar = c.Kind().IsScalar()
		if lastScalar {
			if i > 0 {
				e.buf.WriteByte(' ')
			}
		} else {
			e.newline(depth + 1)
		}
		e.value(c, depth+1)
		i++
	}
	if !lastScalar {
		e.newline(depth)
	}
	e.buf.WriteByte(ArrayClose)
}

func (e *emitter) key(name string) {
	if !e.opts.JSON && isSimpleIdentifier(name) {
		e.buf.WriteString(name)
		return
	}
	e.quote(name)
}

// quote writes s as a double-quoted string with C-style escapes. Control
// bytes without a short escape are written raw outside JSON mode.
func (e *emitter) quote(s string) {
	e.buf.WriteByte(Quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == Quote || c == Backslash:
			e.buf.WriteByte(Backslash)
			e.buf.WriteByte(c)
		case c == '\n':
			e.buf.WriteString(`\n`)
		case c == '\r':
			e.buf.WriteString(`\r`)
		case c == '\t':
			e.buf.WriteString(`\t`)
		case c == '\b':
			e.buf.WriteString(`\b`)
		case c == '\f':
			e.buf.WriteString(`\f`)
		case (c < 0x20 || c == 0x7f) && e.opts.JSON:
			e.buf.WriteString(`\u00`)
			e.buf.WriteByte(hexDigits[c>>4])
			e.buf.WriteByte(hexDigits[c&0x0F])
		case c >= 0x80 && e.opts.EscapeUTF8:
			e.buf.WriteString(`\x`)
			e.buf.WriteByte(hexDigits[c>>4])
			e.buf.WriteByte(hexDigits[c&0x0F])
		default:
			e.buf.WriteByte(c)
		}
	}
	e.buf.WriteByte(Quote)
}
