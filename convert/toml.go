package convert

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/logger"
)

// FromTOML parses a TOML document into an object. Tables become objects,
// arrays of tables arrays of objects, and date-times Unix seconds. With
// PreserveOrder fields follow the order keys appear in the document.
func FromTOML(data []byte, opts Options) (*config.Store, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("convert: toml: %w", err)
	}

	order := make(map[string]int, len(md.Keys()))
	for i, k := range md.Keys() {
		if _, seen := order[k.String()]; !seen {
			order[k.String()] = i
		}
	}

	store := opts.newStore(config.Object)
	b := tomlBuilder{order: order}
	if err := b.table(store.Root(), "", doc, 0); err != nil {
		store.Close()
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Debug("convert: toml keys not decoded", "count", len(undecoded))
	}
	return store, nil
}

type tomlBuilder struct {
	order map[string]int
}

// keys orders the keys of the table at path by first appearance.
func (b tomlBuilder) keys(path string, m map[string]any) []string {
	rank := func(k string) int {
		full := toml.Key(append(splitKey(path), k)).String()
		if i, ok := b.order[full]; ok {
			return i
		}
		return math.MaxInt
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, c string) int {
		return cmp.Or(cmp.Compare(rank(a), rank(c)), strings.Compare(a, c))
	})
	return out
}

func splitKey(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "\x00")
}

func joinKey(path, k string) string {
	if path == "" {
		return k
	}
	return path + "\x00" + k
}

func (b tomlBuilder) table(h config.Handle, path string, m map[string]any, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	h.MakeObject()
	for _, k := range b.keys(path, m) {
		if err := b.value(h.Add(k), joinKey(path, k), m[k], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (b tomlBuilder) value(h config.Handle, path string, v any, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	switch x := v.(type) {
	case map[string]any:
		return b.table(h, path, x, depth)
	case []map[string]any:
		h.MakeArray()
		for _, el := range x {
			if err := b.table(h.Push(), path, el, depth+1); err != nil {
				return err
			}
		}
		return nil
	case []any:
		h.MakeArray()
		for _, el := range x {
			if err := b.value(h.Push(), path, el, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		if err := h.SetValue(v); err != nil {
			return fmt.Errorf("convert: toml: %w", err)
		}
		return nil
	}
}

// ToTOML renders an object as a TOML document. Null fields and null array
// elements are dropped, integral numbers are written as integers and raw
// values as 0x strings.
func ToTOML(h config.Handle) ([]byte, error) {
	if h.Kind() != config.Object {
		return nil, ErrNotObject
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlValue(h)); err != nil {
		return nil, fmt.Errorf("convert: toml: %w", err)
	}
	return buf.Bytes(), nil
}

func tomlValue(h config.Handle) any {
	switch h.Kind() {
	case config.Number:
		v := h.AsNumber(0)
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v)
		}
		return v
	case config.Raw:
		return config.FormatRaw(h.AsRaw(0))
	case config.Array:
		out := make([]any, 0, h.Len())
		for c := range h.Children() {
			if c.IsNull() || c.IsUndefined() {
				continue
			}
			out = append(out, tomlValue(c))
		}
		return out
	case config.Object:
		out := make(map[string]any, h.Len())
		for c := range h.Children() {
			if c.IsNull() || c.IsUndefined() {
				continue
			}
			if _, dup := out[c.Name()]; !dup {
				out[c.Name()] = tomlValue(c)
			}
		}
		return out
	default:
		return ToValue(h)
	}
}
