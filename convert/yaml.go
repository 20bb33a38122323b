package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/logger"
)

const (
	tagNull      = "!!null"
	tagBool      = "!!bool"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagStr       = "!!str"
	tagTimestamp = "!!timestamp"
	tagMerge     = "!!merge"
)

// FromYAML parses the first document of a YAML stream. Mappings become
// objects, sequences arrays; aliases are expanded and "<<" merge keys
// copy fields the mapping does not define itself. Empty input yields an
// empty object.
func FromYAML(data []byte, opts Options) (*config.Store, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return opts.newStore(config.Object), nil
		}
		return nil, fmt.Errorf("convert: yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return opts.newStore(config.Object), nil
		}
		root = root.Content[0]
	}

	kind := config.Nil
	switch resolve(root).Kind {
	case yaml.MappingNode:
		kind = config.Object
	case yaml.SequenceNode:
		kind = config.Array
	}
	store := opts.newStore(kind)
	if err := fromYAMLNode(store.Root(), root, 0); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// resolve follows alias chains to the anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func fromYAMLNode(h config.Handle, n *yaml.Node, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	n = resolve(n)

	switch n.Kind {
	case yaml.MappingNode:
		h.MakeObject()
		return yamlMapping(h, n, depth)
	case yaml.SequenceNode:
		h.MakeArray()
		for _, el := range n.Content {
			if err := fromYAMLNode(h.Push(), el, depth+1); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		return yamlScalar(h, n)
	default:
		return fmt.Errorf("convert: yaml: line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}

func yamlMapping(h config.Handle, n *yaml.Node, depth int) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w (line %d)", ErrUnsupportedKey, k.Line)
		}
		if k.ShortTag() == tagMerge {
			merges = append(merges, v)
			continue
		}
		if err := fromYAMLNode(h.Add(k.Value), v, depth+1); err != nil {
			return err
		}
	}

	for _, m := range merges {
		m = resolve(m)
		sources := []*yaml.Node{m}
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		}
		for _, src := range sources {
			src = resolve(src)
			if src.Kind != yaml.MappingNode {
				return fmt.Errorf("convert: yaml: line %d: merge value is not a mapping", src.Line)
			}
			for i := 0; i+1 < len(src.Content); i += 2 {
				key := resolve(src.Content[i]).Value
				if h.Exists(key) {
					continue
				}
				if err := fromYAMLNode(h.Add(key), src.Content[i+1], depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func yamlScalar(h config.Handle, n *yaml.Node) error {
	switch n.ShortTag() {
	case tagNull:
		h.SetNull()
		return nil
	case tagStr:
		h.SetString(n.Value)
		return nil
	case tagTimestamp:
		// Decoding into an interface keeps timestamps as text.
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return fmt.Errorf("convert: yaml: line %d: %w", n.Line, err)
		}
		h.SetTime(t)
		return nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return fmt.Errorf("convert: yaml: line %d: %w", n.Line, err)
	}
	if err := h.SetValue(v); err != nil {
		// Unusual tags decode to types the tree cannot hold; keep the text.
		logger.Debug("convert: yaml scalar kept as text", "line", n.Line, "tag", n.ShortTag())
		h.SetString(n.Value)
	}
	return nil
}

// ToYAML renders h as a YAML document with two-space indentation.
func ToYAML(h config.Handle) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(h)); err != nil {
		return nil, fmt.Errorf("convert: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("convert: yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func toYAMLNode(h config.Handle) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch h.Kind() {
	case config.True:
		return scalar(tagBool, "true")
	case config.False:
		return scalar(tagBool, "false")
	case config.Number:
		return yamlNumber(h.AsNumber(0))
	case config.String:
		n := scalar(tagStr, h.AsString(""))
		if strings.Contains(n.Value, "\n") {
			n.Style = yaml.LiteralStyle
		}
		return n
	case config.Raw:
		return scalar(tagInt, config.FormatRaw(h.AsRaw(0)))
	case config.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for c := range h.Children() {
			if !c.IsUndefined() {
				n.Content = append(n.Content, toYAMLNode(c))
			}
		}
		return n
	case config.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for c := range h.Children() {
			if !c.IsUndefined() {
				n.Content = append(n.Content, scalar(tagStr, c.Name()), toYAMLNode(c))
			}
		}
		return n
	default:
		return scalar(tagNull, "null")
	}
}

func yamlNumber(v float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: tagFloat}
	switch {
	case math.IsNaN(v):
		n.Value = ".nan"
	case math.IsInf(v, 1):
		n.Value = ".inf"
	case math.IsInf(v, -1):
		n.Value = "-.inf"
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		n.Tag = tagInt
		n.Value = config.FormatNumber(v)
	default:
		n.Value = config.FormatNumber(v)
	}
	return n
}
