package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/convert"
	"github.com/joshuapare/sjsonkit/sjson"
	"github.com/joshuapare/sjsonkit/symtab"
)

var errNoPath = errors.New("no value at path")

// formatOf returns the format named by path's extension, defaulting to SJSON.
func formatOf(path string) convert.Format {
	f, err := convert.FormatOf(path)
	if err != nil {
		return convert.FormatSJSON
	}
	return f
}

// loadDoc reads path into a store that interns through the process-wide
// table.
func loadDoc(path string) (*config.Store, error) {
	f := formatOf(path)
	printVerbose("Reading %s (%s)\n", path, f)

	switch f {
	case convert.FormatSJSON, convert.FormatJSON:
		opts := sjson.DefaultParseOptions()
		opts.StrictJSON = f == convert.FormatJSON
		opts.Interner = symtab.Default()
		return sjson.ReadFile(path, opts)
	default:
		opts := convert.DefaultOptions()
		opts.Interner = symtab.Default()
		return convert.Load(path, opts)
	}
}

// loadOrCreate is loadDoc that starts an empty object when path does not
// exist yet.
func loadOrCreate(path string) (*config.Store, error) {
	store, err := loadDoc(path)
	if errors.Is(err, fs.ErrNotExist) {
		printVerbose("Creating %s\n", path)
		return config.NewWithInterner(config.Object, config.Options{PreserveOrder: true}, symtab.Default()), nil
	}
	return store, err
}

// saveDoc writes h to path in the format of its extension. It reports
// whether the file changed.
func saveDoc(path string, h config.Handle) (bool, error) {
	switch f := formatOf(path); f {
	case convert.FormatSJSON:
		return sjson.WriteFile(path, h, sjson.DefaultWriteOptions())
	case convert.FormatJSON:
		return sjson.WriteFile(path, h, sjson.WriteOptions{JSON: true, Indent: "  ", SkipUnchanged: true})
	default:
		if err := convert.Save(path, h); err != nil {
			return false, err
		}
		return true, nil
	}
}

// segment is one step of a path: a field name or an array index.
type segment struct {
	key   string
	index int
	isKey bool
}

// parsePath splits "a.b[0][2].c" into segments. The empty path is the root.
func parsePath(path string) ([]segment, error) {
	if path == "" || path == "." {
		return nil, nil
	}
	var out []segment
	for _, part := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(part, "[")
		if key != "" {
			out = append(out, segment{key: key, isKey: true})
		} else if rest == "" {
			return nil, fmt.Errorf("invalid path %q: empty field name", path)
		}
		for rest != "" {
			num, tail, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, fmt.Errorf("invalid path %q: missing ']'", path)
			}
			i, err := strconv.Atoi(num)
			if err != nil || i < 0 {
				return nil, fmt.Errorf("invalid path %q: bad index %q", path, num)
			}
			out = append(out, segment{index: i})
			rest = strings.TrimPrefix(tail, "[")
		}
	}
	return out, nil
}

// walk follows segs from h. With create set, missing fields are added and
// an index equal to the array length appends; scalars on the way are
// turned into the container the next segment needs.
func walk(h config.Handle, segs []segment, create bool) (config.Handle, error) {
	for _, s := range segs {
		var next config.Handle
		switch {
		case s.isKey && create:
			next = h.GetOrCreate(s.key)
		case s.isKey:
			next = h.Find(s.key)
		case create && s.index == h.Len() && h.Kind() != config.Object:
			next = h.Push()
		default:
			next = h.At(s.index)
		}
		if !next.Valid() {
			return config.Handle{}, errNoPath
		}
		h = next
	}
	return h, nil
}

// lookup resolves path under root without modifying anything.
func lookup(root config.Handle, path string) (config.Handle, error) {
	segs, err := parsePath(path)
	if err != nil {
		return config.Handle{}, err
	}
	h, err := walk(root, segs, false)
	if err != nil {
		return config.Handle{}, fmt.Errorf("%w %q", err, path)
	}
	return h, nil
}
