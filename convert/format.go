package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/fsync"
	"github.com/joshuapare/sjsonkit/internal/mmfile"
	"github.com/joshuapare/sjsonkit/sjson"
)

// Format names a document syntax.
type Format int

const (
	FormatUnknown Format = iota
	FormatSJSON
	FormatJSON
	FormatYAML
	FormatTOML
)

var formatNames = map[Format]string{
	FormatUnknown: "unknown",
	FormatSJSON:   "sjson",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
	FormatTOML:    "toml",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a name such as "yaml" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "sjson", "conf", "cfg":
		return FormatSJSON, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf guesses the format of path from its extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode parses data in format f.
func Decode(data []byte, f Format, opts Options) (*config.Store, error) {
	switch f {
	case FormatSJSON, FormatJSON:
		popts := sjson.DefaultParseOptions()
		popts.PreserveOrder = opts.PreserveOrder
		popts.Interner = opts.Interner
		popts.StrictJSON = f == FormatJSON
		return sjson.Parse(data, popts)
	case FormatYAML:
		return FromYAML(data, opts)
	case FormatTOML:
		return FromTOML(data, opts)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Encode renders h in format f. SJSON output uses sjson.DefaultWriteOptions.
func Encode(h config.Handle, f Format) ([]byte, error) {
	switch f {
	case FormatSJSON:
		return append(sjson.Write(h, sjson.DefaultWriteOptions()), '\n'), nil
	case FormatJSON:
		return append(sjson.Write(h, sjson.WriteOptions{JSON: true, Indent: "  "}), '\n'), nil
	case FormatYAML:
		return ToYAML(h)
	case FormatTOML:
		return ToTOML(h)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Load reads the file at path in the format its extension names.
func Load(path string, opts Options) (*config.Store, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := mmfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("convert: read %s: %w", path, err)
	}
	store, err := Decode(data, f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Save writes h to path in the format its extension names, replacing the
// file atomically.
func Save(path string, h config.Handle) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(h, f)
	if err != nil {
		return err
	}
	return fsync.WriteAtomic(path, data, sjson.FilePerm)
}
