package convert

import "errors"

var (
	// ErrUnsupportedKey is returned for YAML mapping keys that are not scalars.
	ErrUnsupportedKey = errors.New("convert: mapping key is not a scalar")

	// ErrTooDeep is returned when nesting (or a YAML alias cycle) exceeds MaxDepth.
	ErrTooDeep = errors.New("convert: document nested too deeply")

	// ErrNotObject is returned when a TOML document is requested for a
	// value that is not an object.
	ErrNotObject = errors.New("convert: top-level value is not an object")

	// ErrUnknownFormat is returned by Load and Save for unrecognized file
	// extensions.
	ErrUnknownFormat = errors.New("convert: unknown document format")
)
