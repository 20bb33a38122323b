package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/sjson"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "auto", "Value type (auto, string, number, bool, null, raw)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a value",
		Long: `The set command stores a value at a dotted path, creating missing
objects along the way. An index equal to the array length appends.

With --type auto (the default) the value is read as SJSON, so numbers,
true/false/null, 0x raw values, arrays and objects are recognized; anything
that does not parse is stored as a string. The file is created if missing.

Example:
  sjsonctl set settings.sjson window.width 1280
  sjsonctl set settings.sjson recent[0] "notes.txt" --type string
  sjsonctl set settings.sjson plugins '[ "a" "b" ]'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	file, path, text := args[0], args[1], args[2]

	store, err := loadOrCreate(file)
	if err != nil {
		return err
	}
	defer store.Close()

	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return fmt.Errorf("set: path must name a field or element")
	}
	h, err := walk(store.Root(), segs, true)
	if err != nil {
		return fmt.Errorf("%w %q", err, path)
	}
	if err := assign(h, text, setType); err != nil {
		return err
	}

	written, err := saveDoc(file, store.Root())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"file":    file,
			"path":    path,
			"type":    h.Kind().String(),
			"changed": written,
		})
	}
	printInfo("%s = %s\n", path, renderValue(h))
	return nil
}

// assign stores text at h according to kind.
func assign(h config.Handle, text, kind string) error {
	switch strings.ToLower(kind) {
	case "string", "str":
		h.SetString(text)
	case "number", "num":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("set: %q is not a number", text)
		}
		h.SetNumber(v)
	case "bool":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("set: %q is not a boolean", text)
		}
		h.SetBool(v)
	case "null":
		h.SetNull()
	case "raw":
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(text), "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("set: %q is not a hex value", text)
		}
		h.SetRaw(config.RawValue(v))
	case "auto":
		parsed, err := sjson.ParseString("v = "+text, sjson.DefaultParseOptions())
		if err != nil {
			h.SetString(text)
			return nil
		}
		defer parsed.Close()
		v := parsed.Root().Find("v")
		if parsed.Root().Len() != 1 || !v.Valid() {
			h.SetString(text)
			return nil
		}
		config.Copy(h, v)
	default:
		return fmt.Errorf("set: unknown type %q", kind)
	}
	return nil
}
