package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/convert"
	"github.com/joshuapare/sjsonkit/sjson"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show the value kind")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> [path]",
		Short: "Print a value",
		Long: `The get command prints the value at a dotted path such as
"servers[0].host". Strings are printed without quotes; objects and arrays are
printed as SJSON, or JSON with --json. Without a path the whole document is
printed.

Example:
  sjsonctl get settings.sjson window.width
  sjsonctl get settings.sjson servers[1] --json
  sjsonctl get config.yaml database.host --type`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	store, err := loadDoc(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	h, err := lookup(store.Root(), path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"path":  path,
			"type":  h.Kind().String(),
			"value": convert.ToValue(h),
		})
	}

	if getShowType {
		fmt.Fprintf(os.Stdout, "%s\t", h.Kind())
	}
	fmt.Fprintln(os.Stdout, renderValue(h))
	return nil
}

// renderValue formats h for terminal output.
func renderValue(h config.Handle) string {
	switch h.Kind() {
	case config.String:
		return h.AsString("")
	case config.Array, config.Object:
		return sjson.WriteString(h, sjson.WriteOptions{Indent: "  "})
	default:
		return sjson.WriteString(h, sjson.WriteOptions{})
	}
}
