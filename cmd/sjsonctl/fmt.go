package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/convert"
	"github.com/joshuapare/sjsonkit/sjson"
)

var (
	fmtWrite     bool
	fmtSort      bool
	fmtSameLine  bool
	fmtBraces    bool
	fmtTruncate  bool
	fmtNoPrivate bool
	fmtKeepNull  bool
	fmtIndent    string
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	cmd.Flags().BoolVar(&fmtSort, "sort", false, "Order object fields by name")
	cmd.Flags().BoolVar(&fmtSameLine, "same-line", false, "Keep small objects of scalars on one line")
	cmd.Flags().BoolVar(&fmtBraces, "braces", false, "Wrap the root object in braces")
	cmd.Flags().BoolVar(&fmtTruncate, "truncate", false, "Round numbers to a few decimals")
	cmd.Flags().BoolVar(&fmtNoPrivate, "skip-private", false, `Drop fields whose name starts with "::"`)
	cmd.Flags().BoolVar(&fmtKeepNull, "keep-null", false, "Write fields holding null")
	cmd.Flags().StringVar(&fmtIndent, "indent", sjson.DefaultIndent, "Indentation unit")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Reformat documents",
		Long: `The fmt command parses each file and writes it back in canonical form.
Files are printed to stdout unless --write is given. With --json the output is
strict JSON. Files already in canonical form are not rewritten.

Example:
  sjsonctl fmt settings.sjson
  sjsonctl fmt -w --sort settings.sjson
  sjsonctl fmt --json settings.sjson`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func fmtOptions(path string) sjson.WriteOptions {
	opts := sjson.DefaultWriteOptions()
	opts.JSON = jsonOut || formatOf(path) == convert.FormatJSON
	opts.SortFields = fmtSort
	opts.SameLinePrimitives = fmtSameLine
	opts.SkipRootBraces = !fmtBraces
	opts.TruncateNumbers = fmtTruncate
	opts.SkipPrivate = fmtNoPrivate
	opts.SkipNull = !fmtKeepNull
	opts.Indent = fmtIndent
	return opts
}

func runFmt(args []string) error {
	for _, path := range args {
		if err := fmtFile(path); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(path string) error {
	store, err := loadDoc(path)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := fmtOptions(path)
	if !fmtWrite {
		out := sjson.Write(store.Root(), opts)
		_, err := fmt.Fprintf(os.Stdout, "%s\n", out)
		return err
	}

	if f := formatOf(path); f != convert.FormatSJSON && f != convert.FormatJSON {
		return fmt.Errorf("%s: --write only rewrites SJSON and JSON files", path)
	}
	written, err := sjson.WriteFile(path, store.Root(), opts)
	if err != nil {
		return err
	}
	if written {
		printInfo("formatted %s\n", path)
	} else {
		printVerbose("%s unchanged\n", path)
	}
	return nil
}
