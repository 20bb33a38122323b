package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/convert"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "sjson", "Output format when printing (sjson, json, yaml, toml)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert between SJSON, JSON, YAML and TOML",
		Long: `The convert command reads a document and writes it in another format.
Formats follow the file extensions (.sjson, .json, .yaml/.yml, .toml). Without
an output file the result is printed in the --to format.

Example:
  sjsonctl convert config.yaml settings.sjson
  sjsonctl convert settings.sjson --to toml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	store, err := loadDoc(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 2 {
		if _, err := saveDoc(args[1], store.Root()); err != nil {
			return err
		}
		printInfo("wrote %s\n", args[1])
		return nil
	}

	f, err := convert.ParseFormat(convertTo)
	if err != nil {
		return err
	}
	out, err := convert.Encode(store.Root(), f)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
