package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/config"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show document statistics",
		Long: `The stats command shows value counts by kind, nesting depth, and the
size of the string table behind the document.

Example:
  sjsonctl stats settings.sjson
  sjsonctl stats settings.sjson --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// DocStats summarizes a document.
type DocStats struct {
	File        string         `json:"file"`
	Values      int            `json:"values"`
	MaxDepth    int            `json:"max_depth"`
	Kinds       map[string]int `json:"kinds"`
	Nodes       int            `json:"nodes"`
	Strings     int            `json:"strings"`
	StringBytes int            `json:"string_bytes"`
	TableBytes  int            `json:"table_bytes"`
}

func collectStats(file string, store *config.Store) DocStats {
	st := DocStats{File: file, Kinds: make(map[string]int)}
	var visit func(h config.Handle, depth int)
	visit = func(h config.Handle, depth int) {
		st.Values++
		st.Kinds[h.Kind().String()]++
		st.MaxDepth = max(st.MaxDepth, depth)
		for c := range h.Children() {
			visit(c, depth+1)
		}
	}
	visit(store.Root(), 0)

	ss := store.Stats()
	st.Nodes = ss.Nodes
	st.Strings = ss.Strings.Count
	st.StringBytes = ss.Strings.StringBytes
	st.TableBytes = ss.Strings.Allocated
	return st
}

func runStats(args []string) error {
	store, err := loadDoc(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	st := collectStats(args[0], store)
	if jsonOut {
		return printJSON(st)
	}

	printInfo("File:        %s\n", st.File)
	printInfo("Values:      %d\n", st.Values)
	printInfo("Max depth:   %d\n", st.MaxDepth)
	for _, k := range []config.Kind{config.Object, config.Array, config.String, config.Number,
		config.True, config.False, config.Nil, config.Raw, config.Undefined} {
		if n := st.Kinds[k.String()]; n > 0 {
			printInfo("  %-10s %d\n", k.String()+":", n)
		}
	}
	printInfo("Nodes:       %d\n", st.Nodes)
	printInfo("Strings:     %d (%d bytes, table %d bytes)\n", st.Strings, st.StringBytes, st.TableBytes)
	return nil
}
