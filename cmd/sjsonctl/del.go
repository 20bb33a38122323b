package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDelCmd())
}

func newDelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "del <file> <path>",
		Short: "Delete a field or array element",
		Long: `The del command removes the field or element at a dotted path.
Removing a missing path is an error.

Example:
  sjsonctl del settings.sjson window.maximized
  sjsonctl del settings.sjson recent[0]`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDel(args)
		},
	}
	return cmd
}

func runDel(args []string) error {
	file, path := args[0], args[1]

	store, err := loadDoc(file)
	if err != nil {
		return err
	}
	defer store.Close()

	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return fmt.Errorf("del: refusing to delete the root")
	}
	parent, err := walk(store.Root(), segs[:len(segs)-1], false)
	if err != nil {
		return fmt.Errorf("%w %q", err, path)
	}

	last := segs[len(segs)-1]
	var removed bool
	if last.isKey {
		removed = parent.RemoveKey(last.key)
	} else {
		removed = parent.Remove(parent.At(last.index))
	}
	if !removed {
		return fmt.Errorf("%w %q", errNoPath, path)
	}

	if _, err := saveDoc(file, store.Root()); err != nil {
		return err
	}
	printInfo("deleted %s\n", path)
	return nil
}
