package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	cmd := newDuplicateCmd()
	addEditFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newDuplicateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicate <file> <index>",
		Short: "Insert a copy of an enemy right after it",
		Long: `The duplicate command copies the enemy at index and inserts the copy at
index+1. Later enemies move down by one.

Example:
  msbctl duplicate m30_00_00_00.msb 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicate(args)
		},
	}
	return cmd
}

func runDuplicate(args []string) error {
	path := args[0]
	i, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", path)
	idx, err := editor.Duplicate(path, i, editOptions())
	if err != nil {
		return fmt.Errorf("failed to duplicate enemy: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]int{"index": idx})
	}
	printInfo("✓ Duplicated enemy %d as %d\n", i, idx)
	return nil
}
