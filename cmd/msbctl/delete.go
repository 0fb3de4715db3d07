package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	cmd := newDeleteCmd()
	addEditFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <index>...",
		Short: "Delete one or more enemies",
		Long: `The delete command removes the enemies at the given indices. Indices
refer to the file as it is before the command runs and may be given in any
order. If any index is out of range nothing is deleted.

Example:
  msbctl delete m30_00_00_00.msb 3
  msbctl delete m30_00_00_00.msb 7 2 5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path := args[0]
	indices := make([]int, 0, len(args)-1)
	seen := make(map[int]bool, len(args)-1)
	for _, a := range args[1:] {
		i, err := parseIndex(a)
		if err != nil {
			return err
		}
		// A repeated index deletes once.
		if seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}

	printVerbose("Opening file: %s\n", path)
	if err := editor.Delete(path, indices, editOptions()); err != nil {
		return fmt.Errorf("failed to delete enemies: %w", err)
	}

	if dryRun {
		printInfo("Would delete %d enemies\n", len(indices))
		return nil
	}
	printInfo("✓ Deleted %d enemies\n", len(indices))
	return nil
}
