package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	cmd := newSetCmd()
	addEditFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <index> <field> <value>",
		Short: "Change one field of an enemy",
		Long: `The set command parses value for the field and writes the file back.
Integers are base-10 and 32-bit; vectors are three comma-separated numbers,
optionally wrapped in angle brackets. Invalid values leave the file as is.

Example:
  msbctl set m30_00_00_00.msb 4 NPCParamID 120010
  msbctl set m30_00_00_00.msb 4 Position "<10.5, 0, -3>"
  msbctl set m30_00_00_00.msb 4 Name c1100_0099 --backup`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, field, value := args[0], args[2], args[3]
	i, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", path)
	if err := editor.SetField(path, i, field, value, editOptions()); err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}

	if dryRun {
		printInfo("Would set %s of enemy %d to %s\n", field, i, value)
		return nil
	}
	printInfo("✓ Set %s of enemy %d\n", field, i)
	return nil
}
