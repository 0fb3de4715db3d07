package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <index> [field]",
		Short: "Show one enemy, or one field of it",
		Long: `The get command prints every field of the enemy at index, or only the
named field. Field names are matched case-insensitively.

Example:
  msbctl get m30_00_00_00.msb 4
  msbctl get m30_00_00_00.msb 4 Position
  msbctl get m30_00_00_00.msb 4 --json`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	i, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", path)
	r, err := editor.Get(path, i)
	if err != nil {
		return fmt.Errorf("failed to get enemy: %w", err)
	}

	fields := msb.Fields()
	if len(args) == 3 {
		f, err := msb.ParseField(args[2])
		if err != nil {
			return err
		}
		fields = []msb.Field{f}
	}

	if jsonOut {
		out := make(map[string]string, len(fields))
		for _, f := range fields {
			out[f.String()] = r.FieldString(f)
		}
		return printJSON(out)
	}

	if len(fields) == 1 {
		fmt.Println(r.FieldString(fields[0]))
		return nil
	}
	for _, f := range fields {
		fmt.Printf("%-14s %s\n", f.String()+":", r.FieldString(f))
	}
	return nil
}
