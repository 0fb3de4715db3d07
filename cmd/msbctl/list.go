package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/internal/export"
	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/pkg/editor"
)

var listIDsOnly bool

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listIDsOnly, "ids-only", false, "Show only name, model and parameter IDs")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the enemies of an MSB file",
		Long: `The list command prints one row per enemy part, in file order.
Row indices are zero-based and are what the other commands expect.

Example:
  msbctl list m30_00_00_00.msb
  msbctl list m30_00_00_00.msb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	enemies, err := editor.List(path)
	if err != nil {
		return fmt.Errorf("failed to list enemies: %w", err)
	}

	if jsonOut {
		return export.JSON(os.Stdout, enemies)
	}

	fields := msb.Fields()
	if listIDsOnly {
		fields = fields[:msb.FieldPosition]
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "#")
	for _, f := range fields {
		fmt.Fprintf(tw, "\t%s", f)
	}
	fmt.Fprintln(tw)
	for i := range enemies {
		fmt.Fprintf(tw, "%d", i)
		for _, f := range fields {
			fmt.Fprintf(tw, "\t%s", enemies[i].FieldString(f))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printVerbose("%d enemies\n", len(enemies))
	return nil
}
