package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show the section layout and part counts of a file",
		Long: `The info command validates an MSB file and reports its size, sections
and how many parts of each type it holds.

Example:
  msbctl info m30_00_00_00.msb
  msbctl info m30_00_00_00.msb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	info, err := editor.Info(path)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", info.Path)
	if info.Size < 1024 {
		printInfo("  Size: %d bytes\n", info.Size)
	} else if info.Size < 1024*1024 {
		printInfo("  Size: %.1f KB\n", float64(info.Size)/1024)
	} else {
		printInfo("  Size: %.1f MB\n", float64(info.Size)/(1024*1024))
	}
	printInfo("  Enemies: %d\n", info.Enemies)

	printInfo("\nSections:\n")
	for _, s := range info.Sections {
		printInfo("  %-16s v%d  %5d entries  %8d bytes\n", s.Name, s.Version, s.Entries, s.Size)
	}

	printInfo("\nParts:\n")
	names := make([]string, 0, len(info.Parts))
	for name := range info.Parts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		printInfo("  %-16s %d\n", name, info.Parts[name])
	}
	return nil
}
