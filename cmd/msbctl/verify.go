package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/pkg/editor"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a file re-encodes to identical bytes",
		Long: `The verify command decodes the file, encodes it again without changes
and compares the result with the original. It fails if the file cannot be
decoded or the bytes differ.

Example:
  msbctl verify m30_00_00_00.msb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	res, err := editor.Verify(path)
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.OK {
		printInfo("✓ %s: %d bytes, %d enemies, round trip identical\n", path, res.Size, res.Enemies)
	}

	if !res.OK {
		return fmt.Errorf("%s: round trip differs at offset 0x%x (%d bytes in, %d out)",
			path, res.FirstDiff, res.Size, res.Encoded)
	}
	return nil
}
