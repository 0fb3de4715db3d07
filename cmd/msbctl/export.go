package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/internal/export"
	"github.com/joshuapare/msbkit/pkg/editor"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or sqlite")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (required for sqlite; json defaults to stdout)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the enemies of a file as JSON or SQLite",
		Long: `The export command writes every enemy as a flat row. JSON goes to stdout
unless --output is given. SQLite output replaces the "enemies" table of the
target database.

Example:
  msbctl export m30_00_00_00.msb > enemies.json
  msbctl export m30_00_00_00.msb --format sqlite --output enemies.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	enemies, err := editor.List(path)
	if err != nil {
		return fmt.Errorf("failed to read enemies: %w", err)
	}

	switch strings.ToLower(exportFormat) {
	case "json":
		if exportOutput == "" {
			return export.JSON(os.Stdout, enemies)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		if err := export.JSON(f, enemies); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	case "sqlite":
		if exportOutput == "" {
			return fmt.Errorf("--output is required for sqlite export")
		}
		if err := export.SQLite(exportOutput, enemies); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q (want json or sqlite)", exportFormat)
	}

	logger.Info("exported", "path", path, "format", exportFormat, "output", exportOutput, "enemies", len(enemies))
	printVerbose("Exported %d enemies to %s\n", len(enemies), exportOutput)
	return nil
}
